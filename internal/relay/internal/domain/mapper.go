// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"errors"
	"fmt"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
)

var ErrMalformedEvent = errors.New("无法解析的账本事件")

// Map 把事件信封映射成记录，每种负载都必须在这里有分支
func Map(env chainevent.Envelope, observedAt int64) (Record, error) {
	p, err := env.Open()
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	r := Record{
		Kind:        env.Kind,
		RawEventRef: env.RawEventRef(),
		Seq:         env.Seq,
		Detail:      env.Payload,
		ObservedAt:  observedAt,
	}
	switch evt := p.(type) {
	case chainevent.Issuance:
		r.Actor = evt.To
		r.TokenID = &evt.TokenID
		r.BadgeType = &evt.BadgeType
		r.Amount = &evt.Amount
		r.URI = &evt.MetadataURI
	case chainevent.ApprovalToken:
		r.Actor = evt.Owner
		r.Counterpart = &evt.Operator
		r.TokenID = &evt.TokenID
	case chainevent.ApprovalForAll:
		r.Actor = evt.Owner
		r.Counterpart = &evt.Operator
	case chainevent.TransferSingle:
		r.Actor = evt.From
		r.Counterpart = &evt.To
		r.TokenID = &evt.TokenID
		r.Amount = &evt.Amount
	case chainevent.TransferBatch:
		// 多个接收方只保留在 Detail 里
		r.Actor = evt.From
		r.TokenID = &evt.TokenID
		r.Amount = &evt.AmountEach
	case chainevent.CredentialMint:
		r.Actor = evt.To
		r.TokenID = &evt.TokenID
		r.URI = &evt.MetadataURI
	case chainevent.CredentialUpgrade:
		r.Actor = evt.Owner
		r.TokenID = &evt.TokenID
	default:
		return Record{}, fmt.Errorf("%w: 未处理的负载 %T", ErrMalformedEvent, p)
	}
	if r.Actor == "" || env.TxHash == "" {
		return Record{}, fmt.Errorf("%w: 缺少 actor 或 txHash", ErrMalformedEvent)
	}
	return r, nil
}
