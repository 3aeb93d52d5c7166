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

package web

import (
	"encoding/json"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
)

const maxLimit = 100

type RefReq struct {
	RawEventRef string `json:"rawEventRef"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

func (p Page) limit() int {
	if p.Limit <= 0 || p.Limit > maxLimit {
		return maxLimit
	}
	return p.Limit
}

type ActorReq struct {
	Actor string `json:"actor"`
	Page
}

type KindReq struct {
	Kind string `json:"kind"`
	Page
}

type Record struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"kind"`
	Actor       string          `json:"actor"`
	Counterpart *string         `json:"counterpart,omitempty"`
	TokenID     *int64          `json:"tokenId,omitempty"`
	BadgeType   *uint8          `json:"badgeType,omitempty"`
	Amount      *int64          `json:"amount,omitempty"`
	URI         *string         `json:"uri,omitempty"`
	RawEventRef string          `json:"rawEventRef"`
	Seq         int64           `json:"seq"`
	Detail      json.RawMessage `json:"detail"`
	ObservedAt  int64           `json:"observedAt"`
}

func newRecord(r domain.Record) Record {
	return Record{
		ID:          r.ID,
		Kind:        r.Kind.String(),
		Actor:       r.Actor,
		Counterpart: r.Counterpart,
		TokenID:     r.TokenID,
		BadgeType:   r.BadgeType,
		Amount:      r.Amount,
		URI:         r.URI,
		RawEventRef: r.RawEventRef,
		Seq:         r.Seq,
		Detail:      r.Detail,
		ObservedAt:  r.ObservedAt,
	}
}

type RecordList struct {
	Records []Record `json:"records"`
}

type Cursor struct {
	Kind        string `json:"kind"`
	Seq         int64  `json:"seq"`
	RawEventRef string `json:"rawEventRef"`
	Utime       int64  `json:"utime"`
}
