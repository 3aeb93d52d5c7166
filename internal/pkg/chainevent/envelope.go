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

package chainevent

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownKind  = errors.New("未知的事件类型")
	ErrKindMismatch = errors.New("事件类型与负载不一致")
)

// Envelope 在消息队列中传输的事件信封
// TxHash + LogIndex 唯一确定一个事件在源头的位置
type Envelope struct {
	Kind     Kind   `json:"kind"`
	TxHash   string `json:"txHash"`
	LogIndex int    `json:"logIndex"`
	// Seq 同一来源内单调递增
	Seq       int64           `json:"seq"`
	EmittedAt int64           `json:"emittedAt"`
	Payload   json.RawMessage `json:"payload"`
}

// RawEventRef 事件的唯一引用，用于幂等写入
func (e Envelope) RawEventRef() string {
	return fmt.Sprintf("%s:%d", e.TxHash, e.LogIndex)
}

// Seal 把负载装进信封
func Seal(p Payload, txHash string, logIndex int, seq, emittedAt int64) (Envelope, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return Envelope{}, fmt.Errorf("序列化事件负载失败: %w", err)
	}
	return Envelope{
		Kind:      p.Kind(),
		TxHash:    txHash,
		LogIndex:  logIndex,
		Seq:       seq,
		EmittedAt: emittedAt,
		Payload:   data,
	}, nil
}

// Open 按事件类型解出负载
func (e Envelope) Open() (Payload, error) {
	switch e.Kind {
	case KindIssuance:
		return decode[Issuance](e.Payload)
	case KindApprovalToken:
		return decode[ApprovalToken](e.Payload)
	case KindApprovalForAll:
		return decode[ApprovalForAll](e.Payload)
	case KindTransferSingle:
		return decode[TransferSingle](e.Payload)
	case KindTransferBatch:
		return decode[TransferBatch](e.Payload)
	case KindCredentialMint:
		return decode[CredentialMint](e.Payload)
	case KindCredentialUpgrade:
		return decode[CredentialUpgrade](e.Payload)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, e.Kind)
	}
}

func decode[T Payload](data []byte) (Payload, error) {
	var p T
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("反序列化事件负载失败: %w", err)
	}
	return p, nil
}

// Unmarshal 从消息体解出信封，并校验类型与 topic 一致
func Unmarshal(data []byte, want Kind) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Envelope{}, fmt.Errorf("反序列化事件信封失败: %w", err)
	}
	if !e.Kind.Valid() {
		return Envelope{}, fmt.Errorf("%w: %d", ErrUnknownKind, e.Kind)
	}
	if want != KindUnknown && e.Kind != want {
		return Envelope{}, fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, want, e.Kind)
	}
	return e, nil
}
