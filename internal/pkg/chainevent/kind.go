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

// Package chainevent 账本事件：事件类型、各类型的负载、信封以及发布
package chainevent

// Kind 账本事件类型，每种类型单独一个 topic
type Kind uint8

const (
	KindUnknown Kind = iota
	KindIssuance
	KindApprovalToken
	KindApprovalForAll
	KindTransferSingle
	KindTransferBatch
	KindCredentialMint
	KindCredentialUpgrade
)

var kinds = []Kind{
	KindIssuance,
	KindApprovalToken,
	KindApprovalForAll,
	KindTransferSingle,
	KindTransferBatch,
	KindCredentialMint,
	KindCredentialUpgrade,
}

// Kinds 所有合法的事件类型
func Kinds() []Kind {
	res := make([]Kind, len(kinds))
	copy(res, kinds)
	return res
}

func (k Kind) Valid() bool {
	return k >= KindIssuance && k <= KindCredentialUpgrade
}

func (k Kind) String() string {
	switch k {
	case KindIssuance:
		return "issuance"
	case KindApprovalToken:
		return "approval_token"
	case KindApprovalForAll:
		return "approval_for_all"
	case KindTransferSingle:
		return "transfer_single"
	case KindTransferBatch:
		return "transfer_batch"
	case KindCredentialMint:
		return "credential_mint"
	case KindCredentialUpgrade:
		return "credential_upgrade"
	default:
		return "unknown"
	}
}

// Topic 事件类型对应的 topic
func (k Kind) Topic() string {
	return "ledger_" + k.String() + "_events"
}

func (k Kind) ToUint8() uint8 {
	return uint8(k)
}

// ParseKind 按名字解析，未知名字返回 KindUnknown
func ParseKind(name string) Kind {
	for _, k := range kinds {
		if k.String() == name {
			return k
		}
	}
	return KindUnknown
}
