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

// Payload 各事件类型的负载，只有本包内的类型能实现
type Payload interface {
	Kind() Kind
	sealed()
}

type Issuance struct {
	To          string `json:"to"`
	BadgeType   uint8  `json:"badgeType"`
	Amount      int64  `json:"amount"`
	TokenID     int64  `json:"tokenId"`
	MetadataURI string `json:"metadataURI"`
}

func (Issuance) Kind() Kind { return KindIssuance }
func (Issuance) sealed()    {}

type ApprovalToken struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	TokenID  int64  `json:"tokenId"`
	Approved bool   `json:"approved"`
}

func (ApprovalToken) Kind() Kind { return KindApprovalToken }
func (ApprovalToken) sealed()    {}

type ApprovalForAll struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

func (ApprovalForAll) Kind() Kind { return KindApprovalForAll }
func (ApprovalForAll) sealed()    {}

type TransferSingle struct {
	Initiator string `json:"initiator"`
	From      string `json:"from"`
	To        string `json:"to"`
	TokenID   int64  `json:"tokenId"`
	Amount    int64  `json:"amount"`
}

func (TransferSingle) Kind() Kind { return KindTransferSingle }
func (TransferSingle) sealed()    {}

type TransferBatch struct {
	Initiator  string   `json:"initiator"`
	From       string   `json:"from"`
	Recipients []string `json:"recipients"`
	TokenID    int64    `json:"tokenId"`
	AmountEach int64    `json:"amountEach"`
}

func (TransferBatch) Kind() Kind { return KindTransferBatch }
func (TransferBatch) sealed()    {}

type CredentialMint struct {
	To          string `json:"to"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TokenID     int64  `json:"tokenId"`
	MetadataURI string `json:"metadataURI"`
}

func (CredentialMint) Kind() Kind { return KindCredentialMint }
func (CredentialMint) sealed()    {}

type CredentialUpgrade struct {
	Owner    string `json:"owner"`
	TokenID  int64  `json:"tokenId"`
	NewLevel uint8  `json:"newLevel"`
}

func (CredentialUpgrade) Kind() Kind { return KindCredentialUpgrade }
func (CredentialUpgrade) sealed()    {}
