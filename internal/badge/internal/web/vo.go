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

import "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"

type IssueReq struct {
	To          string `json:"to"`
	BadgeType   uint8  `json:"badgeType"`
	Amount      int64  `json:"amount"`
	MetadataURI string `json:"metadataURI"`
}

type IssueResp struct {
	TokenID int64 `json:"tokenId"`
}

type ApproveTokenReq struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	TokenID  int64  `json:"tokenId"`
	Approved bool   `json:"approved"`
}

type ApproveAllReq struct {
	Owner    string `json:"owner"`
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
}

type TransferReq struct {
	Initiator string `json:"initiator"`
	From      string `json:"from"`
	To        string `json:"to"`
	TokenID   int64  `json:"tokenId"`
	Amount    int64  `json:"amount"`
}

type TransferManyReq struct {
	Initiator  string   `json:"initiator"`
	From       string   `json:"from"`
	Recipients []string `json:"recipients"`
	TokenID    int64    `json:"tokenId"`
	AmountEach int64    `json:"amountEach"`
}

type TokenReq struct {
	TokenID int64 `json:"tokenId"`
}

type Token struct {
	TokenID     int64  `json:"tokenId"`
	BadgeType   uint8  `json:"badgeType"`
	MetadataURI string `json:"metadataURI"`
	Issuer      string `json:"issuer"`
	TotalIssued int64  `json:"totalIssued"`
	Remaining   int64  `json:"remaining"`
	Ctime       int64  `json:"ctime"`
}

func newToken(t domain.Token) Token {
	return Token{
		TokenID:     t.ID,
		BadgeType:   t.Type.ToUint8(),
		MetadataURI: t.MetadataURI,
		Issuer:      t.Issuer,
		TotalIssued: t.TotalIssued,
		Remaining:   t.Remaining,
		Ctime:       t.Ctime,
	}
}

type BalanceReq struct {
	Owners   []string `json:"owners"`
	TokenIDs []int64  `json:"tokenIds"`
}

type BalanceResp struct {
	Balances []int64 `json:"balances"`
}

type OwnerReq struct {
	Owner string `json:"owner"`
}

type ScoreResp struct {
	Owner string `json:"owner"`
	Score int64  `json:"score"`
}

type Holding struct {
	TokenID   int64 `json:"tokenId"`
	BadgeType uint8 `json:"badgeType"`
	Quantity  int64 `json:"quantity"`
}

type HoldingsResp struct {
	Holdings []Holding `json:"holdings"`
}
