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

import "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"

type MintReq struct {
	To          string `json:"to"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MetadataURI string `json:"metadataURI"`
}

type MintResp struct {
	TokenID int64 `json:"tokenId"`
}

type UpdateNameReq struct {
	Caller  string `json:"caller"`
	TokenID int64  `json:"tokenId"`
	Name    string `json:"name"`
}

type UpdateDescriptionReq struct {
	Caller      string `json:"caller"`
	TokenID     int64  `json:"tokenId"`
	Description string `json:"description"`
}

type UpgradeReq struct {
	Caller  string `json:"caller"`
	TokenID int64  `json:"tokenId"`
}

type UpgradeResp struct {
	Level uint8 `json:"level"`
}

type TokenReq struct {
	TokenID int64 `json:"tokenId"`
}

type OwnerReq struct {
	Owner string `json:"owner"`
}

type Credential struct {
	TokenID     int64  `json:"tokenId"`
	Owner       string `json:"owner"`
	Level       uint8  `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MetadataURI string `json:"metadataURI"`
	Utime       int64  `json:"utime"`
}

func newCredential(c domain.Credential) Credential {
	return Credential{
		TokenID:     c.ID,
		Owner:       c.Owner,
		Level:       c.Level.ToUint8(),
		Name:        c.Name,
		Description: c.Description,
		MetadataURI: c.MetadataURI,
		Utime:       c.Utime,
	}
}

type CredentialList struct {
	Credentials []Credential `json:"credentials"`
}
