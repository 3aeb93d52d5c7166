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

import "errors"

var (
	ErrInvalidRecipient   = errors.New("接收方地址非法")
	ErrInvalidAccount     = errors.New("账户地址非法")
	ErrNotOwner           = errors.New("不是凭证持有人")
	ErrThresholdNotMet    = errors.New("积分未达到升级门槛")
	ErrMaxLevelReached    = errors.New("已达到最高等级")
	ErrAlreadyMinted      = errors.New("该账户已持有凭证")
	ErrCredentialNotFound = errors.New("凭证不存在")
	// ErrLevelChanged 升级时等级已被并发修改
	ErrLevelChanged = errors.New("凭证等级已变更")
)

// Level 凭证等级，铸造时为 0
type Level uint8

func (l Level) ToUint8() uint8 {
	return uint8(l)
}

type Credential struct {
	ID          int64
	Owner       string
	Level       Level
	Name        string
	Description string
	MetadataURI string
	Ctime       int64
	Utime       int64
}
