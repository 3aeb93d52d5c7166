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
	ErrInvalidAmount       = errors.New("发行数量必须大于0")
	ErrZeroAmount          = errors.New("转账数量必须大于0")
	ErrInvalidRecipient    = errors.New("接收方地址非法")
	ErrInvalidAccount      = errors.New("账户地址非法")
	ErrInvalidBadgeType    = errors.New("徽章类型非法")
	ErrNoAuthority         = errors.New("没有转账权限")
	ErrInsufficientBalance = errors.New("徽章余额不足")
	ErrTokenNotFound       = errors.New("徽章不存在")
	ErrLengthMismatch      = errors.New("账户与徽章数量不一致")
)

type BadgeType uint8

const (
	BadgeTypeBronze BadgeType = iota
	BadgeTypeSilver
	BadgeTypeGold
)

func (t BadgeType) Valid() bool {
	return t <= BadgeTypeGold
}

func (t BadgeType) ToUint8() uint8 {
	return uint8(t)
}

func (t BadgeType) String() string {
	switch t {
	case BadgeTypeBronze:
		return "bronze"
	case BadgeTypeSilver:
		return "silver"
	case BadgeTypeGold:
		return "gold"
	default:
		return "unknown"
	}
}

// Token 一类可替代的徽章
type Token struct {
	ID          int64
	Type        BadgeType
	MetadataURI string
	// Issuer 发行时的接收方，Remaining 就是他手上还没有分发出去的数量
	Issuer      string
	TotalIssued int64
	Remaining   int64
	Ctime       int64
	Utime       int64
}

// Holding 某个账户持有的某类徽章
type Holding struct {
	TokenID  int64
	Type     BadgeType
	Quantity int64
}

// Movement 一次转账，单笔转账就是只有一个接收方的批量转账
type Movement struct {
	From       string
	TokenID    int64
	Recipients []string
	AmountEach int64
	// Weight 每个徽章给接收方增加的积分
	Weight int64
}

func (m Movement) Total() int64 {
	return m.AmountEach * int64(len(m.Recipients))
}
