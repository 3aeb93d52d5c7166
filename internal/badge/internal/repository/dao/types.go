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

package dao

type BadgeToken struct {
	// tokenId 从 0 开始，由 BadgeSequence 分配
	Id          int64  `gorm:"primaryKey;autoIncrement:false;comment:徽章ID"`
	Type        uint8  `gorm:"type:tinyint unsigned;not null;comment:徽章类型 0=铜 1=银 2=金"`
	MetadataURI string `gorm:"type:varchar(512);not null;comment:元数据地址"`
	Issuer      string `gorm:"type:varchar(42);not null;index:idx_issuer;comment:发行时的接收方"`
	TotalIssued int64  `gorm:"not null;comment:发行总量"`
	Remaining   int64  `gorm:"not null;comment:发行方尚未分发的数量"`
	Ctime       int64
	Utime       int64
}

type BadgeBalance struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Account  string `gorm:"type:varchar(42);not null;uniqueIndex:unq_account_token"`
	TokenId  int64  `gorm:"not null;uniqueIndex:unq_account_token"`
	Type     uint8  `gorm:"type:tinyint unsigned;not null"`
	Quantity int64  `gorm:"not null;default:0;comment:持有数量,不能为负"`
	Ctime    int64
	Utime    int64
}

type BadgeTokenApproval struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Owner    string `gorm:"type:varchar(42);not null;uniqueIndex:unq_owner_operator_token"`
	Operator string `gorm:"type:varchar(42);not null;uniqueIndex:unq_owner_operator_token"`
	TokenId  int64  `gorm:"not null;uniqueIndex:unq_owner_operator_token"`
	Approved bool   `gorm:"not null"`
	Ctime    int64
	Utime    int64
}

type BadgeOperatorApproval struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Owner    string `gorm:"type:varchar(42);not null;uniqueIndex:unq_owner_operator"`
	Operator string `gorm:"type:varchar(42);not null;uniqueIndex:unq_owner_operator"`
	Approved bool   `gorm:"not null"`
	Ctime    int64
	Utime    int64
}

// BadgeScore 累计接收口径的积分
type BadgeScore struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	Account string `gorm:"type:varchar(42);not null;uniqueIndex:unq_account"`
	Score   int64  `gorm:"not null;default:0"`
	Ctime   int64
	Utime   int64
}

type BadgeSequence struct {
	Name  string `gorm:"primaryKey;type:varchar(64)"`
	Next  int64  `gorm:"not null;default:0"`
	Utime int64
}
