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

import "database/sql"

type TransactionRecord struct {
	Id          int64          `gorm:"primaryKey;autoIncrement"`
	Kind        uint8          `gorm:"type:tinyint unsigned;not null;index:idx_kind_id,priority:1;comment:事件类型"`
	Actor       string         `gorm:"type:varchar(42);not null;index:idx_actor_id,priority:1"`
	Counterpart sql.NullString `gorm:"type:varchar(42)"`
	TokenId     sql.NullInt64
	BadgeType   sql.NullByte `gorm:"type:tinyint unsigned"`
	Amount      sql.NullInt64
	URI         sql.NullString `gorm:"type:varchar(512)"`
	RawEventRef string         `gorm:"type:varchar(128);not null;uniqueIndex:unq_raw_event_ref;comment:事件源位置"`
	Seq         int64          `gorm:"not null"`
	Detail      string         `gorm:"type:mediumtext;comment:完整事件负载"`
	ObservedAt  int64          `gorm:"not null"`
	Ctime       int64
}

func (TransactionRecord) TableName() string {
	return "relay_transaction_records"
}

type DeadLetter struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Kind        uint8  `gorm:"type:tinyint unsigned;not null"`
	RawEventRef string `gorm:"type:varchar(128);not null;index:idx_raw_event_ref"`
	Body        []byte `gorm:"type:mediumblob;not null;comment:原始消息体"`
	Reason      string `gorm:"type:varchar(1024);not null"`
	Attempts    int    `gorm:"not null;default:0;comment:重放次数"`
	Ctime       int64
	Utime       int64
}

func (DeadLetter) TableName() string {
	return "relay_dead_letters"
}

type Cursor struct {
	Kind        uint8  `gorm:"primaryKey;autoIncrement:false"`
	Seq         int64  `gorm:"not null"`
	RawEventRef string `gorm:"type:varchar(128);not null"`
	Utime       int64
}

func (Cursor) TableName() string {
	return "relay_cursors"
}
