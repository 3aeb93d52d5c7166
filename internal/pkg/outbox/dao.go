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

package outbox

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

const (
	StatusPending uint8 = iota
	StatusSent
)

// Message 和账本变更在同一个事务里写入的待投递消息
type Message struct {
	Id    int64  `gorm:"primaryKey;autoIncrement;index:idx_status_id,priority:2"`
	Topic string `gorm:"type:varchar(128);not null;index:idx_topic_seq,priority:1"`
	Key   string `gorm:"column:msg_key;type:varchar(128);not null;comment:分区与去重用的键"`
	// Seq 消息在源头的序号，同一 topic 内递增
	Seq      int64  `gorm:"not null;index:idx_topic_seq,priority:2"`
	Body     []byte `gorm:"type:mediumblob;not null"`
	Status   uint8  `gorm:"type:tinyint unsigned;not null;default:0;index:idx_status_id,priority:1"`
	Attempts int    `gorm:"not null;default:0;comment:投递失败次数"`
	Ctime    int64
	Utime    int64
}

func (Message) TableName() string {
	return "ledger_outbox"
}

// Builder 根据事务里刚分配的 ID 生成消息
type Builder func(id int64) (Message, error)

// Append 在调用方的事务里写入消息
func Append(tx *gorm.DB, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range msgs {
		msgs[i].Status = StatusPending
		msgs[i].Ctime, msgs[i].Utime = now, now
	}
	return tx.Create(&msgs).Error
}

//go:generate mockgen -source=./dao.go -package=outboxmocks -destination=./mocks/dao.mock.go DAO
type DAO interface {
	// FindPending 按写入顺序返回待投递的消息
	FindPending(ctx context.Context, limit int) ([]Message, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64) error
	// FindAfter 按 seq 升序返回 topic 上 seq 之后的消息，不区分是否已经投递
	FindAfter(ctx context.Context, topic string, seq int64, limit int) ([]Message, error)
}

type GORMDAO struct {
	db *egorm.Component
}

func NewGORMDAO(db *egorm.Component) *GORMDAO {
	return &GORMDAO{db: db}
}

func (d *GORMDAO) FindPending(ctx context.Context, limit int) ([]Message, error) {
	var res []Message
	err := d.db.WithContext(ctx).
		Where("status = ?", StatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMDAO) MarkSent(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": StatusSent,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *GORMDAO) MarkFailed(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Model(&Message{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts": gorm.Expr("attempts + 1"),
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *GORMDAO) FindAfter(ctx context.Context, topic string, seq int64, limit int) ([]Message, error) {
	var res []Message
	err := d.db.WithContext(ctx).
		Where("topic = ? AND seq > ?", topic, seq).
		Order("seq ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Message{})
}
