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

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecordDAO interface {
	// Insert 按 raw_event_ref 幂等写入，重复时 inserted 为 false
	Insert(ctx context.Context, r TransactionRecord) (inserted bool, err error)
	FindByRef(ctx context.Context, ref string) (TransactionRecord, error)
	FindByActor(ctx context.Context, actor string, offset, limit int) ([]TransactionRecord, error)
	FindByKind(ctx context.Context, kind uint8, offset, limit int) ([]TransactionRecord, error)

	InsertDeadLetter(ctx context.Context, d DeadLetter) (int64, error)
	// FindDeadLetters 按 id 升序返回重放次数小于 maxAttempts 的死信
	FindDeadLetters(ctx context.Context, maxAttempts, limit int) ([]DeadLetter, error)
	DeleteDeadLetter(ctx context.Context, id int64) error
	IncrDeadLetterAttempts(ctx context.Context, id int64, reason string) error

	// AdvanceCursor 只会把游标往前推
	AdvanceCursor(ctx context.Context, c Cursor) error
	FindCursor(ctx context.Context, kind uint8) (Cursor, error)
}

type recordDAO struct {
	db *egorm.Component
}

func NewRecordGORMDAO(db *egorm.Component) RecordDAO {
	return &recordDAO{db: db}
}

func (d *recordDAO) Insert(ctx context.Context, r TransactionRecord) (bool, error) {
	r.Ctime = time.Now().UnixMilli()
	res := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "raw_event_ref"}},
			DoNothing: true,
		}).Create(&r)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *recordDAO) FindByRef(ctx context.Context, ref string) (TransactionRecord, error) {
	var res TransactionRecord
	err := d.db.WithContext(ctx).Where("raw_event_ref = ?", ref).First(&res).Error
	return res, err
}

func (d *recordDAO) FindByActor(ctx context.Context, actor string, offset, limit int) ([]TransactionRecord, error) {
	var res []TransactionRecord
	err := d.db.WithContext(ctx).
		Where("actor = ?", actor).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *recordDAO) FindByKind(ctx context.Context, kind uint8, offset, limit int) ([]TransactionRecord, error) {
	var res []TransactionRecord
	err := d.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *recordDAO) InsertDeadLetter(ctx context.Context, dl DeadLetter) (int64, error) {
	now := time.Now().UnixMilli()
	dl.Ctime, dl.Utime = now, now
	err := d.db.WithContext(ctx).Create(&dl).Error
	return dl.Id, err
}

func (d *recordDAO) FindDeadLetters(ctx context.Context, maxAttempts, limit int) ([]DeadLetter, error) {
	var res []DeadLetter
	err := d.db.WithContext(ctx).
		Where("attempts < ?", maxAttempts).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *recordDAO) DeleteDeadLetter(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&DeadLetter{}).Error
}

func (d *recordDAO) IncrDeadLetterAttempts(ctx context.Context, id int64, reason string) error {
	return d.db.WithContext(ctx).Model(&DeadLetter{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts": gorm.Expr("attempts + 1"),
			"reason":   reason,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *recordDAO) AdvanceCursor(ctx context.Context, c Cursor) error {
	c.Utime = time.Now().UnixMilli()
	// raw_event_ref 要在 seq 之前赋值，比较用的还是旧的 seq
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kind"}},
		DoUpdates: clause.Set{
			{Column: clause.Column{Name: "raw_event_ref"}, Value: gorm.Expr("IF(VALUES(seq) > seq, VALUES(raw_event_ref), raw_event_ref)")},
			{Column: clause.Column{Name: "utime"}, Value: gorm.Expr("IF(VALUES(seq) > seq, VALUES(utime), utime)")},
			{Column: clause.Column{Name: "seq"}, Value: gorm.Expr("GREATEST(seq, VALUES(seq))")},
		},
	}).Create(&c).Error
}

func (d *recordDAO) FindCursor(ctx context.Context, kind uint8) (Cursor, error) {
	var res Cursor
	err := d.db.WithContext(ctx).Where("kind = ?", kind).First(&res).Error
	return res, err
}
