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
	"errors"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAlreadyMinted = errors.New("账户已持有凭证")
	ErrLevelChanged  = errors.New("凭证等级已变更")
)

type Credential struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:凭证ID"`
	Owner       string `gorm:"type:varchar(42);not null;index:idx_owner;comment:持有人"`
	Level       uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:等级"`
	Name        string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:varchar(1024);not null"`
	MetadataURI string `gorm:"type:varchar(512);not null;comment:元数据地址"`
	Ctime       int64
	Utime       int64
}

func (Credential) TableName() string {
	return "dnft_credentials"
}

type CredentialDAO interface {
	// Create 写入凭证，unique 为 true 时同一持有人只能有一张。
	// build 根据凭证 ID 生成的消息在同一个事务里写入发件箱
	Create(ctx context.Context, c Credential, unique bool, build outbox.Builder) (int64, error)
	FindByID(ctx context.Context, id int64) (Credential, error)
	FindByOwner(ctx context.Context, owner string) ([]Credential, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateDescription(ctx context.Context, id int64, description string) error
	// UpdateLevel 只有当前等级仍为 from 时才更新为 to，并写入升级事件
	UpdateLevel(ctx context.Context, id int64, from, to uint8, msg outbox.Message) error
}

type credentialDAO struct {
	db *egorm.Component
}

func NewCredentialGORMDAO(db *egorm.Component) CredentialDAO {
	return &credentialDAO{db: db}
}

func (d *credentialDAO) Create(ctx context.Context, c Credential, unique bool, build outbox.Builder) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if unique {
			var cnt int64
			err := tx.Model(&Credential{}).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("owner = ?", c.Owner).
				Count(&cnt).Error
			if err != nil {
				return err
			}
			if cnt > 0 {
				return ErrAlreadyMinted
			}
		}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		msg, err := build(c.Id)
		if err != nil {
			return err
		}
		return outbox.Append(tx, msg)
	})
	if err != nil {
		return 0, err
	}
	return c.Id, nil
}

func (d *credentialDAO) FindByID(ctx context.Context, id int64) (Credential, error) {
	var res Credential
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *credentialDAO) FindByOwner(ctx context.Context, owner string) ([]Credential, error) {
	var res []Credential
	err := d.db.WithContext(ctx).
		Where("owner = ?", owner).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *credentialDAO) UpdateName(ctx context.Context, id int64, name string) error {
	return d.update(ctx, id, map[string]any{"name": name})
}

func (d *credentialDAO) UpdateDescription(ctx context.Context, id int64, description string) error {
	return d.update(ctx, id, map[string]any{"description": description})
}

func (d *credentialDAO) update(ctx context.Context, id int64, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Credential{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (d *credentialDAO) UpdateLevel(ctx context.Context, id int64, from, to uint8, msg outbox.Message) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Credential{}).
			Where("id = ? AND level = ?", id, from).
			Updates(map[string]any{
				"level": to,
				"utime": time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLevelChanged
		}
		return outbox.Append(tx, msg)
	})
}

func InitTables(db *egorm.Component) error {
	if err := db.AutoMigrate(&Credential{}); err != nil {
		return err
	}
	return outbox.InitTables(db)
}
