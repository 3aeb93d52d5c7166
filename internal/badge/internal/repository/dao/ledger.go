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
	"fmt"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tokenSequence = "badge_token"

var ErrInsufficientQuantity = errors.New("持有数量不足")

type LedgerDAO interface {
	// CreateToken 分配 tokenId，写入徽章并给发行接收方记账，build 生成的消息在同一个事务里写入发件箱
	CreateToken(ctx context.Context, t BadgeToken, weight int64, build outbox.Builder) (int64, error)
	FindToken(ctx context.Context, id int64) (BadgeToken, error)
	FindBalance(ctx context.Context, account string, tokenID int64) (BadgeBalance, error)
	FindBalancesByAccount(ctx context.Context, account string) ([]BadgeBalance, error)
	UpsertTokenApproval(ctx context.Context, a BadgeTokenApproval, msg outbox.Message) error
	UpsertOperatorApproval(ctx context.Context, a BadgeOperatorApproval, msg outbox.Message) error
	FindTokenApproval(ctx context.Context, owner, operator string, tokenID int64) (BadgeTokenApproval, error)
	FindOperatorApproval(ctx context.Context, owner, operator string) (BadgeOperatorApproval, error)
	// Move 在一个事务里扣减 from 并给所有接收方记账，要么全部成功要么全部失败
	Move(ctx context.Context, from string, tokenID int64, recipients []string, amountEach, weight int64, msg outbox.Message) error
	FindScore(ctx context.Context, account string) (BadgeScore, error)
}

type ledgerDAO struct {
	db *egorm.Component
}

func NewLedgerGORMDAO(db *egorm.Component) LedgerDAO {
	return &ledgerDAO{db: db}
}

func (d *ledgerDAO) CreateToken(ctx context.Context, t BadgeToken, weight int64, build outbox.Builder) (int64, error) {
	var id int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		// 序列行在建表时写入，这里只需要加锁读
		var seq BadgeSequence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", tokenSequence).
			First(&seq).Error
		if err != nil {
			return fmt.Errorf("分配徽章ID失败: %w", err)
		}
		id = seq.Next
		if err = tx.Model(&BadgeSequence{}).
			Where("name = ? AND next = ?", tokenSequence, id).
			Updates(map[string]any{
				"next":  id + 1,
				"utime": now,
			}).Error; err != nil {
			return fmt.Errorf("更新徽章序列失败: %w", err)
		}

		t.Id = id
		t.Remaining = t.TotalIssued
		t.Ctime, t.Utime = now, now
		if err = tx.Create(&t).Error; err != nil {
			return fmt.Errorf("创建徽章失败: %w", err)
		}
		if err = d.credit(tx, t.Issuer, t.Id, t.Type, t.TotalIssued, now); err != nil {
			return err
		}
		if err = d.addScore(tx, t.Issuer, t.TotalIssued*weight, now); err != nil {
			return err
		}
		msg, err := build(id)
		if err != nil {
			return err
		}
		return outbox.Append(tx, msg)
	})
	return id, err
}

func (d *ledgerDAO) FindToken(ctx context.Context, id int64) (BadgeToken, error) {
	var res BadgeToken
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *ledgerDAO) FindBalance(ctx context.Context, account string, tokenID int64) (BadgeBalance, error) {
	var res BadgeBalance
	err := d.db.WithContext(ctx).
		Where("account = ? AND token_id = ?", account, tokenID).
		First(&res).Error
	return res, err
}

func (d *ledgerDAO) FindBalancesByAccount(ctx context.Context, account string) ([]BadgeBalance, error) {
	var res []BadgeBalance
	err := d.db.WithContext(ctx).
		Where("account = ? AND quantity > 0", account).
		Order("token_id ASC").
		Find(&res).Error
	return res, err
}

func (d *ledgerDAO) UpsertTokenApproval(ctx context.Context, a BadgeTokenApproval, msg outbox.Message) error {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner"}, {Name: "operator"}, {Name: "token_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"approved": a.Approved,
				"utime":    now,
			}),
		}).Create(&a).Error
		if err != nil {
			return err
		}
		return outbox.Append(tx, msg)
	})
}

func (d *ledgerDAO) UpsertOperatorApproval(ctx context.Context, a BadgeOperatorApproval, msg outbox.Message) error {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner"}, {Name: "operator"}},
			DoUpdates: clause.Assignments(map[string]any{
				"approved": a.Approved,
				"utime":    now,
			}),
		}).Create(&a).Error
		if err != nil {
			return err
		}
		return outbox.Append(tx, msg)
	})
}

func (d *ledgerDAO) FindTokenApproval(ctx context.Context, owner, operator string, tokenID int64) (BadgeTokenApproval, error) {
	var res BadgeTokenApproval
	err := d.db.WithContext(ctx).
		Where("owner = ? AND operator = ? AND token_id = ?", owner, operator, tokenID).
		First(&res).Error
	return res, err
}

func (d *ledgerDAO) FindOperatorApproval(ctx context.Context, owner, operator string) (BadgeOperatorApproval, error) {
	var res BadgeOperatorApproval
	err := d.db.WithContext(ctx).
		Where("owner = ? AND operator = ?", owner, operator).
		First(&res).Error
	return res, err
}

func (d *ledgerDAO) Move(ctx context.Context, from string, tokenID int64, recipients []string, amountEach, weight int64, msg outbox.Message) error {
	total := amountEach * int64(len(recipients))
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var token BadgeToken
		if err := tx.Where("id = ?", tokenID).First(&token).Error; err != nil {
			return err
		}
		// 条件更新保证余额不会被扣成负数
		res := tx.Model(&BadgeBalance{}).
			Where("account = ? AND token_id = ? AND quantity >= ?", from, tokenID, total).
			Updates(map[string]any{
				"quantity": gorm.Expr("quantity - ?", total),
				"utime":    now,
			})
		if res.Error != nil {
			return fmt.Errorf("扣减余额失败: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientQuantity
		}

		var delta int64
		if from == token.Issuer {
			delta -= total
		}
		for _, to := range recipients {
			if err := d.credit(tx, to, tokenID, token.Type, amountEach, now); err != nil {
				return err
			}
			if err := d.addScore(tx, to, amountEach*weight, now); err != nil {
				return err
			}
			if to == token.Issuer {
				delta += amountEach
			}
		}
		if delta != 0 {
			err := tx.Model(&BadgeToken{}).
				Where("id = ?", tokenID).
				Updates(map[string]any{
					"remaining": gorm.Expr("remaining + ?", delta),
					"utime":     now,
				}).Error
			if err != nil {
				return err
			}
		}
		return outbox.Append(tx, msg)
	})
}

func (d *ledgerDAO) FindScore(ctx context.Context, account string) (BadgeScore, error) {
	var res BadgeScore
	err := d.db.WithContext(ctx).Where("account = ?", account).First(&res).Error
	return res, err
}

func (d *ledgerDAO) credit(tx *gorm.DB, account string, tokenID int64, typ uint8, amount, now int64) error {
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account"}, {Name: "token_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", amount),
			"utime":    now,
		}),
	}).Create(&BadgeBalance{
		Account:  account,
		TokenId:  tokenID,
		Type:     typ,
		Quantity: amount,
		Ctime:    now,
		Utime:    now,
	}).Error
	if err != nil {
		return fmt.Errorf("增加余额失败: %w", err)
	}
	return nil
}

func (d *ledgerDAO) addScore(tx *gorm.DB, account string, delta, now int64) error {
	if delta == 0 {
		return nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score": gorm.Expr("score + ?", delta),
			"utime": now,
		}),
	}).Create(&BadgeScore{
		Account: account,
		Score:   delta,
		Ctime:   now,
		Utime:   now,
	}).Error
	if err != nil {
		return fmt.Errorf("更新积分失败: %w", err)
	}
	return nil
}
