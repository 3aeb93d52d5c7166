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

package repository

import (
	"context"
	"errors"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository/cache"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository/dao"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

// LedgerStore 徽章账本的全部状态：徽章、余额、授权和累计积分。
// 会改变状态的方法都带着对应的事件消息，和状态变更在同一个事务里提交。
type LedgerStore interface {
	// CreateToken 分配新的 tokenId 并把全部发行量记到 t.Issuer 名下
	CreateToken(ctx context.Context, t domain.Token, weight int64, build outbox.Builder) (int64, error)
	Token(ctx context.Context, id int64) (domain.Token, error)
	BalanceOf(ctx context.Context, account string, tokenID int64) (int64, error)
	Holdings(ctx context.Context, account string) ([]domain.Holding, error)
	SetTokenApproval(ctx context.Context, owner, operator string, tokenID int64, approved bool, msg outbox.Message) error
	SetOperatorApproval(ctx context.Context, owner, operator string, approved bool, msg outbox.Message) error
	IsApprovedForToken(ctx context.Context, owner, operator string, tokenID int64) (bool, error)
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
	// Move 原子地执行一次转账，余额不足返回 domain.ErrInsufficientBalance
	Move(ctx context.Context, m domain.Movement, msg outbox.Message) error
	// ScoreOf 累计接收口径的积分
	ScoreOf(ctx context.Context, account string) (int64, error)
}

type ledgerStore struct {
	dao    dao.LedgerDAO
	cache  cache.ScoreCache
	logger *elog.Component
}

func NewLedgerStore(d dao.LedgerDAO, c cache.ScoreCache) LedgerStore {
	return &ledgerStore{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (s *ledgerStore) CreateToken(ctx context.Context, t domain.Token, weight int64, build outbox.Builder) (int64, error) {
	id, err := s.dao.CreateToken(ctx, dao.BadgeToken{
		Type:        t.Type.ToUint8(),
		MetadataURI: t.MetadataURI,
		Issuer:      t.Issuer,
		TotalIssued: t.TotalIssued,
	}, weight, build)
	if err != nil {
		return 0, err
	}
	s.evict(ctx, t.Issuer)
	return id, nil
}

func (s *ledgerStore) Token(ctx context.Context, id int64) (domain.Token, error) {
	t, err := s.dao.FindToken(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Token{}, domain.ErrTokenNotFound
	}
	if err != nil {
		return domain.Token{}, err
	}
	return s.toDomain(t), nil
}

func (s *ledgerStore) BalanceOf(ctx context.Context, account string, tokenID int64) (int64, error) {
	b, err := s.dao.FindBalance(ctx, account, tokenID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return b.Quantity, err
}

func (s *ledgerStore) Holdings(ctx context.Context, account string) ([]domain.Holding, error) {
	balances, err := s.dao.FindBalancesByAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	return slice.Map(balances, func(idx int, src dao.BadgeBalance) domain.Holding {
		return domain.Holding{
			TokenID:  src.TokenId,
			Type:     domain.BadgeType(src.Type),
			Quantity: src.Quantity,
		}
	}), nil
}

func (s *ledgerStore) SetTokenApproval(ctx context.Context, owner, operator string, tokenID int64, approved bool, msg outbox.Message) error {
	return s.dao.UpsertTokenApproval(ctx, dao.BadgeTokenApproval{
		Owner:    owner,
		Operator: operator,
		TokenId:  tokenID,
		Approved: approved,
	}, msg)
}

func (s *ledgerStore) SetOperatorApproval(ctx context.Context, owner, operator string, approved bool, msg outbox.Message) error {
	return s.dao.UpsertOperatorApproval(ctx, dao.BadgeOperatorApproval{
		Owner:    owner,
		Operator: operator,
		Approved: approved,
	}, msg)
}

func (s *ledgerStore) IsApprovedForToken(ctx context.Context, owner, operator string, tokenID int64) (bool, error) {
	a, err := s.dao.FindTokenApproval(ctx, owner, operator, tokenID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return a.Approved, err
}

func (s *ledgerStore) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	a, err := s.dao.FindOperatorApproval(ctx, owner, operator)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return a.Approved, err
}

func (s *ledgerStore) Move(ctx context.Context, m domain.Movement, msg outbox.Message) error {
	err := s.dao.Move(ctx, m.From, m.TokenID, m.Recipients, m.AmountEach, m.Weight, msg)
	switch {
	case errors.Is(err, dao.ErrInsufficientQuantity):
		return domain.ErrInsufficientBalance
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrTokenNotFound
	case err != nil:
		return err
	}
	s.evict(ctx, m.Recipients...)
	return nil
}

func (s *ledgerStore) ScoreOf(ctx context.Context, account string) (int64, error) {
	score, err := s.cache.Get(ctx, account)
	if err == nil {
		return score, nil
	}
	if !errors.Is(err, cache.ErrScoreNotFound) {
		s.logger.Warn("查询积分缓存失败", elog.String("account", account), elog.FieldErr(err))
	}
	res, err := s.dao.FindScore(ctx, account)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if err = s.cache.Set(ctx, account, res.Score); err != nil {
		s.logger.Warn("回写积分缓存失败", elog.String("account", account), elog.FieldErr(err))
	}
	return res.Score, nil
}

// evict 积分以数据库为准，缓存删除失败只影响缓存过期前的读
func (s *ledgerStore) evict(ctx context.Context, accounts ...string) {
	if err := s.cache.Del(ctx, accounts...); err != nil {
		s.logger.Error("删除积分缓存失败", elog.Any("accounts", accounts), elog.FieldErr(err))
	}
}

func (s *ledgerStore) toDomain(t dao.BadgeToken) domain.Token {
	return domain.Token{
		ID:          t.Id,
		Type:        domain.BadgeType(t.Type),
		MetadataURI: t.MetadataURI,
		Issuer:      t.Issuer,
		TotalIssued: t.TotalIssued,
		Remaining:   t.Remaining,
		Ctime:       t.Ctime,
		Utime:       t.Utime,
	}
}
