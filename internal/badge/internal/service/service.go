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

package service

import (
	"context"
	"errors"
	"math"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/account"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
)

var (
	ErrInvalidAmount       = domain.ErrInvalidAmount
	ErrZeroAmount          = domain.ErrZeroAmount
	ErrInvalidRecipient    = domain.ErrInvalidRecipient
	ErrInvalidAccount      = domain.ErrInvalidAccount
	ErrInvalidBadgeType    = domain.ErrInvalidBadgeType
	ErrNoAuthority         = domain.ErrNoAuthority
	ErrInsufficientBalance = domain.ErrInsufficientBalance
	ErrTokenNotFound       = domain.ErrTokenNotFound
	ErrLengthMismatch      = domain.ErrLengthMismatch
)

//go:generate mockgen -source=./service.go -package=badgemocks -destination=../../mocks/badge.mock.go Service
type Service interface {
	Issue(ctx context.Context, to string, typ domain.BadgeType, amount int64, metadataURI string) (int64, error)
	ApproveToken(ctx context.Context, owner, operator string, tokenID int64, approved bool) error
	ApproveAll(ctx context.Context, owner, operator string, approved bool) error
	Transfer(ctx context.Context, initiator, from, to string, tokenID, amount int64) error
	TransferMany(ctx context.Context, initiator, from string, recipients []string, tokenID, amountEach int64) error

	Token(ctx context.Context, tokenID int64) (domain.Token, error)
	BalanceOf(ctx context.Context, owner string, tokenID int64) (int64, error)
	BalanceOfBatch(ctx context.Context, owners []string, tokenIDs []int64) ([]int64, error)
	Holdings(ctx context.Context, owner string) ([]domain.Holding, error)
	IsApprovedForToken(ctx context.Context, owner, operator string, tokenID int64) (bool, error)
	IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error)
	// ScoreOf 按配置的口径返回积分
	ScoreOf(ctx context.Context, owner string) (int64, error)
}

type badgeService struct {
	store  repository.LedgerStore
	sealer chainevent.Sealer
	policy domain.Policy
}

func NewService(store repository.LedgerStore, sealer chainevent.Sealer, policy domain.Policy) Service {
	return &badgeService{
		store:  store,
		sealer: sealer,
		policy: policy,
	}
}

func (s *badgeService) Issue(ctx context.Context, to string, typ domain.BadgeType, amount int64, metadataURI string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if !account.Valid(to) {
		return 0, ErrInvalidRecipient
	}
	if !typ.Valid() {
		return 0, ErrInvalidBadgeType
	}
	to = account.Normalize(to)
	return s.store.CreateToken(ctx, domain.Token{
		Type:        typ,
		MetadataURI: metadataURI,
		Issuer:      to,
		TotalIssued: amount,
	}, s.policy.Weights.Of(typ), func(id int64) (outbox.Message, error) {
		return s.sealer.Seal(chainevent.Issuance{
			To:          to,
			BadgeType:   typ.ToUint8(),
			Amount:      amount,
			TokenID:     id,
			MetadataURI: metadataURI,
		})
	})
}

func (s *badgeService) ApproveToken(ctx context.Context, owner, operator string, tokenID int64, approved bool) error {
	if !account.Valid(owner) || !account.Valid(operator) {
		return ErrInvalidAccount
	}
	owner, operator = account.Normalize(owner), account.Normalize(operator)
	msg, err := s.sealer.Seal(chainevent.ApprovalToken{
		Owner:    owner,
		Operator: operator,
		TokenID:  tokenID,
		Approved: approved,
	})
	if err != nil {
		return err
	}
	return s.store.SetTokenApproval(ctx, owner, operator, tokenID, approved, msg)
}

func (s *badgeService) ApproveAll(ctx context.Context, owner, operator string, approved bool) error {
	if !account.Valid(owner) || !account.Valid(operator) {
		return ErrInvalidAccount
	}
	owner, operator = account.Normalize(owner), account.Normalize(operator)
	msg, err := s.sealer.Seal(chainevent.ApprovalForAll{
		Owner:    owner,
		Operator: operator,
		Approved: approved,
	})
	if err != nil {
		return err
	}
	return s.store.SetOperatorApproval(ctx, owner, operator, approved, msg)
}

func (s *badgeService) Transfer(ctx context.Context, initiator, from, to string, tokenID, amount int64) error {
	m, err := s.prepare(ctx, initiator, from, []string{to}, tokenID, amount)
	if err != nil {
		return err
	}
	msg, err := s.sealer.Seal(chainevent.TransferSingle{
		Initiator: account.Normalize(initiator),
		From:      m.From,
		To:        m.Recipients[0],
		TokenID:   tokenID,
		Amount:    amount,
	})
	if err != nil {
		return err
	}
	return s.store.Move(ctx, m, msg)
}

func (s *badgeService) TransferMany(ctx context.Context, initiator, from string, recipients []string, tokenID, amountEach int64) error {
	m, err := s.prepare(ctx, initiator, from, recipients, tokenID, amountEach)
	if err != nil {
		return err
	}
	msg, err := s.sealer.Seal(chainevent.TransferBatch{
		Initiator:  account.Normalize(initiator),
		From:       m.From,
		Recipients: m.Recipients,
		TokenID:    tokenID,
		AmountEach: amountEach,
	})
	if err != nil {
		return err
	}
	return s.store.Move(ctx, m, msg)
}

// prepare 按固定顺序做前置校验：接收方、数量、权限、余额
func (s *badgeService) prepare(ctx context.Context, initiator, from string, recipients []string, tokenID, amountEach int64) (domain.Movement, error) {
	if len(recipients) == 0 {
		return domain.Movement{}, ErrInvalidRecipient
	}
	normalized := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if !account.Valid(r) {
			return domain.Movement{}, ErrInvalidRecipient
		}
		normalized = append(normalized, account.Normalize(r))
	}
	if amountEach <= 0 {
		return domain.Movement{}, ErrZeroAmount
	}
	initiator, from = account.Normalize(initiator), account.Normalize(from)
	ok, err := s.authorized(ctx, initiator, from, tokenID)
	if err != nil {
		return domain.Movement{}, err
	}
	if !ok {
		return domain.Movement{}, ErrNoAuthority
	}
	if amountEach > math.MaxInt64/int64(len(normalized)) {
		return domain.Movement{}, ErrInsufficientBalance
	}
	m := domain.Movement{
		From:       from,
		TokenID:    tokenID,
		Recipients: normalized,
		AmountEach: amountEach,
	}
	balance, err := s.store.BalanceOf(ctx, from, tokenID)
	if err != nil {
		return domain.Movement{}, err
	}
	if balance < m.Total() {
		return domain.Movement{}, ErrInsufficientBalance
	}
	token, err := s.store.Token(ctx, tokenID)
	if errors.Is(err, ErrTokenNotFound) {
		return domain.Movement{}, ErrInsufficientBalance
	}
	if err != nil {
		return domain.Movement{}, err
	}
	m.Weight = s.policy.Weights.Of(token.Type)
	return m, nil
}

func (s *badgeService) authorized(ctx context.Context, initiator, from string, tokenID int64) (bool, error) {
	if initiator == from {
		return true, nil
	}
	ok, err := s.store.IsApprovedForToken(ctx, from, initiator, tokenID)
	if err != nil || ok {
		return ok, err
	}
	return s.store.IsApprovedForAll(ctx, from, initiator)
}

func (s *badgeService) Token(ctx context.Context, tokenID int64) (domain.Token, error) {
	return s.store.Token(ctx, tokenID)
}

func (s *badgeService) BalanceOf(ctx context.Context, owner string, tokenID int64) (int64, error) {
	return s.store.BalanceOf(ctx, account.Normalize(owner), tokenID)
}

func (s *badgeService) BalanceOfBatch(ctx context.Context, owners []string, tokenIDs []int64) ([]int64, error) {
	if len(owners) != len(tokenIDs) {
		return nil, ErrLengthMismatch
	}
	res := make([]int64, 0, len(owners))
	for i := range owners {
		b, err := s.BalanceOf(ctx, owners[i], tokenIDs[i])
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, nil
}

func (s *badgeService) Holdings(ctx context.Context, owner string) ([]domain.Holding, error) {
	return s.store.Holdings(ctx, account.Normalize(owner))
}

func (s *badgeService) IsApprovedForToken(ctx context.Context, owner, operator string, tokenID int64) (bool, error) {
	return s.store.IsApprovedForToken(ctx, account.Normalize(owner), account.Normalize(operator), tokenID)
}

func (s *badgeService) IsApprovedForAll(ctx context.Context, owner, operator string) (bool, error) {
	return s.store.IsApprovedForAll(ctx, account.Normalize(owner), account.Normalize(operator))
}

func (s *badgeService) ScoreOf(ctx context.Context, owner string) (int64, error) {
	owner = account.Normalize(owner)
	if s.policy.Score == domain.ScorePolicyLive {
		holdings, err := s.store.Holdings(ctx, owner)
		if err != nil {
			return 0, err
		}
		return domain.RecomputeScore(holdings, s.policy.Weights), nil
	}
	return s.store.ScoreOf(ctx, owner)
}
