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

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/repository"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/account"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
)

var (
	ErrInvalidRecipient   = domain.ErrInvalidRecipient
	ErrInvalidAccount     = domain.ErrInvalidAccount
	ErrNotOwner           = domain.ErrNotOwner
	ErrThresholdNotMet    = domain.ErrThresholdNotMet
	ErrMaxLevelReached    = domain.ErrMaxLevelReached
	ErrAlreadyMinted      = domain.ErrAlreadyMinted
	ErrCredentialNotFound = domain.ErrCredentialNotFound
	ErrLevelChanged       = domain.ErrLevelChanged
)

// ScoreReader 读取账户的徽章积分
type ScoreReader interface {
	ScoreOf(ctx context.Context, owner string) (int64, error)
}

//go:generate mockgen -source=./service.go -package=dnftmocks -destination=../../mocks/dnft.mock.go
type Service interface {
	Mint(ctx context.Context, to, name, description, metadataURI string) (int64, error)
	UpdateName(ctx context.Context, caller string, tokenID int64, name string) error
	UpdateDescription(ctx context.Context, caller string, tokenID int64, description string) error
	// Upgrade 升一级并返回新等级
	Upgrade(ctx context.Context, caller string, tokenID int64) (domain.Level, error)
	Credential(ctx context.Context, tokenID int64) (domain.Credential, error)
	CredentialsOf(ctx context.Context, owner string) ([]domain.Credential, error)
}

type credentialService struct {
	repo   repository.CredentialRepository
	scores ScoreReader
	sealer chainevent.Sealer
	rules  domain.Rules
}

func NewService(repo repository.CredentialRepository, scores ScoreReader,
	sealer chainevent.Sealer, rules domain.Rules) Service {
	return &credentialService{
		repo:   repo,
		scores: scores,
		sealer: sealer,
		rules:  rules,
	}
}

func (s *credentialService) Mint(ctx context.Context, to, name, description, metadataURI string) (int64, error) {
	if !account.Valid(to) {
		return 0, ErrInvalidRecipient
	}
	to = account.Normalize(to)
	return s.repo.Create(ctx, domain.Credential{
		Owner:       to,
		Name:        name,
		Description: description,
		MetadataURI: metadataURI,
	}, !s.rules.AllowMultipleMints, func(id int64) (outbox.Message, error) {
		return s.sealer.Seal(chainevent.CredentialMint{
			To:          to,
			Name:        name,
			Description: description,
			TokenID:     id,
			MetadataURI: metadataURI,
		})
	})
}

func (s *credentialService) UpdateName(ctx context.Context, caller string, tokenID int64, name string) error {
	if _, err := s.owned(ctx, caller, tokenID); err != nil {
		return err
	}
	return s.repo.UpdateName(ctx, tokenID, name)
}

func (s *credentialService) UpdateDescription(ctx context.Context, caller string, tokenID int64, description string) error {
	if _, err := s.owned(ctx, caller, tokenID); err != nil {
		return err
	}
	return s.repo.UpdateDescription(ctx, tokenID, description)
}

// Upgrade 依次检查持有人、最高等级、积分门槛，重复调用会确定性地失败
func (s *credentialService) Upgrade(ctx context.Context, caller string, tokenID int64) (domain.Level, error) {
	c, err := s.owned(ctx, caller, tokenID)
	if err != nil {
		return 0, err
	}
	threshold, ok := s.rules.Thresholds.Next(c.Level)
	if !ok {
		return c.Level, ErrMaxLevelReached
	}
	score, err := s.scores.ScoreOf(ctx, c.Owner)
	if err != nil {
		return c.Level, err
	}
	if score < threshold {
		return c.Level, ErrThresholdNotMet
	}
	next := c.Level + 1
	msg, err := s.sealer.Seal(chainevent.CredentialUpgrade{
		Owner:    c.Owner,
		TokenID:  tokenID,
		NewLevel: next.ToUint8(),
	})
	if err != nil {
		return c.Level, err
	}
	if err = s.repo.UpdateLevel(ctx, tokenID, c.Level, next, msg); err != nil {
		return c.Level, err
	}
	return next, nil
}

func (s *credentialService) Credential(ctx context.Context, tokenID int64) (domain.Credential, error) {
	return s.repo.FindByID(ctx, tokenID)
}

func (s *credentialService) CredentialsOf(ctx context.Context, owner string) ([]domain.Credential, error) {
	if !account.Valid(owner) {
		return nil, ErrInvalidAccount
	}
	return s.repo.FindByOwner(ctx, account.Normalize(owner))
}

func (s *credentialService) owned(ctx context.Context, caller string, tokenID int64) (domain.Credential, error) {
	c, err := s.repo.FindByID(ctx, tokenID)
	if err != nil {
		return domain.Credential{}, err
	}
	if !account.Equal(caller, c.Owner) {
		return domain.Credential{}, ErrNotOwner
	}
	return c, nil
}
