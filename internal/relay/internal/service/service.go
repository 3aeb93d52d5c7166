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
	"fmt"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/account"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrMalformedEvent = domain.ErrMalformedEvent
	ErrRecordNotFound = repository.ErrRecordNotFound
	ErrInvalidAccount = errors.New("账户地址非法")
	ErrUnknownKind    = chainevent.ErrUnknownKind
)

//go:generate mockgen -source=./service.go -package=relaymocks -destination=../../mocks/relay.mock.go
type Service interface {
	// Persist 映射并幂等写入一个事件，重复事件返回 false
	Persist(ctx context.Context, env chainevent.Envelope) (bool, error)
	// Park 把无法写入的事件放进死信表
	Park(ctx context.Context, d domain.DeadLetter) error
	// ReplayDeadLetters 重放一批死信，返回成功的条数
	ReplayDeadLetters(ctx context.Context, limit int) (int, error)

	Record(ctx context.Context, ref string) (domain.Record, error)
	RecordsByActor(ctx context.Context, actor string, offset, limit int) ([]domain.Record, error)
	RecordsByKind(ctx context.Context, kind chainevent.Kind, offset, limit int) ([]domain.Record, error)
	Cursor(ctx context.Context, kind chainevent.Kind) (domain.Cursor, error)
}

type relayService struct {
	repo repository.RecordRepository
	// maxReplays 死信最多重放的次数
	maxReplays int
	logger     *elog.Component
}

func NewService(repo repository.RecordRepository, maxReplays int) Service {
	return &relayService{
		repo:       repo,
		maxReplays: maxReplays,
		logger:     elog.DefaultLogger,
	}
}

func (s *relayService) Persist(ctx context.Context, env chainevent.Envelope) (bool, error) {
	r, err := domain.Map(env, time.Now().UnixMilli())
	if err != nil {
		return false, err
	}
	inserted, err := s.repo.Save(ctx, r)
	if err != nil {
		return false, err
	}
	err = s.repo.AdvanceCursor(ctx, domain.Cursor{
		Kind:        r.Kind,
		Seq:         r.Seq,
		RawEventRef: r.RawEventRef,
	})
	if err != nil {
		s.logger.Warn("推进消费位置失败",
			elog.FieldErr(err),
			elog.String("kind", r.Kind.String()),
			elog.Int64("seq", r.Seq))
	}
	if inserted {
		if err = s.repo.Index(ctx, r); err != nil {
			s.logger.Warn("同步搜索索引失败", elog.FieldErr(err), elog.String("ref", r.RawEventRef))
		}
	}
	return inserted, nil
}

func (s *relayService) Park(ctx context.Context, d domain.DeadLetter) error {
	id, err := s.repo.Park(ctx, d)
	if err != nil {
		return err
	}
	s.logger.Warn("事件进入死信",
		elog.Int64("id", id),
		elog.String("kind", d.Kind.String()),
		elog.String("ref", d.RawEventRef),
		elog.String("reason", d.Reason))
	return nil
}

func (s *relayService) ReplayDeadLetters(ctx context.Context, limit int) (int, error) {
	dls, err := s.repo.DeadLetters(ctx, s.maxReplays, limit)
	if err != nil {
		return 0, err
	}
	replayed := 0
	for _, dl := range dls {
		if err = s.replay(ctx, dl); err != nil {
			s.logger.Warn("重放死信失败", elog.FieldErr(err), elog.Int64("id", dl.ID))
			if err = s.repo.RetryFailed(ctx, dl.ID, err.Error()); err != nil {
				return replayed, err
			}
			continue
		}
		if err = s.repo.DeleteDeadLetter(ctx, dl.ID); err != nil {
			return replayed, err
		}
		replayed++
	}
	return replayed, nil
}

func (s *relayService) replay(ctx context.Context, dl domain.DeadLetter) error {
	env, err := chainevent.Unmarshal(dl.Body, dl.Kind)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	_, err = s.Persist(ctx, env)
	return err
}

func (s *relayService) Record(ctx context.Context, ref string) (domain.Record, error) {
	return s.repo.Record(ctx, ref)
}

func (s *relayService) RecordsByActor(ctx context.Context, actor string, offset, limit int) ([]domain.Record, error) {
	if !account.Valid(actor) {
		return nil, ErrInvalidAccount
	}
	return s.repo.RecordsByActor(ctx, account.Normalize(actor), offset, limit)
}

func (s *relayService) RecordsByKind(ctx context.Context, kind chainevent.Kind, offset, limit int) ([]domain.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return s.repo.RecordsByKind(ctx, kind, offset, limit)
}

func (s *relayService) Cursor(ctx context.Context, kind chainevent.Kind) (domain.Cursor, error) {
	if !kind.Valid() {
		return domain.Cursor{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return s.repo.Cursor(ctx, kind)
}
