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
	"database/sql"
	"errors"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository/cache"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("流水记录不存在")

//go:generate mockgen -source=./record.go -package=repomocks -destination=./mocks/record.mock.go
type RecordRepository interface {
	// Save 幂等写入，同一个 RawEventRef 只会落库一次
	Save(ctx context.Context, r domain.Record) (inserted bool, err error)
	Index(ctx context.Context, r domain.Record) error
	Record(ctx context.Context, ref string) (domain.Record, error)
	RecordsByActor(ctx context.Context, actor string, offset, limit int) ([]domain.Record, error)
	RecordsByKind(ctx context.Context, kind chainevent.Kind, offset, limit int) ([]domain.Record, error)

	AdvanceCursor(ctx context.Context, c domain.Cursor) error
	Cursor(ctx context.Context, kind chainevent.Kind) (domain.Cursor, error)

	Park(ctx context.Context, d domain.DeadLetter) (int64, error)
	DeadLetters(ctx context.Context, maxAttempts, limit int) ([]domain.DeadLetter, error)
	DeleteDeadLetter(ctx context.Context, id int64) error
	RetryFailed(ctx context.Context, id int64, reason string) error
}

type recordRepository struct {
	dao     dao.RecordDAO
	cache   cache.DedupCache
	indexer dao.RecordIndexer
	logger  *elog.Component
}

func NewRecordRepository(d dao.RecordDAO, c cache.DedupCache, indexer dao.RecordIndexer) RecordRepository {
	return &recordRepository{
		dao:     d,
		cache:   c,
		indexer: indexer,
		logger:  elog.DefaultLogger,
	}
}

func (r *recordRepository) Save(ctx context.Context, rec domain.Record) (bool, error) {
	seen, err := r.cache.Seen(ctx, rec.RawEventRef)
	if err != nil {
		// 缓存不可用时依赖数据库的唯一索引去重
		r.logger.Warn("查询去重缓存失败", elog.FieldErr(err), elog.String("ref", rec.RawEventRef))
	}
	if seen {
		return false, nil
	}
	inserted, err := r.dao.Insert(ctx, r.toEntity(rec))
	if err != nil {
		return false, err
	}
	if err = r.cache.MarkSeen(ctx, rec.RawEventRef); err != nil {
		r.logger.Warn("写入去重缓存失败", elog.FieldErr(err), elog.String("ref", rec.RawEventRef))
	}
	return inserted, nil
}

func (r *recordRepository) Index(ctx context.Context, rec domain.Record) error {
	doc := dao.RecordDocument{
		Kind:        rec.Kind.String(),
		Actor:       rec.Actor,
		TokenID:     rec.TokenID,
		BadgeType:   rec.BadgeType,
		Amount:      rec.Amount,
		RawEventRef: rec.RawEventRef,
		Seq:         rec.Seq,
		Detail:      string(rec.Detail),
		ObservedAt:  rec.ObservedAt,
	}
	if rec.Counterpart != nil {
		doc.Counterpart = *rec.Counterpart
	}
	if rec.URI != nil {
		doc.URI = *rec.URI
	}
	return r.indexer.Index(ctx, doc)
}

func (r *recordRepository) Record(ctx context.Context, ref string) (domain.Record, error) {
	res, err := r.dao.FindByRef(ctx, ref)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Record{}, ErrRecordNotFound
	}
	if err != nil {
		return domain.Record{}, err
	}
	return r.toDomain(res), nil
}

func (r *recordRepository) RecordsByActor(ctx context.Context, actor string, offset, limit int) ([]domain.Record, error) {
	res, err := r.dao.FindByActor(ctx, actor, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.TransactionRecord) domain.Record {
		return r.toDomain(src)
	}), nil
}

func (r *recordRepository) RecordsByKind(ctx context.Context, kind chainevent.Kind, offset, limit int) ([]domain.Record, error) {
	res, err := r.dao.FindByKind(ctx, kind.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.TransactionRecord) domain.Record {
		return r.toDomain(src)
	}), nil
}

func (r *recordRepository) AdvanceCursor(ctx context.Context, c domain.Cursor) error {
	return r.dao.AdvanceCursor(ctx, dao.Cursor{
		Kind:        c.Kind.ToUint8(),
		Seq:         c.Seq,
		RawEventRef: c.RawEventRef,
	})
}

func (r *recordRepository) Cursor(ctx context.Context, kind chainevent.Kind) (domain.Cursor, error) {
	c, err := r.dao.FindCursor(ctx, kind.ToUint8())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 还没有消费过
		return domain.Cursor{Kind: kind}, nil
	}
	if err != nil {
		return domain.Cursor{}, err
	}
	return domain.Cursor{
		Kind:        chainevent.Kind(c.Kind),
		Seq:         c.Seq,
		RawEventRef: c.RawEventRef,
		Utime:       c.Utime,
	}, nil
}

func (r *recordRepository) Park(ctx context.Context, d domain.DeadLetter) (int64, error) {
	return r.dao.InsertDeadLetter(ctx, dao.DeadLetter{
		Kind:        d.Kind.ToUint8(),
		RawEventRef: d.RawEventRef,
		Body:        d.Body,
		Reason:      truncate(d.Reason, 1024),
		Attempts:    d.Attempts,
	})
}

func (r *recordRepository) DeadLetters(ctx context.Context, maxAttempts, limit int) ([]domain.DeadLetter, error) {
	res, err := r.dao.FindDeadLetters(ctx, maxAttempts, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.DeadLetter) domain.DeadLetter {
		return domain.DeadLetter{
			ID:          src.Id,
			Kind:        chainevent.Kind(src.Kind),
			RawEventRef: src.RawEventRef,
			Body:        src.Body,
			Reason:      src.Reason,
			Attempts:    src.Attempts,
			Ctime:       src.Ctime,
			Utime:       src.Utime,
		}
	}), nil
}

func (r *recordRepository) DeleteDeadLetter(ctx context.Context, id int64) error {
	return r.dao.DeleteDeadLetter(ctx, id)
}

func (r *recordRepository) RetryFailed(ctx context.Context, id int64, reason string) error {
	return r.dao.IncrDeadLetterAttempts(ctx, id, truncate(reason, 1024))
}

func (r *recordRepository) toEntity(rec domain.Record) dao.TransactionRecord {
	res := dao.TransactionRecord{
		Kind:        rec.Kind.ToUint8(),
		Actor:       rec.Actor,
		RawEventRef: rec.RawEventRef,
		Seq:         rec.Seq,
		Detail:      string(rec.Detail),
		ObservedAt:  rec.ObservedAt,
	}
	if rec.Counterpart != nil {
		res.Counterpart = sql.NullString{String: *rec.Counterpart, Valid: true}
	}
	if rec.TokenID != nil {
		res.TokenId = sql.NullInt64{Int64: *rec.TokenID, Valid: true}
	}
	if rec.BadgeType != nil {
		res.BadgeType = sql.NullByte{Byte: *rec.BadgeType, Valid: true}
	}
	if rec.Amount != nil {
		res.Amount = sql.NullInt64{Int64: *rec.Amount, Valid: true}
	}
	if rec.URI != nil {
		res.URI = sql.NullString{String: *rec.URI, Valid: true}
	}
	return res
}

func (r *recordRepository) toDomain(src dao.TransactionRecord) domain.Record {
	res := domain.Record{
		ID:          src.Id,
		Kind:        chainevent.Kind(src.Kind),
		Actor:       src.Actor,
		RawEventRef: src.RawEventRef,
		Seq:         src.Seq,
		Detail:      []byte(src.Detail),
		ObservedAt:  src.ObservedAt,
	}
	if src.Counterpart.Valid {
		res.Counterpart = &src.Counterpart.String
	}
	if src.TokenId.Valid {
		res.TokenID = &src.TokenId.Int64
	}
	if src.BadgeType.Valid {
		res.BadgeType = &src.BadgeType.Byte
	}
	if src.Amount.Valid {
		res.Amount = &src.Amount.Int64
	}
	if src.URI.Valid {
		res.URI = &src.URI.String
	}
	return res
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
