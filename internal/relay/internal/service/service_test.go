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
	"encoding/json"
	"errors"
	"testing"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository"
	repomocks "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
)

func transferEnvelope(t *testing.T, logIndex int, seq int64) chainevent.Envelope {
	env, err := chainevent.Seal(chainevent.TransferSingle{
		Initiator: alice,
		From:      alice,
		To:        bob,
		TokenID:   0,
		Amount:    3,
	}, "0xabc", logIndex, seq, 1000)
	require.NoError(t, err)
	return env
}

func TestRelayService_Persist(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.RecordRepository
		env  func(t *testing.T) chainevent.Envelope

		wantInserted bool
		wantErr      error
	}{
		{
			name: "首次写入",
			mock: func(ctrl *gomock.Controller) repository.RecordRepository {
				repo := repomocks.NewMockRecordRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r domain.Record) (bool, error) {
					assert.Equal(t, chainevent.KindTransferSingle, r.Kind)
					assert.Equal(t, alice, r.Actor)
					assert.Equal(t, bob, *r.Counterpart)
					assert.Equal(t, "0xabc:0", r.RawEventRef)
					assert.Nil(t, r.BadgeType)
					return true, nil
				})
				repo.EXPECT().AdvanceCursor(gomock.Any(), domain.Cursor{
					Kind:        chainevent.KindTransferSingle,
					Seq:         7,
					RawEventRef: "0xabc:0",
				}).Return(nil)
				repo.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			env: func(t *testing.T) chainevent.Envelope {
				return transferEnvelope(t, 0, 7)
			},
			wantInserted: true,
		},
		{
			name: "重复事件不再建索引",
			mock: func(ctrl *gomock.Controller) repository.RecordRepository {
				repo := repomocks.NewMockRecordRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().AdvanceCursor(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			env: func(t *testing.T) chainevent.Envelope {
				return transferEnvelope(t, 0, 7)
			},
		},
		{
			name: "游标和索引失败不影响结果",
			mock: func(ctrl *gomock.Controller) repository.RecordRepository {
				repo := repomocks.NewMockRecordRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().AdvanceCursor(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				repo.EXPECT().Index(gomock.Any(), gomock.Any()).Return(errors.New("mock es error"))
				return repo
			},
			env: func(t *testing.T) chainevent.Envelope {
				return transferEnvelope(t, 1, 8)
			},
			wantInserted: true,
		},
		{
			name: "负载无法解析",
			mock: func(ctrl *gomock.Controller) repository.RecordRepository {
				return repomocks.NewMockRecordRepository(ctrl)
			},
			env: func(t *testing.T) chainevent.Envelope {
				return chainevent.Envelope{
					Kind:    chainevent.KindTransferSingle,
					TxHash:  "0xabc",
					Payload: json.RawMessage("[1, 2]"),
				}
			},
			wantErr: ErrMalformedEvent,
		},
		{
			name: "写库失败",
			mock: func(ctrl *gomock.Controller) repository.RecordRepository {
				repo := repomocks.NewMockRecordRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, errors.New("mock db error"))
				return repo
			},
			env: func(t *testing.T) chainevent.Envelope {
				return transferEnvelope(t, 0, 7)
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), 5)
			inserted, err := svc.Persist(context.Background(), tc.env(t))
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ErrMalformedEvent) {
					assert.ErrorIs(t, err, ErrMalformedEvent)
				} else {
					assert.EqualError(t, err, tc.wantErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantInserted, inserted)
		})
	}
}

func TestRelayService_ReplayDeadLetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := transferEnvelope(t, 0, 7)
	body, err := json.Marshal(env)
	require.NoError(t, err)

	repo := repomocks.NewMockRecordRepository(ctrl)
	repo.EXPECT().DeadLetters(gomock.Any(), 5, 10).Return([]domain.DeadLetter{
		{ID: 1, Kind: chainevent.KindTransferSingle, RawEventRef: "0xabc:0", Body: body},
		{ID: 2, Kind: chainevent.KindTransferSingle, RawEventRef: "0xabc:1", Body: []byte("not json")},
		{ID: 3, Kind: chainevent.KindIssuance, RawEventRef: "0xabc:0", Body: body},
	}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().AdvanceCursor(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().DeleteDeadLetter(gomock.Any(), int64(1)).Return(nil)
	// 消息体损坏和类型不一致都只记一次失败
	repo.EXPECT().RetryFailed(gomock.Any(), int64(2), gomock.Any()).Return(nil)
	repo.EXPECT().RetryFailed(gomock.Any(), int64(3), gomock.Any()).Return(nil)

	svc := NewService(repo, 5)
	n, err := svc.ReplayDeadLetters(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRelayService_Park(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dl := domain.DeadLetter{
		Kind:        chainevent.KindIssuance,
		RawEventRef: "0xabc:0",
		Body:        []byte("{}"),
		Reason:      "mock db error",
	}
	repo := repomocks.NewMockRecordRepository(ctrl)
	repo.EXPECT().Park(gomock.Any(), dl).Return(int64(1), nil)
	repo.EXPECT().Park(gomock.Any(), dl).Return(int64(0), errors.New("mock db error"))

	svc := NewService(repo, 5)
	require.NoError(t, svc.Park(context.Background(), dl))
	assert.Error(t, svc.Park(context.Background(), dl))
}

func TestRelayService_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockRecordRepository(ctrl)
	repo.EXPECT().RecordsByActor(gomock.Any(), alice, 0, 10).Return([]domain.Record{{ID: 1, Actor: alice}}, nil)
	repo.EXPECT().RecordsByKind(gomock.Any(), chainevent.KindIssuance, 0, 10).Return([]domain.Record{}, nil)

	svc := NewService(repo, 5)
	ctx := context.Background()
	res, err := svc.RecordsByActor(ctx, "0x1111111111111111111111111111111111111111", 0, 10)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = svc.RecordsByActor(ctx, "not an address", 0, 10)
	assert.ErrorIs(t, err, ErrInvalidAccount)

	_, err = svc.RecordsByKind(ctx, chainevent.KindIssuance, 0, 10)
	require.NoError(t, err)
	_, err = svc.RecordsByKind(ctx, chainevent.Kind(42), 0, 10)
	assert.ErrorIs(t, err, ErrUnknownKind)
	_, err = svc.Cursor(ctx, chainevent.KindUnknown)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
