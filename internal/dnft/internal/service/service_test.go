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

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/repository"
	repomocks "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/repository/mocks"
	dnftmocks "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/mocks"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	chaineventmocks "github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent/mocks"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
)

var errMockSeal = errors.New("mock sequencer error")

// buildWith 让 mock 仓库像真实实现一样在写入时生成事件
func buildWith(id int64) func(ctx context.Context, c domain.Credential, unique bool, build outbox.Builder) (int64, error) {
	return func(ctx context.Context, c domain.Credential, unique bool, build outbox.Builder) (int64, error) {
		if _, err := build(id); err != nil {
			return 0, err
		}
		return id, nil
	}
}

func credential(level domain.Level) domain.Credential {
	return domain.Credential{
		ID:          1,
		Owner:       alice,
		Level:       level,
		Name:        "clean miler",
		MetadataURI: "ipfs://dnft/1",
	}
}

func TestCredentialService_Mint(t *testing.T) {
	testCases := []struct {
		name  string
		mock  func(ctrl *gomock.Controller) (repository.CredentialRepository, chainevent.Sealer)
		rules domain.Rules
		to    string

		wantID  int64
		wantErr error
	}{
		{
			name: "铸造成功",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Credential{
					Owner:       alice,
					Name:        "clean miler",
					Description: "first",
					MetadataURI: "ipfs://dnft/1",
				}, false, gomock.Any()).DoAndReturn(buildWith(1))
				sealer := chaineventmocks.NewMockSealer(ctrl)
				sealer.EXPECT().Seal(chainevent.CredentialMint{
					To:          alice,
					Name:        "clean miler",
					Description: "first",
					TokenID:     1,
					MetadataURI: "ipfs://dnft/1",
				}).Return(outbox.Message{}, nil)
				return repo, sealer
			},
			rules:  domain.DefaultRules(),
			to:     "0x1111111111111111111111111111111111111111",
			wantID: 1,
		},
		{
			name: "只允许铸造一次",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), true, gomock.Any()).Return(int64(0), domain.ErrAlreadyMinted)
				return repo, chaineventmocks.NewMockSealer(ctrl)
			},
			rules:   domain.Rules{Thresholds: domain.DefaultThresholds()},
			to:      alice,
			wantErr: ErrAlreadyMinted,
		},
		{
			name: "接收方非法",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, chainevent.Sealer) {
				return repomocks.NewMockCredentialRepository(ctrl), chaineventmocks.NewMockSealer(ctrl)
			},
			rules:   domain.DefaultRules(),
			to:      "0x0000000000000000000000000000000000000000",
			wantErr: ErrInvalidRecipient,
		},
		{
			name: "生成事件失败铸造回滚",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), false, gomock.Any()).DoAndReturn(buildWith(2))
				sealer := chaineventmocks.NewMockSealer(ctrl)
				sealer.EXPECT().Seal(gomock.Any()).Return(outbox.Message{}, errMockSeal)
				return repo, sealer
			},
			rules:   domain.DefaultRules(),
			to:      alice,
			wantErr: errMockSeal,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, sealer := tc.mock(ctrl)
			svc := NewService(repo, dnftmocks.NewMockScoreReader(ctrl), sealer, tc.rules)
			id, err := svc.Mint(context.Background(), tc.to, "clean miler", "first", "ipfs://dnft/1")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestCredentialService_UpdateName(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CredentialRepository
		caller  string
		wantErr error
	}{
		{
			name: "持有人修改",
			mock: func(ctrl *gomock.Controller) repository.CredentialRepository {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(0), nil)
				repo.EXPECT().UpdateName(gomock.Any(), int64(1), "new name").Return(nil)
				return repo
			},
			caller: "0x1111111111111111111111111111111111111111",
		},
		{
			name: "非持有人",
			mock: func(ctrl *gomock.Controller) repository.CredentialRepository {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(0), nil)
				return repo
			},
			caller:  bob,
			wantErr: ErrNotOwner,
		},
		{
			name: "凭证不存在",
			mock: func(ctrl *gomock.Controller) repository.CredentialRepository {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Credential{}, domain.ErrCredentialNotFound)
				return repo
			},
			caller:  alice,
			wantErr: ErrCredentialNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), dnftmocks.NewMockScoreReader(ctrl),
				chaineventmocks.NewMockSealer(ctrl), domain.DefaultRules())
			err := svc.UpdateName(context.Background(), tc.caller, 1, "new name")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCredentialService_UpdateDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCredentialRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(0), nil).Times(2)
	repo.EXPECT().UpdateDescription(gomock.Any(), int64(1), "picked up 3 bags").Return(nil)
	svc := NewService(repo, dnftmocks.NewMockScoreReader(ctrl),
		chaineventmocks.NewMockSealer(ctrl), domain.DefaultRules())

	assert.NoError(t, svc.UpdateDescription(context.Background(), alice, 1, "picked up 3 bags"))
	assert.ErrorIs(t, svc.UpdateDescription(context.Background(), bob, 1, "stolen"), ErrNotOwner)
}

func TestCredentialService_Upgrade(t *testing.T) {
	testCases := []struct {
		name   string
		mock   func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer)
		caller string

		wantLevel domain.Level
		wantErr   error
	}{
		{
			name: "升级成功",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				msg := outbox.Message{Key: "0xabc:0", Seq: 9}
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(1), nil)
				repo.EXPECT().UpdateLevel(gomock.Any(), int64(1), domain.Level(1), domain.Level(2), msg).Return(nil)
				scores := dnftmocks.NewMockScoreReader(ctrl)
				scores.EXPECT().ScoreOf(gomock.Any(), alice).Return(int64(30), nil)
				sealer := chaineventmocks.NewMockSealer(ctrl)
				sealer.EXPECT().Seal(chainevent.CredentialUpgrade{
					Owner:    alice,
					TokenID:  1,
					NewLevel: 2,
				}).Return(msg, nil)
				return repo, scores, sealer
			},
			caller:    alice,
			wantLevel: 2,
		},
		{
			name: "非持有人",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(1), nil)
				return repo, dnftmocks.NewMockScoreReader(ctrl), chaineventmocks.NewMockSealer(ctrl)
			},
			caller:  bob,
			wantErr: ErrNotOwner,
		},
		{
			name: "积分不足",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(1), nil)
				scores := dnftmocks.NewMockScoreReader(ctrl)
				scores.EXPECT().ScoreOf(gomock.Any(), alice).Return(int64(29), nil)
				return repo, scores, chaineventmocks.NewMockSealer(ctrl)
			},
			caller:    alice,
			wantLevel: 1,
			wantErr:   ErrThresholdNotMet,
		},
		{
			name: "已是最高等级",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(3), nil)
				return repo, dnftmocks.NewMockScoreReader(ctrl), chaineventmocks.NewMockSealer(ctrl)
			},
			caller:    alice,
			wantLevel: 3,
			wantErr:   ErrMaxLevelReached,
		},
		{
			name: "并发升级",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(0), nil)
				repo.EXPECT().UpdateLevel(gomock.Any(), int64(1), domain.Level(0), domain.Level(1), gomock.Any()).Return(domain.ErrLevelChanged)
				scores := dnftmocks.NewMockScoreReader(ctrl)
				scores.EXPECT().ScoreOf(gomock.Any(), alice).Return(int64(100), nil)
				sealer := chaineventmocks.NewMockSealer(ctrl)
				sealer.EXPECT().Seal(gomock.Any()).Return(outbox.Message{}, nil)
				return repo, scores, sealer
			},
			caller:  alice,
			wantErr: ErrLevelChanged,
		},
		{
			name: "生成事件失败不升级",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(0), nil)
				scores := dnftmocks.NewMockScoreReader(ctrl)
				scores.EXPECT().ScoreOf(gomock.Any(), alice).Return(int64(100), nil)
				sealer := chaineventmocks.NewMockSealer(ctrl)
				sealer.EXPECT().Seal(gomock.Any()).Return(outbox.Message{}, errMockSeal)
				return repo, scores, sealer
			},
			caller:  alice,
			wantErr: errMockSeal,
		},
		{
			name: "查询积分失败",
			mock: func(ctrl *gomock.Controller) (repository.CredentialRepository, ScoreReader, chainevent.Sealer) {
				repo := repomocks.NewMockCredentialRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(credential(0), nil)
				scores := dnftmocks.NewMockScoreReader(ctrl)
				scores.EXPECT().ScoreOf(gomock.Any(), alice).Return(int64(0), errors.New("mock db error"))
				return repo, scores, chaineventmocks.NewMockSealer(ctrl)
			},
			caller:  alice,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, scores, sealer := tc.mock(ctrl)
			svc := NewService(repo, scores, sealer, domain.DefaultRules())
			level, err := svc.Upgrade(context.Background(), tc.caller, 1)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantLevel, level)
		})
	}
}

// accruingScores 积分随徽章转入累加
type accruingScores struct {
	score map[string]int64
}

func (a *accruingScores) receive(owner string, quantity, weight int64) {
	a.score[owner] += quantity * weight
}

func (a *accruingScores) ScoreOf(_ context.Context, owner string) (int64, error) {
	return a.score[owner], nil
}

// memoryCredentials 只在测试里用的凭证存储，事件消息和凭证一起写入
type memoryCredentials struct {
	repository.CredentialRepository
	items  map[int64]domain.Credential
	outbox []outbox.Message
}

func (m *memoryCredentials) Create(_ context.Context, c domain.Credential, _ bool, build outbox.Builder) (int64, error) {
	c.ID = int64(len(m.items) + 1)
	msg, err := build(c.ID)
	if err != nil {
		return 0, err
	}
	m.items[c.ID] = c
	m.outbox = append(m.outbox, msg)
	return c.ID, nil
}

func (m *memoryCredentials) events(t *testing.T) []chainevent.Payload {
	res := make([]chainevent.Payload, 0, len(m.outbox))
	for _, msg := range m.outbox {
		var env chainevent.Envelope
		require.NoError(t, json.Unmarshal(msg.Body, &env))
		assert.Equal(t, env.Kind.Topic(), msg.Topic)
		p, err := env.Open()
		require.NoError(t, err)
		res = append(res, p)
	}
	return res
}

func (m *memoryCredentials) FindByID(_ context.Context, id int64) (domain.Credential, error) {
	c, ok := m.items[id]
	if !ok {
		return domain.Credential{}, domain.ErrCredentialNotFound
	}
	return c, nil
}

func (m *memoryCredentials) UpdateLevel(_ context.Context, id int64, from, to domain.Level, msg outbox.Message) error {
	c := m.items[id]
	if c.Level != from {
		return domain.ErrLevelChanged
	}
	c.Level = to
	m.items[id] = c
	m.outbox = append(m.outbox, msg)
	return nil
}

func TestCredentialService_LevelProgression(t *testing.T) {
	seq, err := snowflake.NewGenerator(0, 2)
	require.NoError(t, err)
	sealer := chainevent.NewSourceSealer(seq, snowflake.SourceCredential,
		chainevent.KindCredentialMint, chainevent.KindCredentialUpgrade)
	scores := &accruingScores{score: map[string]int64{}}
	repo := &memoryCredentials{items: map[int64]domain.Credential{}}
	svc := NewService(repo, scores, sealer, domain.DefaultRules())
	ctx := context.Background()

	id, err := svc.Mint(ctx, alice, "clean miler", "", "ipfs://dnft/1")
	require.NoError(t, err)
	c, err := svc.Credential(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Level(0), c.Level)

	_, err = svc.Upgrade(ctx, alice, id)
	assert.ErrorIs(t, err, ErrThresholdNotMet)

	// 两枚金徽章加四枚铜徽章，正好 10 分
	scores.receive(alice, 2, 3)
	scores.receive(alice, 4, 1)
	level, err := svc.Upgrade(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Level(1), level)

	level, err = svc.Upgrade(ctx, alice, id)
	assert.ErrorIs(t, err, ErrThresholdNotMet)
	assert.Equal(t, domain.Level(1), level)

	scores.receive(alice, 50, 1)
	for _, want := range []domain.Level{2, 3} {
		level, err = svc.Upgrade(ctx, alice, id)
		require.NoError(t, err)
		assert.Equal(t, want, level)
	}
	_, err = svc.Upgrade(ctx, alice, id)
	assert.ErrorIs(t, err, ErrMaxLevelReached)

	c, err = svc.Credential(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Level(3), c.Level)
	assert.Equal(t, []chainevent.Payload{
		chainevent.CredentialMint{To: alice, Name: "clean miler", TokenID: id, MetadataURI: "ipfs://dnft/1"},
		chainevent.CredentialUpgrade{Owner: alice, TokenID: id, NewLevel: 1},
		chainevent.CredentialUpgrade{Owner: alice, TokenID: id, NewLevel: 2},
		chainevent.CredentialUpgrade{Owner: alice, TokenID: id, NewLevel: 3},
	}, repo.events(t))
}

func TestCredentialService_CredentialsOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCredentialRepository(ctrl)
	repo.EXPECT().FindByOwner(gomock.Any(), alice).Return([]domain.Credential{credential(0)}, nil)
	svc := NewService(repo, dnftmocks.NewMockScoreReader(ctrl),
		chaineventmocks.NewMockSealer(ctrl), domain.DefaultRules())

	res, err := svc.CredentialsOf(context.Background(), "0X1111111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.Len(t, res, 1)
	_, err = svc.CredentialsOf(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, ErrInvalidAccount)
}
