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
	"sort"
	"sync"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
)

type balanceKey struct {
	account string
	tokenID int64
}

type approvalKey struct {
	owner    string
	operator string
	tokenID  int64
}

var (
	_ repository.LedgerStore = (*memoryStore)(nil)
	_ outbox.DAO             = (*memoryStore)(nil)
)

// memoryStore 进程内的账本加发件箱，语义与数据库实现一致：
// 状态变更和事件消息一起写入，任何一步失败都不留下痕迹
type memoryStore struct {
	mu        sync.RWMutex
	tokens    []domain.Token
	balances  map[balanceKey]int64
	tokenApvs map[approvalKey]bool
	allApvs   map[approvalKey]bool
	scores    map[string]int64
	outbox    []outbox.Message
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		balances:  make(map[balanceKey]int64),
		tokenApvs: make(map[approvalKey]bool),
		allApvs:   make(map[approvalKey]bool),
		scores:    make(map[string]int64),
	}
}

func (m *memoryStore) CreateToken(_ context.Context, t domain.Token, weight int64, build outbox.Builder) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UnixMilli()
	t.ID = int64(len(m.tokens))
	msg, err := build(t.ID)
	if err != nil {
		return 0, err
	}
	m.append(msg)
	t.Remaining = t.TotalIssued
	t.Ctime, t.Utime = now, now
	m.tokens = append(m.tokens, t)
	m.balances[balanceKey{account: t.Issuer, tokenID: t.ID}] += t.TotalIssued
	m.scores[t.Issuer] += t.TotalIssued * weight
	return t.ID, nil
}

func (m *memoryStore) Token(_ context.Context, id int64) (domain.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id < 0 || id >= int64(len(m.tokens)) {
		return domain.Token{}, domain.ErrTokenNotFound
	}
	return m.tokens[id], nil
}

func (m *memoryStore) BalanceOf(_ context.Context, account string, tokenID int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[balanceKey{account: account, tokenID: tokenID}], nil
}

func (m *memoryStore) Holdings(_ context.Context, account string) ([]domain.Holding, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var res []domain.Holding
	for k, q := range m.balances {
		if k.account != account || q <= 0 {
			continue
		}
		res = append(res, domain.Holding{
			TokenID:  k.tokenID,
			Type:     m.tokens[k.tokenID].Type,
			Quantity: q,
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].TokenID < res[j].TokenID })
	return res, nil
}

func (m *memoryStore) SetTokenApproval(_ context.Context, owner, operator string, tokenID int64, approved bool, msg outbox.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.append(msg)
	m.tokenApvs[approvalKey{owner: owner, operator: operator, tokenID: tokenID}] = approved
	return nil
}

func (m *memoryStore) SetOperatorApproval(_ context.Context, owner, operator string, approved bool, msg outbox.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.append(msg)
	m.allApvs[approvalKey{owner: owner, operator: operator}] = approved
	return nil
}

func (m *memoryStore) IsApprovedForToken(_ context.Context, owner, operator string, tokenID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokenApvs[approvalKey{owner: owner, operator: operator, tokenID: tokenID}], nil
}

func (m *memoryStore) IsApprovedForAll(_ context.Context, owner, operator string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.allApvs[approvalKey{owner: owner, operator: operator}], nil
}

func (m *memoryStore) Move(_ context.Context, mv domain.Movement, msg outbox.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mv.TokenID < 0 || mv.TokenID >= int64(len(m.tokens)) {
		return domain.ErrTokenNotFound
	}
	from := balanceKey{account: mv.From, tokenID: mv.TokenID}
	total := mv.Total()
	if m.balances[from] < total {
		return domain.ErrInsufficientBalance
	}
	token := &m.tokens[mv.TokenID]
	m.balances[from] -= total
	if mv.From == token.Issuer {
		token.Remaining -= total
	}
	for _, to := range mv.Recipients {
		m.balances[balanceKey{account: to, tokenID: mv.TokenID}] += mv.AmountEach
		m.scores[to] += mv.AmountEach * mv.Weight
		if to == token.Issuer {
			token.Remaining += mv.AmountEach
		}
	}
	token.Utime = time.Now().UnixMilli()
	m.append(msg)
	return nil
}

func (m *memoryStore) ScoreOf(_ context.Context, account string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scores[account], nil
}

// supply 某个徽章所有账户余额之和
func (m *memoryStore) supply(tokenID int64) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum int64
	for k, q := range m.balances {
		if k.tokenID == tokenID {
			sum += q
		}
	}
	return sum
}

func (m *memoryStore) append(msg outbox.Message) {
	msg.Id = int64(len(m.outbox) + 1)
	msg.Status = outbox.StatusPending
	m.outbox = append(m.outbox, msg)
}

// messages 按写入顺序返回发件箱里的全部消息
func (m *memoryStore) messages() []outbox.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]outbox.Message, len(m.outbox))
	copy(res, m.outbox)
	return res
}

func (m *memoryStore) FindPending(_ context.Context, limit int) ([]outbox.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var res []outbox.Message
	for _, msg := range m.outbox {
		if msg.Status == outbox.StatusPending && len(res) < limit {
			res = append(res, msg)
		}
	}
	return res, nil
}

func (m *memoryStore) MarkSent(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outbox[id-1].Status = outbox.StatusSent
	return nil
}

func (m *memoryStore) MarkFailed(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outbox[id-1].Attempts++
	return nil
}

func (m *memoryStore) FindAfter(_ context.Context, topic string, seq int64, limit int) ([]outbox.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var res []outbox.Message
	for _, msg := range m.outbox {
		if msg.Topic == topic && msg.Seq > seq {
			res = append(res, msg)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Seq < res[j].Seq })
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
