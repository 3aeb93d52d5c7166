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

package event

import (
	"context"
	"fmt"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/ecodeclub/mq-api"
)

// Subscription 一个事件类型上的长连接订阅
type Subscription interface {
	// Next 阻塞到下一条消息，连接断开时返回 error
	Next(ctx context.Context) ([]byte, error)
	Close() error
}

type Source interface {
	Subscribe(ctx context.Context, kind chainevent.Kind) (Subscription, error)
}

// MQSource 从消息队列订阅账本事件，每种事件类型一个 topic
type MQSource struct {
	q       mq.MQ
	groupID string
}

func NewMQSource(q mq.MQ, groupID string) *MQSource {
	return &MQSource{q: q, groupID: groupID}
}

func (s *MQSource) Subscribe(ctx context.Context, kind chainevent.Kind) (Subscription, error) {
	consumer, err := s.q.Consumer(kind.Topic(), s.groupID)
	if err != nil {
		return nil, fmt.Errorf("订阅 %s 失败: %w", kind.Topic(), err)
	}
	return &mqSubscription{consumer: consumer}, nil
}

type mqSubscription struct {
	consumer mq.Consumer
}

func (m *mqSubscription) Next(ctx context.Context) ([]byte, error) {
	msg, err := m.consumer.Consume(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取消息失败: %w", err)
	}
	return msg.Value, nil
}

func (m *mqSubscription) Close() error {
	return m.consumer.Close()
}
