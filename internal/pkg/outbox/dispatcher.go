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

package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/mqx"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type DispatcherConfig struct {
	// Retries 单条消息在一轮投递里的重试次数，0 表示不重试
	Retries          int32
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
}

func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Retries:          3,
		RetryInterval:    50 * time.Millisecond,
		MaxRetryInterval: time.Second,
	}
}

// Dispatcher 把发件箱里的消息按写入顺序投递到消息队列
type Dispatcher struct {
	dao DAO
	q   mq.MQ
	cfg DispatcherConfig

	// mu 保证同一时刻只有一轮投递
	mu        sync.Mutex
	producers map[string]mqx.Producer[json.RawMessage]
	logger    *elog.Component
}

func NewDispatcher(dao DAO, q mq.MQ, cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		dao:       dao,
		q:         q,
		cfg:       cfg,
		producers: make(map[string]mqx.Producer[json.RawMessage]),
		logger:    elog.DefaultLogger,
	}
}

// Dispatch 投递一批待发送的消息，返回成功的条数。
// 某条消息投递失败时本轮停止，后面的消息留到下一轮，同一 topic 内不会乱序。
func (d *Dispatcher) Dispatch(ctx context.Context, limit int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	msgs, err := d.dao.FindPending(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("查询待投递消息失败: %w", err)
	}
	for i, m := range msgs {
		if err = d.send(ctx, m); err != nil {
			if er := d.dao.MarkFailed(ctx, m.Id); er != nil {
				d.logger.Warn("记录投递失败次数失败", elog.FieldErr(er), elog.Int64("id", m.Id))
			}
			return i, err
		}
		// 标记失败的消息下一轮会重发，下游按 key 去重
		if err = d.dao.MarkSent(ctx, m.Id); err != nil {
			return i, fmt.Errorf("标记消息已投递失败 id=%d: %w", m.Id, err)
		}
	}
	return len(msgs), nil
}

func (d *Dispatcher) send(ctx context.Context, m Message) error {
	producer, err := d.producer(m.Topic)
	if err != nil {
		return err
	}
	var strategy *retry.ExponentialBackoffRetryStrategy
	if d.cfg.Retries > 0 {
		strategy, err = retry.NewExponentialBackoffRetryStrategy(d.cfg.RetryInterval, d.cfg.MaxRetryInterval, d.cfg.Retries)
		if err != nil {
			return err
		}
	}
	for {
		err = producer.Produce(ctx, m.Key, json.RawMessage(m.Body))
		if err == nil {
			return nil
		}
		if strategy == nil {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("投递重试耗尽 id=%d: %w", m.Id, err)
		}
		d.logger.Warn("投递消息失败，准备重试",
			elog.FieldErr(err),
			elog.Int64("id", m.Id),
			elog.String("topic", m.Topic),
			elog.String("key", m.Key))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}

func (d *Dispatcher) producer(topic string) (mqx.Producer[json.RawMessage], error) {
	if p, ok := d.producers[topic]; ok {
		return p, nil
	}
	p, err := mqx.NewJSONProducer[json.RawMessage](d.q, topic)
	if err != nil {
		return nil, err
	}
	d.producers[topic] = p
	return p, nil
}
