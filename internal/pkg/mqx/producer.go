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

package mqx

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
)

// Producer 发送 JSON 编码的事件，key 用于分区与去重
type Producer[T any] interface {
	Produce(ctx context.Context, key string, evt T) error
}

type JSONProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewJSONProducer[T any](q mq.MQ, topic string) (*JSONProducer[T], error) {
	p, err := q.Producer(topic)
	if err != nil {
		return nil, fmt.Errorf("创建 topic=%s 的生产者失败: %w", topic, err)
	}
	return &JSONProducer[T]{
		producer: p,
		topic:    topic,
	}, nil
}

func (p *JSONProducer[T]) Produce(ctx context.Context, key string, evt T) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(key),
		Value: data,
		Topic: p.topic,
	})
	if err != nil {
		return fmt.Errorf("向topic=%s发送key=%s失败: %w", p.topic, key, err)
	}
	return nil
}
