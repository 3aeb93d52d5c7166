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

package chainevent

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/snowflake"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/txhash"
)

var ErrKindNotAllowed = errors.New("该账本不产生这种事件")

//go:generate mockgen -source=./sealer.go -package=chaineventmocks -destination=./mocks/sealer.mock.go Sealer
type Sealer interface {
	// Seal 给事件分配序号和交易哈希，生成跟账本变更一起提交的发件箱消息
	Seal(p Payload) (outbox.Message, error)
}

type SourceSealer struct {
	kinds  map[Kind]struct{}
	seq    snowflake.Sequencer
	source snowflake.Source
	hashes *txhash.Generator
}

// NewSourceSealer 一个账本一个，只接受 kinds 里的事件
func NewSourceSealer(seq snowflake.Sequencer, src snowflake.Source, kinds ...Kind) *SourceSealer {
	allowed := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		allowed[k] = struct{}{}
	}
	return &SourceSealer{
		kinds:  allowed,
		seq:    seq,
		source: src,
		hashes: txhash.NewGenerator(),
	}
}

func (s *SourceSealer) Seal(p Payload) (outbox.Message, error) {
	if _, ok := s.kinds[p.Kind()]; !ok {
		return outbox.Message{}, fmt.Errorf("%w: %s", ErrKindNotAllowed, p.Kind())
	}
	id, err := s.seq.Next(s.source)
	if err != nil {
		return outbox.Message{}, err
	}
	env, err := Seal(p, s.hashes.Generate(id.Int64()), 0, id.Int64(), time.Now().UnixMilli())
	if err != nil {
		return outbox.Message{}, err
	}
	return NewMessage(env)
}

// NewMessage 按事件类型选 topic，用 RawEventRef 做消息键
func NewMessage(env Envelope) (outbox.Message, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return outbox.Message{}, err
	}
	return outbox.Message{
		Topic: env.Kind.Topic(),
		Key:   env.RawEventRef(),
		Seq:   env.Seq,
		Body:  body,
	}, nil
}
