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

// Package snowflake 为账本事件分配全局递增的序号，
// 序号同时编码了产生事件的账本来源。
package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Source 事件来源，一个账本一个
type Source uint

const (
	SourceBadge Source = iota
	SourceCredential
)

const (
	maxNode   uint = 31
	maxSource uint = 31
)

var (
	ErrExceedNode    = errors.New("node超出限制")
	ErrExceedSource  = errors.New("来源超出限制")
	ErrUnknownSource = errors.New("未知的事件来源")
)

type Sequencer interface {
	Next(src Source) (ID, error)
}

// Generator 每个来源独占一个 snowflake 节点，
// 节点号的高五位是来源，低五位是机器号
type Generator struct {
	nodes syncx.Map[Source, *snowflake.Node]
}

func NewGenerator(nodeID uint, sources uint) (*Generator, error) {
	if nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	if sources > maxSource+1 {
		return nil, fmt.Errorf("%w: %d", ErrExceedSource, sources)
	}
	g := &Generator{}
	for i := uint(0); i < sources; i++ {
		n, err := snowflake.NewNode(int64(i<<5 | nodeID))
		if err != nil {
			return nil, err
		}
		g.nodes.Store(Source(i), n)
	}
	return g, nil
}

func (g *Generator) Next(src Source) (ID, error) {
	n, ok := g.nodes.Load(src)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSource, src)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (id ID) Source() Source {
	return Source(snowflake.ID(id).Node() >> 5)
}

func (id ID) Int64() int64 {
	return int64(id)
}
