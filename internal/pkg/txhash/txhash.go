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

package txhash

import (
	"encoding/hex"
	"fmt"

	"github.com/lithammer/shortuuid/v4"
)

// Length 不含 0x 前缀的长度
const Length = 64

type UUIDFunc func() string

// Generator 为每一次账本状态变更生成一个交易哈希，
// 格式为 0x + 序号的十六进制 + shortuuid 编码，定长 64 位。
type Generator struct {
	uuidFunc UUIDFunc
}

func NewGeneratorWith(fn UUIDFunc) *Generator {
	return &Generator{uuidFunc: fn}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func() string { return shortuuid.New() })
}

func (g *Generator) Generate(seq int64) string {
	prefix := fmt.Sprintf("%016x", uint64(seq))
	body := hex.EncodeToString([]byte(g.uuidFunc()))
	for len(prefix)+len(body) < Length {
		body += body
	}
	return "0x" + (prefix + body)[:Length]
}
