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

package domain

import (
	"encoding/json"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
)

// Record 一条账本事件在链下的规范化记录，只追加不修改。
// 事件里没有的字段保持为 nil，不会填默认值。
type Record struct {
	ID          int64
	Kind        chainevent.Kind
	Actor       string
	Counterpart *string
	TokenID     *int64
	BadgeType   *uint8
	Amount      *int64
	URI         *string
	// RawEventRef 事件在源头的唯一位置，幂等写入的键
	RawEventRef string
	Seq         int64
	// Detail 完整的事件负载，保留映射之外的字段
	Detail     json.RawMessage
	ObservedAt int64
}

// DeadLetter 重试耗尽或者无法解析的事件
type DeadLetter struct {
	ID          int64
	Kind        chainevent.Kind
	RawEventRef string
	Body        []byte
	Reason      string
	Attempts    int
	Ctime       int64
	Utime       int64
}

// Cursor 每种事件类型已经持久化到的位置
type Cursor struct {
	Kind        chainevent.Kind
	Seq         int64
	RawEventRef string
	Utime       int64
}
