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
	"errors"
	"fmt"
)

// Thresholds 第 n 项是升到 n 级所需的积分，第 0 项对应铸造时的初始等级
type Thresholds []int64

func DefaultThresholds() Thresholds {
	return Thresholds{0, 10, 30, 60}
}

func (t Thresholds) Validate() error {
	if len(t) == 0 {
		return errors.New("等级门槛不能为空")
	}
	if len(t) > 256 {
		return fmt.Errorf("等级数量 %d 超出上限", len(t))
	}
	for i := 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return fmt.Errorf("等级门槛必须严格递增: 第 %d 级 %d <= %d", i, t[i], t[i-1])
		}
	}
	return nil
}

func (t Thresholds) MaxLevel() Level {
	return Level(len(t) - 1)
}

// Next 返回从 current 升一级所需的积分，已是最高等级时 ok 为 false
func (t Thresholds) Next(current Level) (int64, bool) {
	if current >= t.MaxLevel() {
		return 0, false
	}
	return t[current+1], true
}

// Rules 凭证的业务规则
type Rules struct {
	Thresholds         Thresholds
	AllowMultipleMints bool
}

func DefaultRules() Rules {
	return Rules{
		Thresholds:         DefaultThresholds(),
		AllowMultipleMints: true,
	}
}
