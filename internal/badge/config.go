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

package badge

import (
	"fmt"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"
	"github.com/gotomicro/ego/core/econf"
)

type Config struct {
	// Weights 徽章类型名到积分权重，例如 bronze: 1
	Weights     map[string]int64 `yaml:"weights"`
	ScorePolicy string           `yaml:"scorePolicy"`
}

// InitPolicy 读取 badge 配置，缺省时使用 1/2/3 权重与累计口径
func InitPolicy() (Policy, error) {
	if econf.Get("badge") == nil {
		return domain.DefaultPolicy(), nil
	}
	var cfg Config
	if err := econf.UnmarshalKey("badge", &cfg); err != nil {
		return Policy{}, err
	}
	return cfg.policy()
}

func (c Config) policy() (Policy, error) {
	p := domain.DefaultPolicy()
	if c.ScorePolicy != "" {
		p.Score = domain.ScorePolicy(c.ScorePolicy)
		if !p.Score.Valid() {
			return Policy{}, fmt.Errorf("未知的积分口径 %s", c.ScorePolicy)
		}
	}
	for name, w := range c.Weights {
		typ, ok := parseBadgeType(name)
		if !ok {
			return Policy{}, fmt.Errorf("未知的徽章类型 %s", name)
		}
		if w < 0 {
			return Policy{}, fmt.Errorf("徽章 %s 的权重不能为负数", name)
		}
		p.Weights[typ] = w
	}
	return p, nil
}

func parseBadgeType(name string) (domain.BadgeType, bool) {
	for _, t := range []domain.BadgeType{domain.BadgeTypeBronze, domain.BadgeTypeSilver, domain.BadgeTypeGold} {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
