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

package dnft

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"
	"github.com/gotomicro/ego/core/econf"
)

type Config struct {
	Thresholds []int64 `yaml:"thresholds"`
	// AllowMultipleMints 缺省为 true，同一账户可以铸造多张凭证
	AllowMultipleMints *bool `yaml:"allowMultipleMints"`
}

func InitRules() (Rules, error) {
	if econf.Get("dnft") == nil {
		return domain.DefaultRules(), nil
	}
	var cfg Config
	if err := econf.UnmarshalKey("dnft", &cfg); err != nil {
		return Rules{}, err
	}
	return cfg.rules()
}

func (c Config) rules() (Rules, error) {
	r := domain.DefaultRules()
	if len(c.Thresholds) > 0 {
		r.Thresholds = c.Thresholds
	}
	if c.AllowMultipleMints != nil {
		r.AllowMultipleMints = *c.AllowMultipleMints
	}
	return r, r.Thresholds.Validate()
}
