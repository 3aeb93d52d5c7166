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

package relay

import (
	"fmt"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/event"
	"github.com/gotomicro/ego/core/econf"
)

type Config struct {
	GroupID   string `yaml:"groupID"`
	QueueSize int    `yaml:"queueSize"`
	// WriteRetries 为 0 时写入失败直接进死信
	WriteRetries int32         `yaml:"writeRetries"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	CatchUpBatch int           `yaml:"catchUpBatch"`
	// DedupTTL 去重缓存的过期时间
	DedupTTL time.Duration `yaml:"dedupTTL"`
	// MaxReplays 死信最多重放几次，之后只能人工处理
	MaxReplays  int `yaml:"maxReplays"`
	ReplayBatch int `yaml:"replayBatch"`
}

func DefaultConfig() Config {
	d := event.DefaultConfig()
	return Config{
		GroupID:      "relay",
		QueueSize:    d.QueueSize,
		WriteRetries: d.WriteRetries,
		WriteTimeout: d.WriteTimeout,
		CatchUpBatch: d.CatchUpBatch,
		DedupTTL:     24 * time.Hour,
		MaxReplays:   5,
		ReplayBatch:  100,
	}
}

// InitConfig 读取 relay 配置，没配置的项使用默认值
func InitConfig() (Config, error) {
	cfg := DefaultConfig()
	if econf.Get("relay") == nil {
		return cfg, nil
	}
	if err := econf.UnmarshalKey("relay", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.GroupID == "":
		return fmt.Errorf("relay.groupID 不能为空")
	case c.QueueSize <= 0:
		return fmt.Errorf("relay.queueSize 必须大于 0，当前 %d", c.QueueSize)
	case c.WriteRetries < 0:
		return fmt.Errorf("relay.writeRetries 不能为负数，当前 %d", c.WriteRetries)
	case c.WriteTimeout <= 0:
		return fmt.Errorf("relay.writeTimeout 必须大于 0")
	case c.CatchUpBatch <= 0:
		return fmt.Errorf("relay.catchUpBatch 必须大于 0，当前 %d", c.CatchUpBatch)
	case c.DedupTTL <= 0:
		return fmt.Errorf("relay.dedupTTL 必须大于 0")
	case c.MaxReplays <= 0 || c.ReplayBatch <= 0:
		return fmt.Errorf("relay.maxReplays 和 relay.replayBatch 必须大于 0")
	}
	return nil
}

func (c Config) daemon() event.Config {
	res := event.DefaultConfig()
	res.QueueSize = c.QueueSize
	res.WriteRetries = c.WriteRetries
	res.WriteTimeout = c.WriteTimeout
	res.CatchUpBatch = c.CatchUpBatch
	return res
}
