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

package ioc

import (
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitOutboxDAO(db *egorm.Component) (*outbox.GORMDAO, error) {
	if err := outbox.InitTables(db); err != nil {
		return nil, err
	}
	return outbox.NewGORMDAO(db), nil
}

// initBacklog relay 启动时从发件箱补齐游标之后的事件
func initBacklog(dao *outbox.GORMDAO) relay.Backlog {
	return dao
}

func initOutboxJob(dao *outbox.GORMDAO, q mq.MQ) *outbox.DispatchJob {
	type Config struct {
		Batch            int           `yaml:"batch"`
		MaxBatches       int           `yaml:"maxBatches"`
		Retries          int32         `yaml:"retries"`
		RetryInterval    time.Duration `yaml:"retryInterval"`
		MaxRetryInterval time.Duration `yaml:"maxRetryInterval"`
	}
	d := outbox.DefaultDispatcherConfig()
	cfg := Config{
		Batch:            100,
		MaxBatches:       10,
		Retries:          d.Retries,
		RetryInterval:    d.RetryInterval,
		MaxRetryInterval: d.MaxRetryInterval,
	}
	if econf.Get("outbox") != nil {
		if err := econf.UnmarshalKey("outbox", &cfg); err != nil {
			panic(err)
		}
	}
	dispatcher := outbox.NewDispatcher(dao, q, outbox.DispatcherConfig{
		Retries:          cfg.Retries,
		RetryInterval:    cfg.RetryInterval,
		MaxRetryInterval: cfg.MaxRetryInterval,
	})
	return outbox.NewDispatchJob(dispatcher, cfg.Batch, cfg.MaxBatches)
}
