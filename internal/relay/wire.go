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

//go:build wireinject

package relay

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/event"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/job"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository/cache"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/repository/dao"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/service"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache, es *elastic.Client, backlog event.Backlog) (*Module, error) {
	wire.Build(
		InitConfig,
		initRecordDAO,
		initDedupCache,
		initIndexer,
		repository.NewRecordRepository,
		initService,
		web.NewHandler,
		initDaemon,
		initReplayJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initRecordDAO(db *egorm.Component) (dao.RecordDAO, error) {
	if err := dao.InitTables(db); err != nil {
		return nil, err
	}
	return dao.NewRecordGORMDAO(db), nil
}

// initIndexer 没有配置 ES 时不建索引
func initIndexer(es *elastic.Client) (dao.RecordIndexer, error) {
	if es == nil {
		return dao.NopRecordIndexer{}, nil
	}
	if err := dao.InitES(es); err != nil {
		return nil, err
	}
	return dao.NewRecordElasticIndexer(es), nil
}

func initDedupCache(ec ecache.Cache, cfg Config) cache.DedupCache {
	return cache.NewDedupCache(ec, cfg.DedupTTL)
}

func initService(repo repository.RecordRepository, cfg Config) service.Service {
	return service.NewService(repo, cfg.MaxReplays)
}

// initDaemon 订阅全部事件类型，backlog 为 nil 时不做启动补齐
func initDaemon(q mq.MQ, backlog event.Backlog, svc service.Service, cfg Config) *event.Daemon {
	d := event.NewDaemon(event.NewMQSource(q, cfg.GroupID), svc, cfg.daemon(), chainevent.Kinds()...)
	if backlog != nil {
		d.WithBacklog(backlog)
	}
	return d
}

func initReplayJob(svc service.Service, cfg Config) *job.ReplayDeadLettersJob {
	return job.NewReplayDeadLettersJob(svc, cfg.ReplayBatch, 10)
}
