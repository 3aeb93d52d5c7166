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

package badge

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository/cache"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/repository/dao"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/service"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/web"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, seq snowflake.Sequencer) (*Module, error) {
	wire.Build(
		initLedgerDAO,
		cache.NewScoreCache,
		repository.NewLedgerStore,
		initSealer,
		InitPolicy,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initLedgerDAO(db *egorm.Component) (dao.LedgerDAO, error) {
	if err := dao.InitTables(db); err != nil {
		return nil, err
	}
	return dao.NewLedgerGORMDAO(db), nil
}

// initSealer 徽章账本产生的五类事件
func initSealer(seq snowflake.Sequencer) chainevent.Sealer {
	return chainevent.NewSourceSealer(seq, snowflake.SourceBadge,
		chainevent.KindIssuance,
		chainevent.KindApprovalToken,
		chainevent.KindApprovalForAll,
		chainevent.KindTransferSingle,
		chainevent.KindTransferBatch,
	)
}
