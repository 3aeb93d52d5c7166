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

package dnft

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/repository"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/repository/dao"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/service"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/web"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, seq snowflake.Sequencer, bm *badge.Module) (*Module, error) {
	wire.Build(
		initCredentialDAO,
		repository.NewCredentialRepository,
		initScoreReader,
		initSealer,
		InitRules,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initCredentialDAO(db *egorm.Component) (dao.CredentialDAO, error) {
	if err := dao.InitTables(db); err != nil {
		return nil, err
	}
	return dao.NewCredentialGORMDAO(db), nil
}

// initScoreReader 升级门槛读取徽章账本的积分
func initScoreReader(bm *badge.Module) service.ScoreReader {
	return bm.Svc
}

func initSealer(seq snowflake.Sequencer) chainevent.Sealer {
	return chainevent.NewSourceSealer(seq, snowflake.SourceCredential,
		chainevent.KindCredentialMint,
		chainevent.KindCredentialUpgrade,
	)
}
