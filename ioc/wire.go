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

package ioc

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES, InitSequencer, InitOutboxDAO)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		badge.InitModule,
		dnft.InitModule,
		relay.InitModule,
		wire.FieldsOf(new(*badge.Module), "Hdl"),
		wire.FieldsOf(new(*dnft.Module), "Hdl"),
		wire.FieldsOf(new(*relay.Module), "Hdl", "Daemon", "ReplayJob"),
		initBacklog,
		initOutboxJob,
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
