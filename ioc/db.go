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
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/database"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// 其余字段由 egorm 自己读取
type dbConfig struct {
	DSN         string        `yaml:"dsn"`
	WaitTimeout time.Duration `yaml:"waitTimeout"`
}

func InitDB() *egorm.Component {
	cfg := dbConfig{WaitTimeout: time.Minute}
	if err := econf.UnmarshalKey("mysql", &cfg); err != nil {
		panic(err)
	}
	if err := WaitForDBSetup(cfg.DSN, cfg.WaitTimeout); err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	if err := db.Use(database.NewGormTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 在 maxWait 内反复 ping，MySQL 容器刚启动时会拒绝连接
func WaitForDBSetup(dsn string, maxWait time.Duration) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = maxWait
	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx)
	}
	return backoff.RetryNotify(ping, b, func(err error, next time.Duration) {
		elog.DefaultLogger.Warn("MySQL 尚未就绪",
			elog.FieldErr(err),
			elog.String("next", next.String()))
	})
}
