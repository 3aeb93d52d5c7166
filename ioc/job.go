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
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(replay *relay.ReplayDeadLettersJob, dispatch *outbox.DispatchJob) []ecron.Ecron {
	jobs := map[string]ecron.NamedJob{
		"cron.relay":  replay,
		"cron.outbox": dispatch,
	}
	res := make([]ecron.Ecron, 0, len(jobs))
	for key, job := range jobs {
		// 单次运行的上限，0 表示跟随 cron 自己的 ctx
		timeout := econf.GetDuration(key + ".timeout")
		res = append(res, ecron.Load(key).Build(ecron.WithJob(wrapJob(job, timeout))))
	}
	return res
}

func wrapJob(job ecron.NamedJob, timeout time.Duration) ecron.FuncJob {
	logger := elog.DefaultLogger.With(elog.String("cronjob", job.Name()))
	return func(ctx context.Context) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		if err := job.Run(ctx); err != nil {
			logger.Error("定时任务失败", elog.FieldErr(err), elog.FieldCost(time.Since(start)))
			return err
		}
		logger.Debug("定时任务完成", elog.FieldCost(time.Since(start)))
		return nil
	}
}
