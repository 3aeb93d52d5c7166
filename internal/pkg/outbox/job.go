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

package outbox

import (
	"context"

	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*DispatchJob)(nil)

// DispatchJob 定时投递发件箱
type DispatchJob struct {
	d     *Dispatcher
	batch int
	// maxBatches 单次运行最多投递的批数
	maxBatches int
}

func NewDispatchJob(d *Dispatcher, batch, maxBatches int) *DispatchJob {
	return &DispatchJob{
		d:          d,
		batch:      batch,
		maxBatches: maxBatches,
	}
}

func (j *DispatchJob) Name() string {
	return "DispatchOutboxJob"
}

func (j *DispatchJob) Run(ctx context.Context) error {
	for i := 0; i < j.maxBatches; i++ {
		n, err := j.d.Dispatch(ctx, j.batch)
		if err != nil {
			return err
		}
		if n < j.batch {
			return nil
		}
	}
	return nil
}
