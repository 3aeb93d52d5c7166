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

package job

import (
	"context"
	"fmt"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ReplayDeadLettersJob)(nil)

// ReplayDeadLettersJob 定时把死信重新写入流水表
type ReplayDeadLettersJob struct {
	svc   service.Service
	limit int
	// maxBatches 单次运行最多处理的批数
	maxBatches int
}

func NewReplayDeadLettersJob(svc service.Service, limit, maxBatches int) *ReplayDeadLettersJob {
	return &ReplayDeadLettersJob{
		svc:        svc,
		limit:      limit,
		maxBatches: maxBatches,
	}
}

func (r *ReplayDeadLettersJob) Name() string {
	return "ReplayDeadLettersJob"
}

func (r *ReplayDeadLettersJob) Run(ctx context.Context) error {
	for i := 0; i < r.maxBatches; i++ {
		n, err := r.svc.ReplayDeadLetters(ctx, r.limit)
		if err != nil {
			return fmt.Errorf("重放死信失败: %w", err)
		}
		// 这一批有失败的，留给下一次运行
		if n < r.limit {
			return nil
		}
	}
	return nil
}
