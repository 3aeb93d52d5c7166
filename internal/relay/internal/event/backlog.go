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

package event

import (
	"context"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/outbox"
	"github.com/gotomicro/ego/core/elog"
)

// Backlog 发件箱里已经提交的事件，按 seq 升序读取
type Backlog interface {
	FindAfter(ctx context.Context, topic string, seq int64, limit int) ([]outbox.Message, error)
}

// catchUp 把游标之后还没落库的事件先塞进队列。
// 只能补上 seq 大于游标的事件，seq 更小但提交更晚的事件依赖实时投递。
func (d *Daemon) catchUp(ctx context.Context, kind chainevent.Kind, queue chan<- []byte) {
	if d.backlog == nil {
		return
	}
	c, err := d.svc.Cursor(ctx, kind)
	if err != nil {
		d.logger.Warn("读取游标失败，跳过补齐", elog.FieldErr(err), elog.String("kind", kind.String()))
		return
	}
	depth := queueDepth.WithLabelValues(kind.String())
	seq, total := c.Seq, 0
	for ctx.Err() == nil {
		msgs, er := d.backlog.FindAfter(ctx, kind.Topic(), seq, d.cfg.CatchUpBatch)
		if er != nil {
			d.logger.Warn("读取发件箱失败，停止补齐", elog.FieldErr(er), elog.String("kind", kind.String()))
			break
		}
		for _, m := range msgs {
			queue <- m.Body
			depth.Inc()
			seq = m.Seq
		}
		total += len(msgs)
		if len(msgs) < d.cfg.CatchUpBatch {
			break
		}
	}
	if total > 0 {
		d.logger.Info("补齐游标之后的事件",
			elog.String("kind", kind.String()),
			elog.Int64("from", c.Seq),
			elog.Int("count", total))
	}
}
