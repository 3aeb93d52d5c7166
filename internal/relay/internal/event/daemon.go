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
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/service"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// QueueSize 每种事件类型的缓冲队列长度，满了订阅端会阻塞
	QueueSize int
	// WriteRetries 写入失败后的重试次数，0 表示不重试直接进死信
	WriteRetries int32
	WriteTimeout time.Duration
	// RetryInterval 和 MaxRetryInterval 控制写入重试的间隔
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
	// ReconnectInterval 和 MaxReconnectInterval 控制断线重连的间隔，重连次数不设上限
	ReconnectInterval    time.Duration
	MaxReconnectInterval time.Duration
	// CatchUpBatch 启动补齐时每次从发件箱读取的条数
	CatchUpBatch int
}

func DefaultConfig() Config {
	return Config{
		QueueSize:            128,
		WriteRetries:         3,
		WriteTimeout:         3 * time.Second,
		RetryInterval:        100 * time.Millisecond,
		MaxRetryInterval:     2 * time.Second,
		ReconnectInterval:    500 * time.Millisecond,
		MaxReconnectInterval: 30 * time.Second,
		CatchUpBatch:         100,
	}
}

// Daemon 每种事件类型一个订阅协程加一个写入协程。
// 同一类型内按收到的顺序串行写入，不同类型之间互不影响。
type Daemon struct {
	src     Source
	svc     service.Service
	backlog Backlog
	kinds   []chainevent.Kind
	cfg     Config
	logger  *elog.Component

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

func NewDaemon(src Source, svc service.Service, cfg Config, kinds ...chainevent.Kind) *Daemon {
	if len(kinds) == 0 {
		kinds = chainevent.Kinds()
	}
	return &Daemon{
		src:    src,
		svc:    svc,
		kinds:  kinds,
		cfg:    cfg,
		logger: elog.DefaultLogger,
	}
}

// WithBacklog 启动时先从游标之后补齐发件箱里的事件，再开始订阅
func (d *Daemon) WithBacklog(b Backlog) *Daemon {
	d.backlog = b
	return d
}

// Run 阻塞到 ctx 结束，并且已经收到的事件全部写完。
// ctx 结束后不再等待重试间隔，写不进去的事件直接进死信。
func (d *Daemon) Run(ctx context.Context) error {
	var eg errgroup.Group
	for _, kind := range d.kinds {
		queue := make(chan []byte, d.cfg.QueueSize)
		eg.Go(func() error {
			defer close(queue)
			d.catchUp(ctx, kind, queue)
			d.subscribe(ctx, kind, queue)
			return nil
		})
		eg.Go(func() error {
			d.drain(ctx, kind, queue)
			return nil
		})
	}
	return eg.Wait()
}

func (d *Daemon) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})
	go func() {
		defer close(d.done)
		d.err = d.Run(ctx)
	}()
	d.logger.Info("事件同步已启动", elog.Int("kinds", len(d.kinds)))
}

// Stop 停止订阅并等待缓冲中的事件写完
func (d *Daemon) Stop() error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return d.err
}

func (d *Daemon) subscribe(ctx context.Context, kind chainevent.Kind, queue chan<- []byte) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.cfg.ReconnectInterval
	b.MaxInterval = d.cfg.MaxReconnectInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(b, ctx)
	policy.Reset()
	for {
		sub, err := d.src.Subscribe(ctx, kind)
		if err == nil {
			err = d.pump(ctx, kind, sub, queue, policy)
			if er := sub.Close(); er != nil {
				d.logger.Warn("关闭订阅失败", elog.FieldErr(er), elog.String("kind", kind.String()))
			}
		}
		if ctx.Err() != nil {
			return
		}
		wait := policy.NextBackOff()
		if wait == backoff.Stop {
			return
		}
		reconnectsTotal.WithLabelValues(kind.String()).Inc()
		d.logger.Warn("订阅中断，准备重连",
			elog.FieldErr(err),
			elog.String("kind", kind.String()),
			elog.String("wait", wait.String()))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (d *Daemon) pump(ctx context.Context, kind chainevent.Kind, sub Subscription,
	queue chan<- []byte, policy backoff.BackOff) error {
	depth := queueDepth.WithLabelValues(kind.String())
	for {
		data, err := sub.Next(ctx)
		if err != nil {
			return err
		}
		policy.Reset()
		// 写入协程会一直消费到队列关闭，这里阻塞发送不会丢消息
		queue <- data
		depth.Inc()
	}
}

func (d *Daemon) drain(ctx context.Context, kind chainevent.Kind, queue <-chan []byte) {
	depth := queueDepth.WithLabelValues(kind.String())
	for data := range queue {
		depth.Dec()
		d.handle(ctx, kind, data)
	}
}

func (d *Daemon) handle(ctx context.Context, kind chainevent.Kind, data []byte) {
	env, err := chainevent.Unmarshal(data, kind)
	if err != nil {
		d.park(kind, "", data, err)
		eventsTotal.WithLabelValues(kind.String(), resultMalformed).Inc()
		return
	}
	inserted, err := d.persist(ctx, env)
	switch {
	case err == nil && inserted:
		eventsTotal.WithLabelValues(kind.String(), resultInserted).Inc()
	case err == nil:
		eventsTotal.WithLabelValues(kind.String(), resultDuplicate).Inc()
	case errors.Is(err, service.ErrMalformedEvent):
		d.park(kind, env.RawEventRef(), data, err)
		eventsTotal.WithLabelValues(kind.String(), resultMalformed).Inc()
	default:
		d.park(kind, env.RawEventRef(), data, err)
		eventsTotal.WithLabelValues(kind.String(), resultParked).Inc()
	}
}

// persist 写入超时和 stop 无关，已经出队的事件至少会尝试写一次
func (d *Daemon) persist(stop context.Context, env chainevent.Envelope) (bool, error) {
	var strategy retry.Strategy
	// ekit 把 0 次当作不限次数
	if d.cfg.WriteRetries > 0 {
		var err error
		strategy, err = retry.NewExponentialBackoffRetryStrategy(d.cfg.RetryInterval, d.cfg.MaxRetryInterval, d.cfg.WriteRetries)
		if err != nil {
			return false, err
		}
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.WriteTimeout)
		inserted, er := d.svc.Persist(ctx, env)
		cancel()
		if er == nil || errors.Is(er, service.ErrMalformedEvent) {
			return inserted, er
		}
		if strategy == nil {
			return false, fmt.Errorf("写入失败: %w", er)
		}
		next, ok := strategy.Next()
		if !ok {
			return false, fmt.Errorf("写入重试耗尽: %w", er)
		}
		d.logger.Warn("写入流水失败，准备重试",
			elog.FieldErr(er),
			elog.String("ref", env.RawEventRef()),
			elog.String("wait", next.String()))
		select {
		case <-stop.Done():
			return false, fmt.Errorf("同步已停止，放弃重试: %w", er)
		case <-time.After(next):
		}
	}
}

func (d *Daemon) park(kind chainevent.Kind, ref string, data []byte, reason error) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.WriteTimeout)
	defer cancel()
	err := d.svc.Park(ctx, domain.DeadLetter{
		Kind:        kind,
		RawEventRef: ref,
		Body:        data,
		Reason:      reason.Error(),
	})
	if err != nil {
		eventsTotal.WithLabelValues(kind.String(), resultLost).Inc()
		d.logger.Error("事件写入死信失败",
			elog.FieldErr(err),
			elog.String("kind", kind.String()),
			elog.String("ref", ref),
			elog.String("body", string(data)))
	}
}
