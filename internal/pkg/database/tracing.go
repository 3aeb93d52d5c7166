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

// Package database 账本存储的 GORM 插件
package database

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database/tracing"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每条 SQL 加一个 client span，表名带上账本前缀方便按模块过滤
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return NewGormTracingPluginWithProvider(otel.GetTracerProvider())
}

func NewGormTracingPluginWithProvider(tp trace.TracerProvider) *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: tp.Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	regs := []func() error{
		func() error { return cb.Query().Before("gorm:query").Register("tracing:before_select", p.before("SELECT")) },
		func() error { return cb.Query().After("gorm:query").Register("tracing:after_select", p.after("SELECT")) },
		func() error { return cb.Create().Before("gorm:create").Register("tracing:before_insert", p.before("INSERT")) },
		func() error { return cb.Create().After("gorm:create").Register("tracing:after_insert", p.after("INSERT")) },
		func() error { return cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")) },
		func() error { return cb.Update().After("gorm:update").Register("tracing:after_update", p.after("UPDATE")) },
		func() error { return cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")) },
		func() error { return cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after("DELETE")) },
		func() error { return cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")) },
		func() error { return cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after("RAW")) },
	}
	for _, reg := range regs {
		if err := reg(); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		ctx, span := p.tracer.Start(ctx, table(db)+" "+op, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", op),
			attribute.String("db.table", table(db)),
			attribute.String("ledger.module", module(table(db))),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		span.SetAttributes(attrs...)
		// 查不到记录是正常的业务分支
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

func table(db *gorm.DB) string {
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return "unknown"
}

// module 表名的第一段，badge_tokens 属于 badge
func module(table string) string {
	if idx := strings.IndexByte(table, '_'); idx > 0 {
		return table[:idx]
	}
	return table
}
