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

package web

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/chainevent"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/relay")
	g.POST("/records/detail", ginx.B[RefReq](h.Detail))
	g.POST("/records/actor", ginx.B[ActorReq](h.ListByActor))
	g.POST("/records/kind", ginx.B[KindReq](h.ListByKind))
	g.POST("/cursor", ginx.B[KindReq](h.Cursor))
}

func (h *Handler) Detail(ctx *ginx.Context, req RefReq) (ginx.Result, error) {
	r, err := h.svc.Record(ctx, req.RawEventRef)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newRecord(r)}, nil
}

func (h *Handler) ListByActor(ctx *ginx.Context, req ActorReq) (ginx.Result, error) {
	res, err := h.svc.RecordsByActor(ctx, req.Actor, req.Offset, req.limit())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: h.toList(res)}, nil
}

func (h *Handler) ListByKind(ctx *ginx.Context, req KindReq) (ginx.Result, error) {
	res, err := h.svc.RecordsByKind(ctx, chainevent.ParseKind(req.Kind), req.Offset, req.limit())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: h.toList(res)}, nil
}

func (h *Handler) Cursor(ctx *ginx.Context, req KindReq) (ginx.Result, error) {
	c, err := h.svc.Cursor(ctx, chainevent.ParseKind(req.Kind))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: Cursor{
		Kind:        c.Kind.String(),
		Seq:         c.Seq,
		RawEventRef: c.RawEventRef,
		Utime:       c.Utime,
	}}, nil
}

func (h *Handler) toList(records []domain.Record) RecordList {
	return RecordList{
		Records: slice.Map(records, func(idx int, src domain.Record) Record {
			return newRecord(src)
		}),
	}
}
