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
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/service"
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
	g := server.Group("/dnft")
	g.POST("/detail", ginx.B[TokenReq](h.Detail))
	g.POST("/list", ginx.B[OwnerReq](h.List))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/dnft")
	g.POST("/mint", ginx.B[MintReq](h.Mint))
	g.POST("/name", ginx.B[UpdateNameReq](h.UpdateName))
	g.POST("/description", ginx.B[UpdateDescriptionReq](h.UpdateDescription))
	g.POST("/upgrade", ginx.B[UpgradeReq](h.Upgrade))
}

func (h *Handler) Mint(ctx *ginx.Context, req MintReq) (ginx.Result, error) {
	id, err := h.svc.Mint(ctx, req.To, req.Name, req.Description, req.MetadataURI)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: MintResp{TokenID: id}}, nil
}

func (h *Handler) UpdateName(ctx *ginx.Context, req UpdateNameReq) (ginx.Result, error) {
	if err := h.svc.UpdateName(ctx, req.Caller, req.TokenID, req.Name); err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) UpdateDescription(ctx *ginx.Context, req UpdateDescriptionReq) (ginx.Result, error) {
	if err := h.svc.UpdateDescription(ctx, req.Caller, req.TokenID, req.Description); err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

// Upgrade 门槛未达到和已到最高等级都是预期内的结果，返回业务错误码
func (h *Handler) Upgrade(ctx *ginx.Context, req UpgradeReq) (ginx.Result, error) {
	level, err := h.svc.Upgrade(ctx, req.Caller, req.TokenID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: UpgradeResp{Level: level.ToUint8()}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	c, err := h.svc.Credential(ctx, req.TokenID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCredential(c)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req OwnerReq) (ginx.Result, error) {
	cs, err := h.svc.CredentialsOf(ctx, req.Owner)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CredentialList{
		Credentials: slice.Map(cs, func(idx int, src domain.Credential) Credential {
			return newCredential(src)
		}),
	}}, nil
}
