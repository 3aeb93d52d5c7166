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
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/service"
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
	g := server.Group("/badge")
	g.POST("/token", ginx.B[TokenReq](h.Token))
	g.POST("/balance", ginx.B[BalanceReq](h.Balance))
	g.POST("/score", ginx.B[OwnerReq](h.Score))
	g.POST("/holdings", ginx.B[OwnerReq](h.Holdings))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/badge")
	g.POST("/issue", ginx.B[IssueReq](h.Issue))
	g.POST("/approve/token", ginx.B[ApproveTokenReq](h.ApproveToken))
	g.POST("/approve/all", ginx.B[ApproveAllReq](h.ApproveAll))
	g.POST("/transfer", ginx.B[TransferReq](h.Transfer))
	g.POST("/transfer/batch", ginx.B[TransferManyReq](h.TransferMany))
}

func (h *Handler) Issue(ctx *ginx.Context, req IssueReq) (ginx.Result, error) {
	id, err := h.svc.Issue(ctx, req.To, domain.BadgeType(req.BadgeType), req.Amount, req.MetadataURI)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: IssueResp{TokenID: id}}, nil
}

func (h *Handler) ApproveToken(ctx *ginx.Context, req ApproveTokenReq) (ginx.Result, error) {
	err := h.svc.ApproveToken(ctx, req.Owner, req.Operator, req.TokenID, req.Approved)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) ApproveAll(ctx *ginx.Context, req ApproveAllReq) (ginx.Result, error) {
	err := h.svc.ApproveAll(ctx, req.Owner, req.Operator, req.Approved)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Transfer(ctx *ginx.Context, req TransferReq) (ginx.Result, error) {
	err := h.svc.Transfer(ctx, req.Initiator, req.From, req.To, req.TokenID, req.Amount)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) TransferMany(ctx *ginx.Context, req TransferManyReq) (ginx.Result, error) {
	err := h.svc.TransferMany(ctx, req.Initiator, req.From, req.Recipients, req.TokenID, req.AmountEach)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Token(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	t, err := h.svc.Token(ctx, req.TokenID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newToken(t)}, nil
}

func (h *Handler) Balance(ctx *ginx.Context, req BalanceReq) (ginx.Result, error) {
	res, err := h.svc.BalanceOfBatch(ctx, req.Owners, req.TokenIDs)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: BalanceResp{Balances: res}}, nil
}

func (h *Handler) Score(ctx *ginx.Context, req OwnerReq) (ginx.Result, error) {
	score, err := h.svc.ScoreOf(ctx, req.Owner)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: ScoreResp{Owner: req.Owner, Score: score}}, nil
}

func (h *Handler) Holdings(ctx *ginx.Context, req OwnerReq) (ginx.Result, error) {
	holdings, err := h.svc.Holdings(ctx, req.Owner)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: HoldingsResp{
		Holdings: slice.Map(holdings, func(idx int, src domain.Holding) Holding {
			return Holding{
				TokenID:   src.TokenID,
				BadgeType: src.Type.ToUint8(),
				Quantity:  src.Quantity,
			}
		}),
	}}, nil
}
