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

package badge

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/service"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/web"
)

type (
	Handler     = web.Handler
	Service     = service.Service
	Token       = domain.Token
	Holding     = domain.Holding
	BadgeType   = domain.BadgeType
	Policy      = domain.Policy
	ScorePolicy = domain.ScorePolicy
)

const (
	BadgeTypeBronze = domain.BadgeTypeBronze
	BadgeTypeSilver = domain.BadgeTypeSilver
	BadgeTypeGold   = domain.BadgeTypeGold

	ScorePolicyCumulative = domain.ScorePolicyCumulative
	ScorePolicyLive       = domain.ScorePolicyLive
)

var (
	ErrInvalidAmount       = service.ErrInvalidAmount
	ErrZeroAmount          = service.ErrZeroAmount
	ErrInvalidRecipient    = service.ErrInvalidRecipient
	ErrInvalidAccount      = service.ErrInvalidAccount
	ErrNoAuthority         = service.ErrNoAuthority
	ErrInsufficientBalance = service.ErrInsufficientBalance
	ErrTokenNotFound       = service.ErrTokenNotFound
)

type Module struct {
	Svc Service
	Hdl *Handler
}
