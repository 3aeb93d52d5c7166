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

package dnft

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/service"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/web"
)

type (
	Handler     = web.Handler
	Service     = service.Service
	ScoreReader = service.ScoreReader
	Credential  = domain.Credential
	Level       = domain.Level
	Rules       = domain.Rules
	Thresholds  = domain.Thresholds
)

var (
	ErrNotOwner        = service.ErrNotOwner
	ErrThresholdNotMet = service.ErrThresholdNotMet
	ErrMaxLevelReached = service.ErrMaxLevelReached
	ErrAlreadyMinted   = service.ErrAlreadyMinted
)

type Module struct {
	Svc Service
	Hdl *Handler
}
