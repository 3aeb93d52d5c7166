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

package relay

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/domain"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/event"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/job"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/service"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay/internal/web"
)

type (
	Handler              = web.Handler
	Service              = service.Service
	Daemon               = event.Daemon
	Backlog              = event.Backlog
	Record               = domain.Record
	DeadLetter           = domain.DeadLetter
	Cursor               = domain.Cursor
	ReplayDeadLettersJob = job.ReplayDeadLettersJob
)

var (
	ErrMalformedEvent = service.ErrMalformedEvent
	ErrRecordNotFound = service.ErrRecordNotFound
)

type Module struct {
	Daemon    *Daemon
	Svc       Service
	Hdl       *Handler
	ReplayJob *ReplayDeadLettersJob
}
