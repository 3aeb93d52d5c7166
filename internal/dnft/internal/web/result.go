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
	"errors"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/errs"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var preconditions = map[error]errs.ErrorCode{
	service.ErrInvalidRecipient:   errs.InvalidRecipient,
	service.ErrInvalidAccount:     errs.InvalidAccount,
	service.ErrNotOwner:           errs.NotOwner,
	service.ErrThresholdNotMet:    errs.ThresholdNotMet,
	service.ErrMaxLevelReached:    errs.MaxLevelReached,
	service.ErrAlreadyMinted:      errs.AlreadyMinted,
	service.ErrCredentialNotFound: errs.CredentialNotFound,
	service.ErrLevelChanged:       errs.LevelChanged,
}

func errorResult(err error) (ginx.Result, error) {
	for target, code := range preconditions {
		if errors.Is(err, target) {
			return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
