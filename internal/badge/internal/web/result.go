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

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/errs"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var preconditions = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrInvalidAmount, code: errs.InvalidAmount},
	{err: service.ErrZeroAmount, code: errs.ZeroAmount},
	{err: service.ErrInvalidRecipient, code: errs.InvalidRecipient},
	{err: service.ErrInvalidAccount, code: errs.InvalidAccount},
	{err: service.ErrInvalidBadgeType, code: errs.InvalidBadgeType},
	{err: service.ErrNoAuthority, code: errs.NoAuthority},
	{err: service.ErrInsufficientBalance, code: errs.InsufficientBalance},
	{err: service.ErrTokenNotFound, code: errs.TokenNotFound},
	{err: service.ErrLengthMismatch, code: errs.LengthMismatch},
}

// errorResult 账本前置条件错误返回稳定的错误码，其余都是系统错误
func errorResult(err error) (ginx.Result, error) {
	for _, p := range preconditions {
		if errors.Is(err, p.err) {
			return ginx.Result{Code: p.code.Code, Msg: p.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
