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

package errs

var (
	SystemError         = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidAmount       = ErrorCode{Code: 420001, Msg: "发行数量必须大于0"}
	ZeroAmount          = ErrorCode{Code: 420002, Msg: "转账数量必须大于0"}
	InvalidRecipient    = ErrorCode{Code: 420003, Msg: "接收方地址非法"}
	InvalidAccount      = ErrorCode{Code: 420004, Msg: "账户地址非法"}
	InvalidBadgeType    = ErrorCode{Code: 420005, Msg: "徽章类型非法"}
	NoAuthority         = ErrorCode{Code: 420006, Msg: "没有转账权限"}
	InsufficientBalance = ErrorCode{Code: 420007, Msg: "徽章余额不足"}
	TokenNotFound       = ErrorCode{Code: 420008, Msg: "徽章不存在"}
	LengthMismatch      = ErrorCode{Code: 420009, Msg: "账户与徽章数量不一致"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
