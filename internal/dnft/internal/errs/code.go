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
	SystemError = ErrorCode{Code: 521001, Msg: "系统错误"}

	InvalidRecipient   = ErrorCode{Code: 421001, Msg: "接收方地址非法"}
	InvalidAccount     = ErrorCode{Code: 421002, Msg: "账户地址非法"}
	NotOwner           = ErrorCode{Code: 421003, Msg: "不是凭证持有人"}
	ThresholdNotMet    = ErrorCode{Code: 421004, Msg: "积分未达到升级门槛"}
	MaxLevelReached    = ErrorCode{Code: 421005, Msg: "已达到最高等级"}
	AlreadyMinted      = ErrorCode{Code: 421006, Msg: "该账户已持有凭证"}
	CredentialNotFound = ErrorCode{Code: 421007, Msg: "凭证不存在"}
	LevelChanged       = ErrorCode{Code: 421008, Msg: "凭证等级已变更，请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
