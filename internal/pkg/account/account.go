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

// Package account 账户地址的校验与规范化
package account

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Zero 零地址，不能作为任何转账的接收方
const Zero = "0x0000000000000000000000000000000000000000"

var validate = validator.New()

// Normalize 统一转成小写，地址比较都应该先规范化
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// Valid 合法的非零地址
func Valid(addr string) bool {
	addr = Normalize(addr)
	if addr == Zero {
		return false
	}
	return validate.Var(addr, "required,eth_addr") == nil
}

// Equal 忽略大小写比较两个地址
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
