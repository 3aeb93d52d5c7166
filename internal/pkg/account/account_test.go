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

package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	testCases := []struct {
		name string
		addr string
		want bool
	}{
		{
			name: "合法地址",
			addr: "0x52908400098527886E0F7030069857D2E4169EE7",
			want: true,
		},
		{
			name: "小写地址",
			addr: "0x8617e340b3d01fa5f11f306f4090fd50e238070d",
			want: true,
		},
		{
			name: "零地址",
			addr: Zero,
			want: false,
		},
		{
			name: "空地址",
			addr: "",
			want: false,
		},
		{
			name: "长度不对",
			addr: "0x8617e340b3d01fa5f11f306f4090fd50e238070",
			want: false,
		},
		{
			name: "没有前缀",
			addr: "8617e340b3d01fa5f11f306f4090fd50e238070d",
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Valid(tc.addr))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("0x52908400098527886E0F7030069857D2E4169EE7", "0x52908400098527886e0f7030069857d2e4169ee7"))
	assert.False(t, Equal("0x52908400098527886E0F7030069857D2E4169EE7", Zero))
}
