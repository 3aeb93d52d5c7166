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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     func() Config
		wantErr bool
	}{
		{
			name: "默认配置",
			cfg:  DefaultConfig,
		},
		{
			name: "队列长度为 0",
			cfg: func() Config {
				c := DefaultConfig()
				c.QueueSize = 0
				return c
			},
			wantErr: true,
		},
		{
			name: "重试次数为负数",
			cfg: func() Config {
				c := DefaultConfig()
				c.WriteRetries = -1
				return c
			},
			wantErr: true,
		},
		{
			name: "重试次数为 0",
			cfg: func() Config {
				c := DefaultConfig()
				c.WriteRetries = 0
				return c
			},
		},
		{
			name: "补齐批量为 0",
			cfg: func() Config {
				c := DefaultConfig()
				c.CatchUpBatch = 0
				return c
			},
			wantErr: true,
		},
		{
			name: "缺少消费组",
			cfg: func() Config {
				c := DefaultConfig()
				c.GroupID = ""
				return c
			},
			wantErr: true,
		},
		{
			name: "不重放死信",
			cfg: func() Config {
				c := DefaultConfig()
				c.MaxReplays = 0
				return c
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg().validate()
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestConfig_Daemon(t *testing.T) {
	c := DefaultConfig()
	c.QueueSize = 8
	c.WriteRetries = 1
	c.WriteTimeout = time.Second
	c.CatchUpBatch = 16
	d := c.daemon()
	assert.Equal(t, 8, d.QueueSize)
	assert.Equal(t, int32(1), d.WriteRetries)
	assert.Equal(t, time.Second, d.WriteTimeout)
	assert.Equal(t, 16, d.CatchUpBatch)

	c.WriteRetries = 0
	assert.Equal(t, int32(0), c.daemon().WriteRetries)
	assert.True(t, d.MaxReconnectInterval > 0)
}
