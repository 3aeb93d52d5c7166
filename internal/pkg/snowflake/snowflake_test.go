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

package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	testCases := []struct {
		name    string
		nodeID  uint
		sources uint
		wantErr error
	}{
		{
			name:    "node超出限制",
			nodeID:  32,
			sources: 2,
			wantErr: ErrExceedNode,
		},
		{
			name:    "来源超出限制",
			nodeID:  3,
			sources: 33,
			wantErr: ErrExceedSource,
		},
		{
			name:    "创建成功",
			nodeID:  0,
			sources: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerator(tc.nodeID, tc.sources)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGenerator_Next(t *testing.T) {
	g, err := NewGenerator(1, 2)
	require.NoError(t, err)

	var last ID
	seen := make(map[ID]struct{}, 20000)
	for i := 0; i < 10000; i++ {
		id, err := g.Next(SourceBadge)
		require.NoError(t, err)
		// 同一来源严格递增
		require.Greater(t, id, last)
		last = id
		assert.Equal(t, SourceBadge, id.Source())
		seen[id] = struct{}{}
	}
	for i := 0; i < 10000; i++ {
		id, err := g.Next(SourceCredential)
		require.NoError(t, err)
		assert.Equal(t, SourceCredential, id.Source())
		_, ok := seen[id]
		require.False(t, ok)
		seen[id] = struct{}{}
	}

	_, err = g.Next(Source(5))
	assert.ErrorIs(t, err, ErrUnknownSource)
}
