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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeScore(t *testing.T) {
	testCases := []struct {
		name     string
		holdings []Holding
		weights  Weights
		want     int64
	}{
		{
			name:    "没有持有",
			weights: DefaultWeights(),
			want:    0,
		},
		{
			name: "多种徽章",
			holdings: []Holding{
				{TokenID: 0, Type: BadgeTypeGold, Quantity: 10},
				{TokenID: 1, Type: BadgeTypeBronze, Quantity: 4},
				{TokenID: 2, Type: BadgeTypeSilver, Quantity: 1},
			},
			weights: DefaultWeights(),
			want:    10*3 + 4*1 + 1*2,
		},
		{
			name: "自定义权重",
			holdings: []Holding{
				{TokenID: 0, Type: BadgeTypeGold, Quantity: 2},
				{TokenID: 1, Type: BadgeTypeSilver, Quantity: 3},
			},
			weights: Weights{BadgeTypeGold: 10},
			want:    20,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RecomputeScore(tc.holdings, tc.weights))
		})
	}
}

func TestMovement_Total(t *testing.T) {
	m := Movement{Recipients: []string{"0xb", "0xc", "0xd"}, AmountEach: 4}
	assert.Equal(t, int64(12), m.Total())
}

func TestBadgeType_Valid(t *testing.T) {
	assert.True(t, BadgeTypeBronze.Valid())
	assert.True(t, BadgeTypeGold.Valid())
	assert.False(t, BadgeType(3).Valid())
}
