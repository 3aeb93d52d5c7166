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

// ScorePolicy 徽章积分的口径
type ScorePolicy string

const (
	// ScorePolicyCumulative 累计接收口径：只在收到徽章时增加，转出不扣减
	ScorePolicyCumulative ScorePolicy = "cumulative"
	// ScorePolicyLive 实时口径：按当前持有量重新计算
	ScorePolicyLive ScorePolicy = "live"
)

func (p ScorePolicy) Valid() bool {
	return p == ScorePolicyCumulative || p == ScorePolicyLive
}

// Weights 每种徽章的积分权重
type Weights map[BadgeType]int64

func DefaultWeights() Weights {
	return Weights{
		BadgeTypeBronze: 1,
		BadgeTypeSilver: 2,
		BadgeTypeGold:   3,
	}
}

func (w Weights) Of(t BadgeType) int64 {
	return w[t]
}

// Policy 积分规则
type Policy struct {
	Weights Weights
	Score   ScorePolicy
}

func DefaultPolicy() Policy {
	return Policy{
		Weights: DefaultWeights(),
		Score:   ScorePolicyCumulative,
	}
}

// RecomputeScore 按持有量计算积分 Σ quantity × weight(type)
func RecomputeScore(holdings []Holding, weights Weights) int64 {
	var score int64
	for _, h := range holdings {
		score += h.Quantity * weights.Of(h.Type)
	}
	return score
}
