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

package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const scoreExpiration = 10 * time.Minute

var ErrScoreNotFound = errors.New("积分缓存不存在")

type ScoreCache interface {
	Get(ctx context.Context, account string) (int64, error)
	Set(ctx context.Context, account string, score int64) error
	Del(ctx context.Context, accounts ...string) error
}

type scoreCache struct {
	ec ecache.Cache
}

func NewScoreCache(ec ecache.Cache) ScoreCache {
	return &scoreCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "badge:",
		},
	}
}

func (c *scoreCache) Get(ctx context.Context, account string) (int64, error) {
	val := c.ec.Get(ctx, c.key(account))
	if val.KeyNotFound() {
		return 0, ErrScoreNotFound
	}
	if val.Err != nil {
		return 0, errors.Wrap(val.Err, "查询积分缓存出错")
	}
	str, err := val.AsString()
	if err != nil {
		return 0, errors.Wrap(err, "积分缓存格式错误")
	}
	return strconv.ParseInt(str, 10, 64)
}

func (c *scoreCache) Set(ctx context.Context, account string, score int64) error {
	return c.ec.Set(ctx, c.key(account), strconv.FormatInt(score, 10), scoreExpiration)
}

func (c *scoreCache) Del(ctx context.Context, accounts ...string) error {
	for _, acc := range accounts {
		if _, err := c.ec.Delete(ctx, c.key(acc)); err != nil {
			return errors.Wrap(err, "删除积分缓存出错")
		}
	}
	return nil
}

func (c *scoreCache) key(account string) string {
	return "score:" + account
}
