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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// DedupCache 记录已经落库的事件，挡住重复投递
type DedupCache interface {
	Seen(ctx context.Context, ref string) (bool, error)
	MarkSeen(ctx context.Context, ref string) error
}

type dedupCache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewDedupCache(ec ecache.Cache, expiration time.Duration) DedupCache {
	return &dedupCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "relay:",
		},
		expiration: expiration,
	}
}

func (c *dedupCache) Seen(ctx context.Context, ref string) (bool, error) {
	val := c.ec.Get(ctx, c.key(ref))
	if val.KeyNotFound() {
		return false, nil
	}
	if val.Err != nil {
		return false, errors.Wrap(val.Err, "查询去重缓存出错")
	}
	return true, nil
}

func (c *dedupCache) MarkSeen(ctx context.Context, ref string) error {
	_, err := c.ec.SetNX(ctx, c.key(ref), 1, c.expiration)
	return errors.Wrap(err, "写入去重缓存出错")
}

func (c *dedupCache) key(ref string) string {
	return "seen:" + ref
}
