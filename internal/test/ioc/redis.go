package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 与线上相同的命名空间，测试之间靠各自的 key 隔离
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		loadConfig()
		addr := econf.GetString("redis.addr")
		if addr == "" {
			addr = "localhost:6379"
		}
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(redis.NewClient(&redis.Options{Addr: addr})),
			Namespace: "ledger:",
		}
	})
	return cache
}
