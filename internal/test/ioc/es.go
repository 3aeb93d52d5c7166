package testioc

import (
	"sync"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/olivere/elastic/v7"
)

var (
	es         *elastic.Client
	esInitOnce sync.Once
)

// InitES 单节点测试集群，关闭 sniff 以免拿到容器内地址
func InitES() *elastic.Client {
	esInitOnce.Do(func() {
		loadConfig()
		url := econf.GetString("es.url")
		if url == "" {
			url = "http://127.0.0.1:9200"
		}
		client, err := elastic.NewClient(
			elastic.SetURL(url),
			elastic.SetSniff(false),
			elastic.SetHealthcheckTimeoutStartup(10*time.Second),
		)
		if err != nil {
			panic(err)
		}
		es = client
	})
	return es
}
