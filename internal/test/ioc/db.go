package testioc

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
	cfgOnce    sync.Once
)

// InitDB 连接 config/local.yaml 里的 MySQL，整个测试进程共用一个连接
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		loadConfig()
		if err := ioc.WaitForDBSetup(econf.GetString("mysql.dsn"), time.Minute); err != nil {
			panic(err)
		}
		db = egorm.Load("mysql").Build()
	})
	return db
}

// loadConfig 以本文件为锚点定位仓库根目录，不依赖测试的工作目录
func loadConfig() {
	cfgOnce.Do(func() {
		_, file, _, _ := runtime.Caller(0)
		root := filepath.Join(filepath.Dir(file), "..", "..", "..")
		content, err := os.ReadFile(filepath.Join(root, "config", "local.yaml"))
		if err != nil {
			panic(err)
		}
		if err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal); err != nil {
			panic(err)
		}
	})
}
