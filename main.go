package main

import (
	"context"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	// ego.New 负责解析 --config，之后的初始化都依赖配置
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	app, err := ioc.InitApp()
	if err != nil {
		elog.Panic("初始化失败", elog.FieldErr(err))
	}

	err = egoApp.
		Invoker(func() error {
			app.Relay.Start(context.Background())
			return nil
		}).
		Serve(egovernor.Load("server.governor").Build(), app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}

	// 先把中继队列里的事件写完，再导出最后一批 span
	if err = app.Relay.Stop(); err != nil {
		elog.DefaultLogger.Error("停止中继失败", elog.FieldErr(err))
	}
	if err = tp.Shutdown(context.Background()); err != nil {
		elog.DefaultLogger.Error("Shutdown zipkinTracer", elog.FieldErr(err))
	}
}
