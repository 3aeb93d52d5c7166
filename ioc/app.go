package ioc

import (
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
	Relay *relay.Daemon
}
