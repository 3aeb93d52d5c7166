package ioc

import (
	"net/http"
	"strings"

	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/badge"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/dnft"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/pkg/middleware"
	"github.com/codestates-beb/beb-09-clean-mile-sub001/internal/relay"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(
	bhdl *badge.Handler,
	dhdl *dnft.Handler,
	rhdl *relay.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	origins := econf.GetStringSlice("web.allowOrigins")
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	bhdl.PublicRoutes(res.Engine)
	dhdl.PublicRoutes(res.Engine)
	rhdl.PublicRoutes(res.Engine)
	// 写操作，调用方自己传入操作账户
	bhdl.PrivateRoutes(res.Engine)
	dhdl.PrivateRoutes(res.Engine)
	return res
}
