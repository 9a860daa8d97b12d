package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)
	return router
}

// Serve blocks serving the pprof handlers on addr.
func Serve(addr string) error {
	return NewRouter().Run(addr)
}

// Start serves in the background and only logs a failure to listen.
func Start(addr string) {
	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := Serve(addr); err != nil {
			logx.Errorf("pprof on %s: %v", addr, err)
		}
	}()
}
