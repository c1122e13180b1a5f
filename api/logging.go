package api

import (
	"fmt"
	"time"

	svc_i "github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status and latency of every request.
func RequestLogger(logger svc_i.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		msg := fmt.Sprintf("%s %s %d %s", ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
		if ctx.Writer.Status() >= 500 {
			logger.Error(msg)
			return
		}
		logger.Info(msg)
	}
}
