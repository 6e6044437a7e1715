package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func Logger(logger *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		method := ctx.Request.Method
		path := ctx.Request.URL.Path
		statusCode := ctx.Writer.Status()
		elapsed := time.Since(start)

		entry := logger.WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"statusCode": statusCode,
			"elapsed":    elapsed.Milliseconds(),
			"clientIP":   ctx.ClientIP(),
			"size":       ctx.Writer.Size(),
		})

		if len(ctx.Errors) > 0 {
			entry = entry.WithError(ctx.Errors.Last())
			if len(ctx.Errors) > 1 {
				entry = entry.WithField("errors", ctx.Errors.Errors())
			}
		}

		msg := fmt.Sprintf("%s %s -> %d %s, %d bytes", method, path, statusCode, elapsed, ctx.Writer.Size())
		switch {
		case statusCode >= 500:
			entry.Error(msg)
		case statusCode >= 400:
			entry.Warning(msg)
		default:
			entry.Info(msg)
		}
	}
}
