package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Turns panics into plain 500 responses. Stack traces go to the log only.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(
		&logrusRecoveryWriter{logger},
		func(ctx *gin.Context, recovered any) {
			ctx.Error(fmt.Errorf("panic: %v", recovered))
			ctx.String(http.StatusInternalServerError, "%s", http.StatusText(http.StatusInternalServerError))
			ctx.Abort()
		},
	)
}

type logrusRecoveryWriter struct {
	logger *logrus.Logger
}

func (w *logrusRecoveryWriter) Write(p []byte) (int, error) {
	w.logger.WithFields(logrus.Fields{
		"component": "gin",
		"action":    "recovery",
	}).Error(string(p))
	return len(p), nil
}
