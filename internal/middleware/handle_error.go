package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleError renders the single user-facing failure shape and logs the
// underlying cause, which never leaves the process.
func HandleError(ctx *gin.Context, status int, message string, err error) {
	if rawLogger, ok := ctx.Get("logger"); ok {
		logger := rawLogger.(*zerolog.Logger)
		event := logger.Warn().Int("code", status)
		if err != nil {
			event = event.Err(err)
		}
		event.Msg(message)
	}

	ctx.AbortWithStatusJSON(status, gin.H{
		"message": message,
	})
}
