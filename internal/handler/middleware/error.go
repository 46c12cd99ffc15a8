package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"sponsor-portal/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const MsgInternalError = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// ErrorHandler guarantees a JSON body for handlers that return without responding
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Error: MsgInternalError})
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logger.Error("recovered from panic",
					slog.Any("error", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{Error: MsgInternalError})
			}
		}()
		c.Next()
	}
}
