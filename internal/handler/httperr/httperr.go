package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes {"error": msg} and records err on the context for the logging middleware.
// A nil err is recorded as msg.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
