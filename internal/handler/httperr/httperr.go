package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes the envelope and records the original error on the
// context so the logging and collector middleware can see the cause.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
