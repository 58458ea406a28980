package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every response of the v1 API.
type Response[T any] struct {
	IsSuccess bool    `json:"isSuccess"`                                                     // Was the request successful?
	Data      T       `json:"data"`                                                          // The data, if the request was successful
	Message   string  `json:"message" example:"converted to positive expense"`               // Notices about the request
	Error     *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// httpError is the response for requests that failed.
type httpError = Response[*struct{}]

func respond[T any](c *gin.Context, code int, data T, notices ...string) {
	c.JSON(code, Response[T]{
		IsSuccess: true,
		Data:      data,
		Message:   strings.Join(notices, "; "),
	})
}

func fail(c *gin.Context, err error) {
	e := describe(err)
	c.AbortWithStatusJSON(status(err), httpError{
		Error:   &e,
		Message: http.StatusText(status(err)),
	})
}
