package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error"`
	Message string `json:"details"`
}

var statusByCategory = map[Category]int{
	CategoryValidation:       http.StatusBadRequest,
	CategoryNotFound:         http.StatusNotFound,
	CategoryConflict:         http.StatusConflict,
	CategoryInvalidReference: http.StatusBadRequest,
	CategoryColumnMissing:    http.StatusInternalServerError,
	CategoryPersistence:      http.StatusInternalServerError,
}

func Status(cat Category) int {
	if s, ok := statusByCategory[cat]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Respond classifies err and writes the matching status and payload.
// Internal failures never leak driver text to the client.
func Respond(c *gin.Context, err error) {
	e := Classify(err)
	status := Status(e.Category)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	Write(c, status, string(e.Category), e.Message)
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, string(CategoryValidation), message)
}
