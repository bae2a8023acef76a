package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

type HTTPError struct {
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Fields  []apperr.FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond maps an operation error onto its HTTP representation.
func Respond(c *gin.Context, err error) {
	var (
		nf   *apperr.NotFoundError
		verr *apperr.ValidationError
		conf *apperr.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_error",
			Message: "invalid input",
			Fields:  verr.Fields,
		})
	case errors.As(err, &nf):
		NotFound(c, "not_found", nf.Error())
	case errors.As(err, &conf):
		Write(c, http.StatusConflict, "conflict", conf.Msg)
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		Internal(c, "internal_error", "internal server error")
	}
}
