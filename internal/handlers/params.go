package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

// QueryOptions are the request-parsing settings shared by every list.
type QueryOptions struct {
	Location        *time.Location
	DefaultPageSize int
	MaxPageSize     int
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, "not_found", "unknown id")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the body into dst. Decoding failures are reported as
// validation errors; an empty body decodes to the zero value.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *time.ParseError
	)

	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "non_field_errors"
		}
		httperr.Respond(c, apperr.Invalid(field, "Incorrect type. Expected "+typeErr.Type.String()+"."))
	case errors.As(err, &timeErr):
		httperr.Respond(c, apperr.Invalid("non_field_errors", "Datetime has wrong format. Use RFC 3339."))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		httperr.Respond(c, apperr.Invalid("non_field_errors", "Malformed JSON body."))
	default:
		httperr.Respond(c, apperr.Invalid("non_field_errors", err.Error()))
	}
	return false
}

func (o QueryOptions) parse(c *gin.Context, res *query.Resource) (query.Query, query.Page, bool) {
	values := c.Request.URL.Query()

	verr := apperr.NewValidation()

	q, err := query.Parse(res, values, o.Location)
	if err := verr.Merge(err); err != nil {
		httperr.Respond(c, err)
		return query.Query{}, query.Page{}, false
	}

	page, err := query.ParsePage(values, o.DefaultPageSize, o.MaxPageSize)
	if err := verr.Merge(err); err != nil {
		httperr.Respond(c, err)
		return query.Query{}, query.Page{}, false
	}

	if err := verr.Err(); err != nil {
		httperr.Respond(c, err)
		return query.Query{}, query.Page{}, false
	}

	return q, page, true
}

func writeMode(c *gin.Context) usecase.Mode {
	if c.Request.Method == http.MethodPut {
		return usecase.ModeReplace
	}
	return usecase.ModePatch
}
