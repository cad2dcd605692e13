package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// fieldErrAmountNotPositive rejects amounts of zero or less. The
// "required" binding cannot catch an explicit zero amount because a
// decimal zero is not the Go zero value of decimal.Decimal.
var fieldErrAmountNotPositive = httputil.FieldErrors{
	"amount": "must be greater than zero",
}

// httpValidationError is returned when individual fields of a request
// body are missing or invalid.
type httpValidationError struct {
	Error  string               `json:"error" example:"one or more fields of your request are missing or invalid"`
	Fields httputil.FieldErrors `json:"fields" swaggertype:"object,string"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// renderError writes the error response for a request that failed.
// Validation failures carry their per-field messages, everything else
// is a plain error message with the status derived from the error.
func renderError(c *gin.Context, err error) {
	var fields httputil.FieldErrors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, httpValidationError{
			Error:  httputil.ErrFieldsInvalid.Error(),
			Fields: fields,
		})
		return
	}

	c.JSON(status(err), httpError{
		Error: err.Error(),
	})
}
