package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spendlog/backend/internal/types"
)

// The scheme defaults to http and only changes to https
// if the x-forwarded-proto header is set to "https".
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// We can reasonably expect a reverse proxy to set x-forwarded-host
	// as it is a de-facto standard. If it is set, we use it together
	// with the x-forwarded-prefix header to construct the links.
	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// BindData binds the JSON body of the request to the struct passed in the
// interface.
//
// Errors are translated for the API consumer:
//   - an empty body returns ErrRequestBodyEmpty
//   - an unparseable date field returns types.ErrDateFormat
//   - binding validation failures return a FieldErrors with per-field messages
//   - everything else returns ErrInvalidBody
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	if errors.Is(err, types.ErrDateFormat) {
		return types.ErrDateFormat
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return newFieldErrors(data, validationErrs)
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
