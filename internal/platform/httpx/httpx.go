// Package httpx maps service errors onto the wire contract: input
// validation failures carry their client-facing message as 400, anything
// else becomes a generic 500 whose cause is kept for logging only.
package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequestError is an input validation failure whose message is safe
// to send to clients.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// BadRequestf builds a BadRequestError with a client-facing message.
func BadRequestf(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// Fail converts a service error into an HTTP error: validation failures
// map to 400 with their message, everything else to 500 with a generic
// body. The original error rides along as the HTTPError internal so the
// request logger records it without leaking it to the wire.
func Fail(err error) error {
	var br *BadRequestError
	if errors.As(err, &br) {
		return echo.NewHTTPError(http.StatusBadRequest, br.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "Server error").SetInternal(err)
}
