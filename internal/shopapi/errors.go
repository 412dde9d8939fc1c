// internal/shopapi/errors.go
package shopapi

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx response from the remote commerce API
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("shop API %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsConflict reports whether err is the business-rule conflict the remote
// API raises when requested quantities exceed availability. The condition
// is recoverable: the caller shows a corrective notice and returns the user
// to the cart.
func IsConflict(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict
}

// IsNotFound reports whether err is a remote 404
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
