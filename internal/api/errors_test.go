package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_Error(t *testing.T) {
	assert.Equal(t, "api: unexpected status 404: product not found",
		(&HTTPError{Status: 404, Body: "product not found"}).Error())
	assert.Equal(t, "api: unexpected status 500",
		(&HTTPError{Status: 500}).Error())
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "GET /products", Err: cause}

	assert.Equal(t, "api: GET /products: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorTypesSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load products: %w", &HTTPError{Status: 404, Body: "gone"})

	var httpErr *HTTPError
	require.ErrorAs(t, wrapped, &httpErr)
	assert.Equal(t, 404, httpErr.Status)

	var transportErr *TransportError
	assert.False(t, errors.As(wrapped, &transportErr))
}
