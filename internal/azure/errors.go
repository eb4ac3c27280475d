package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// statusCode extracts the HTTP status code from an ARM response error.
// Returns 0 when err is not a response error.
func statusCode(err error) int {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an ARM "not found" response.
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

// IsConflict reports whether err is an ARM "conflict" response.
func IsConflict(err error) bool {
	return statusCode(err) == http.StatusConflict
}

// IsTransient reports whether err is worth retrying: throttling or a
// server-side failure.
func IsTransient(err error) bool {
	code := statusCode(err)
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
