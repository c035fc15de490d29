package coingecko_common

import (
	"errors"
	"fmt"
)

// UpstreamError carries the status code and body of a failed upstream
// response so that passthrough endpoints can forward them verbatim.
type UpstreamError struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// AsUpstreamError unwraps an UpstreamError from an error chain
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
