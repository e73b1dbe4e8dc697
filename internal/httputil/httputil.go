package httputil

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds a single completion request end to end.
	DefaultTimeout = 60 * time.Second

	MaxResponseBodySize = 32 * 1024 * 1024 // 32 MB
)

// NewClient returns an http.Client with the given overall timeout,
// falling back to DefaultTimeout when zero.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// ReadBody reads a response body with a size limit to prevent memory
// exhaustion. Returns an error if the body exceeds MaxResponseBodySize.
func ReadBody(body io.ReadCloser) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxResponseBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes limit", MaxResponseBodySize)
	}
	return data, nil
}
