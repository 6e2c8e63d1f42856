package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPError describes a non-2xx response from the server.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error returns the server's human-readable message.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func newHTTPError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	httpErr := &HTTPError{StatusCode: resp.StatusCode}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		httpErr.Code = body.Error
		httpErr.Message = body.Message
	} else {
		httpErr.Message = strings.TrimSpace(string(data))
	}
	return httpErr
}
