package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrNoDownloadURL is returned when a file carries no download URL, which
// happens when the author disabled third-party distribution.
var ErrNoDownloadURL = errors.New("file has no download URL")

// ErrChecksumMismatch is wrapped by VerifyFile failures.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// TransportError wraps a failure of the underlying HTTP client: DNS,
// connection, TLS, timeout or cancellation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response.
type StatusError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string // at most 64KB, trimmed
	// Message is the service's errorMessage when the body is a JSON error.
	Message string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed (%s %s): %d: %s", e.Op, e.Method, e.URL, e.StatusCode, msg)
}

func newStatusError(op string, req *http.Request, resp *http.Response) *StatusError {
	se := &StatusError{
		Op:         op,
		Method:     req.Method,
		URL:        req.URL.Redacted(),
		StatusCode: resp.StatusCode,
	}
	if rdr, err := decodedBody(resp.Body, resp.Header); err == nil {
		raw, _ := io.ReadAll(io.LimitReader(rdr, responseLimitError))
		rdr.Close()
		se.Body = strings.TrimSpace(string(raw))
		se.Message = parseErrorMessage(raw)
	}
	return se
}

// parseErrorMessage extracts the message of a JSON error body such as
// {"errorCode": 404, "errorMessage": "Not Found"}.
func parseErrorMessage(body []byte) string {
	var apiErr struct {
		ErrorCode    int    `json:"errorCode"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}
	return strings.TrimSpace(apiErr.ErrorMessage)
}

// DecodeError reports a response body that does not have the expected
// shape: not JSON, a wrong type, a missing required field or an unknown enum
// code.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// URLError reports a URL that could not be built or parsed.
type URLError struct {
	Raw string
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %v", e.Raw, e.Err)
}

func (e *URLError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status of a *StatusError in err's chain.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}
