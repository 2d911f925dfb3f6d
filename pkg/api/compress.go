package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// acceptEncoding is advertised on API requests. Setting it disables the
// transport's transparent gzip handling, so decodedBody handles both.
const acceptEncoding = "gzip, zstd"

type encodingError struct {
	encoding string
	err      error
}

func (e *encodingError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("unsupported content encoding %q", e.encoding)
	}
	return fmt.Sprintf("content encoding %s: %v", e.encoding, e.err)
}

func (e *encodingError) Unwrap() error { return e.err }

type bodyTooLargeError struct {
	limit int64
}

func (e *bodyTooLargeError) Error() string {
	return fmt.Sprintf("response body exceeds %d bytes", e.limit)
}

// decodedBody wraps body according to the Content-Encoding in header.
// Closing the result does not close body.
func decodedBody(body io.Reader, header http.Header) (io.ReadCloser, error) {
	enc := strings.ToLower(strings.TrimSpace(header.Get("Content-Encoding")))
	switch enc {
	case "", "identity":
		return io.NopCloser(body), nil
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(body)
		if err != nil {
			return nil, &encodingError{encoding: enc, err: err}
		}
		return zr, nil
	case "zstd":
		dec, err := zstd.NewReader(body)
		if err != nil {
			return nil, &encodingError{encoding: enc, err: err}
		}
		return &zstdReadCloser{dec: dec}, nil
	default:
		return nil, &encodingError{encoding: enc}
	}
}

type zstdReadCloser struct {
	dec *zstd.Decoder
}

func (z *zstdReadCloser) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return nil
}

// readBody reads the decoded body, failing if it is longer than maxBytes.
// Failures reading the raw body are returned as is; failures of the
// decoder over a cleanly read body are encoding errors.
func readBody(resp *http.Response, maxBytes int64) ([]byte, error) {
	raw := &trackingReader{r: resp.Body}
	rdr, err := decodedBody(raw, resp.Header)
	if err != nil {
		if raw.err != nil {
			return nil, raw.err
		}
		return nil, err
	}
	defer rdr.Close()

	body, err := io.ReadAll(io.LimitReader(rdr, maxBytes+1))
	if err != nil {
		if raw.err != nil {
			return nil, raw.err
		}
		if enc := resp.Header.Get("Content-Encoding"); enc != "" {
			return nil, &encodingError{encoding: enc, err: err}
		}
		return nil, err
	}
	if int64(len(body)) > maxBytes {
		return nil, &bodyTooLargeError{limit: maxBytes}
	}
	return body, nil
}
