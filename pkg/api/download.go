package api

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/odvcencio/cfapi/pkg/fingerprint"
	"github.com/odvcencio/cfapi/pkg/schema"
)

// Download streams the body at u into w and returns the number of bytes
// written. The API key is only attached when u is on the API host.
func (c *Client) Download(ctx context.Context, u *url.URL, w io.Writer) (int64, error) {
	const op = "download"
	if u == nil {
		return 0, &URLError{Err: errors.New("nil URL")}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return 0, &URLError{Raw: u.Redacted(), Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, &URLError{Raw: u.Redacted(), Err: err}
	}
	c.applyHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, newStatusError(op, req, resp)
	}

	raw := &trackingReader{r: resp.Body}
	body, err := decodedBody(raw, resp.Header)
	if err != nil {
		if raw.err != nil {
			return 0, &TransportError{Op: op, Err: raw.err}
		}
		return 0, &DecodeError{Op: op, Err: err}
	}
	defer body.Close()

	src := &trackingReader{r: body}
	n, err := io.Copy(w, src)
	if err != nil {
		switch {
		case raw.err != nil:
			return n, &TransportError{Op: op, Err: raw.err}
		case src.err != nil && errors.Is(err, src.err):
			return n, &DecodeError{Op: op, Err: err}
		}
		return n, fmt.Errorf("%s: write: %w", op, err)
	}
	return n, nil
}

// trackingReader remembers the last non-EOF read error, so callers can tell
// which layer of a reader stack failed.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF {
		t.err = err
	}
	return n, err
}

// DownloadFile downloads the contents of file from its download URL.
func (c *Client) DownloadFile(ctx context.Context, file schema.File) ([]byte, error) {
	u, ok := file.DownloadURL.Get()
	if !ok {
		return nil, fmt.Errorf("download file %d: %w", file.ID, ErrNoDownloadURL)
	}
	return c.downloadBytes(ctx, u, file.FileLength)
}

// DownloadFileByID resolves the download URL of a file and downloads it.
func (c *Client) DownloadFileByID(ctx context.Context, modID, fileID int) ([]byte, error) {
	u, err := c.GetModFileDownloadURL(ctx, modID, fileID)
	if err != nil {
		if errors.Is(err, ErrNoDownloadURL) {
			return nil, fmt.Errorf("download file %d: %w", fileID, err)
		}
		return nil, err
	}
	return c.downloadBytes(ctx, u, 0)
}

func (c *Client) downloadBytes(ctx context.Context, u *url.URL, sizeHint int64) ([]byte, error) {
	var buf bytes.Buffer
	if sizeHint > 0 && sizeHint < responseLimitFiles {
		buf.Grow(int(sizeHint))
	}
	if _, err := c.Download(ctx, u, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// VerifyFile checks data against the hashes and fingerprint the service
// reported for file. Hashes the service did not report are skipped; the
// fingerprint is always checked.
func VerifyFile(file schema.File, data []byte) error {
	for _, h := range file.Hashes {
		var got string
		switch h.Algo {
		case schema.HashAlgoSHA1:
			sum := sha1.Sum(data)
			got = hex.EncodeToString(sum[:])
		case schema.HashAlgoMD5:
			sum := md5.Sum(data)
			got = hex.EncodeToString(sum[:])
		default:
			continue
		}
		if !strings.EqualFold(got, strings.TrimSpace(h.Value)) {
			return fmt.Errorf("verify file %d: %s: %w: want %s, got %s", file.ID, h.Algo, ErrChecksumMismatch, h.Value, got)
		}
	}
	if got := fingerprint.Compute(data); got != file.FileFingerprint {
		return fmt.Errorf("verify file %d: fingerprint: %w: want %d, got %d", file.ID, ErrChecksumMismatch, file.FileFingerprint, got)
	}
	return nil
}
