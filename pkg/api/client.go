// Package api is a client for the CurseForge REST API.
//
// Every method performs a single HTTP round trip and decodes the
// {"data": ..., "pagination": ...} envelope into the types of package schema.
// The client keeps no state between calls, never retries and never logs;
// failures are returned as *TransportError, *StatusError, *DecodeError or
// *URLError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/odvcencio/cfapi/pkg/schema"
)

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "https://api.curseforge.com/v1/"
	// DefaultGameID is Minecraft, the game the fingerprint endpoint is
	// scoped to by default.
	DefaultGameID = 432
	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "cfapi-go/0.1"

	headerAPIKey = "x-api-key"
)

// Response limits per endpoint type.
const (
	responseLimitDefault = 4 << 20   // 4MB
	responseLimitMods    = 32 << 20  // 32MB
	responseLimitFiles   = 128 << 20 // 128MB, mod file listings are requested in one page
	responseLimitError   = 64 << 10  // 64KB kept from non-2xx bodies
)

// Config configures a Client. Zero-value fields receive defaults.
type Config struct {
	BaseURL string // API root (default DefaultBaseURL)
	APIKey  string // sent as x-api-key to the API host only
	GameID  int    // game scope for fingerprint lookups (default DefaultGameID)
	// LegacyFingerprints selects the unscoped POST /fingerprints endpoint.
	LegacyFingerprints bool
	UserAgent          string
	// Timeout is applied to the default http.Client only; 0 leaves request
	// lifetime to the caller's context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a CurseForge API client. It is immutable and safe for
// concurrent use.
type Client struct {
	cfg        Config
	base       *url.URL
	httpClient *http.Client
}

// NewClient validates cfg and returns a client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.GameID <= 0 {
		cfg.GameID = DefaultGameID
	}
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	base, err := parseHTTPURL(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, err
	}
	// Relative endpoint paths must resolve below the base, not beside it.
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		cfg:        cfg,
		base:       base,
		httpClient: scopeRedirects(hc, base.Host),
	}, nil
}

// maxRedirects matches net/http's default redirect policy.
const maxRedirects = 10

// scopeRedirects returns a copy of hc that drops the API key whenever a
// redirect leaves apiHost. net/http forwards custom headers to every
// redirect target.
func scopeRedirects(hc *http.Client, apiHost string) *http.Client {
	scoped := *hc
	next := hc.CheckRedirect
	scoped.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if !strings.EqualFold(req.URL.Host, apiHost) {
			req.Header.Del(headerAPIKey)
		}
		if next != nil {
			return next(req, via)
		}
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	}
	return &scoped
}

// Config returns the effective configuration, defaults applied.
func (c *Client) Config() Config {
	return c.cfg
}

// BaseURL returns a copy of the API root.
func (c *Client) BaseURL() *url.URL {
	u := *c.base
	return &u
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &URLError{Raw: raw, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, &URLError{Raw: raw, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return nil, &URLError{Raw: raw, Err: errors.New("missing host")}
	}
	return u, nil
}

// pathID renders a path identifier. Service IDs are positive.
func pathID(kind string, id int) (string, error) {
	if id <= 0 {
		return "", &URLError{Raw: strconv.Itoa(id), Err: fmt.Errorf("invalid %s id", kind)}
	}
	return strconv.Itoa(id), nil
}

func (c *Client) endpoint(segments ...string) *url.URL {
	return c.base.JoinPath(segments...)
}

func (c *Client) newRequest(ctx context.Context, method string, u *url.URL, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, u.Path, err)
		}
		rdr = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return nil, &URLError{Raw: u.String(), Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	c.applyHeaders(req)
	return req, nil
}

// applyHeaders sets the user agent and, for requests to the API host only,
// the API key. Download hosts never see the key.
func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.APIKey != "" && strings.EqualFold(req.URL.Host, c.base.Host) {
		req.Header.Set(headerAPIKey, c.cfg.APIKey)
	}
}

// roundTrip sends req and returns the decoded body of a 2xx response.
func (c *Client) roundTrip(op string, req *http.Request, maxBytes int64) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(op, req, resp)
	}

	body, err := readBody(resp, maxBytes)
	if err != nil {
		var tooLarge *bodyTooLargeError
		var enc *encodingError
		if errors.As(err, &tooLarge) || errors.As(err, &enc) {
			return nil, &DecodeError{Op: op, Err: err}
		}
		return nil, &TransportError{Op: op, Err: err}
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return nil, &DecodeError{Op: op, Err: fmt.Errorf("unexpected content type %q from %s %s (status %d)",
			ct, req.Method, req.URL.Path, resp.StatusCode)}
	}
	return body, nil
}

func doJSON[T any](c *Client, op string, req *http.Request, maxBytes int64) (schema.Envelope[T], error) {
	body, err := c.roundTrip(op, req, maxBytes)
	if err != nil {
		return schema.Envelope[T]{}, err
	}
	env, err := schema.DecodeEnvelope[T](body)
	if err != nil {
		return schema.Envelope[T]{}, &DecodeError{Op: op, Err: err}
	}
	return env, nil
}

func getJSON[T any](ctx context.Context, c *Client, op string, u *url.URL, maxBytes int64) (schema.Envelope[T], error) {
	req, err := c.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return schema.Envelope[T]{}, err
	}
	return doJSON[T](c, op, req, maxBytes)
}

func postJSON[T any](ctx context.Context, c *Client, op string, u *url.URL, body any, maxBytes int64) (schema.Envelope[T], error) {
	req, err := c.newRequest(ctx, http.MethodPost, u, body)
	if err != nil {
		return schema.Envelope[T]{}, err
	}
	return doJSON[T](c, op, req, maxBytes)
}
