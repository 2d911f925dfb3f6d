package main

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loggingTransport logs each request at debug level. Only the method, host,
// path and outcome are logged; headers (and with them the API key) never are.
type loggingTransport struct {
	next http.RoundTripper
	log  *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, log *slog.Logger) *loggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	attrs := []any{
		"method", req.Method,
		"host", req.URL.Host,
		"path", req.URL.Path,
		"duration", time.Since(start).Round(time.Millisecond),
	}
	if err != nil {
		t.log.Debug("request failed", append(attrs, "err", err)...)
		return nil, err
	}
	t.log.Debug("request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}
