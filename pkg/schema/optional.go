package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// URL is a required URL field. The zero value has no URL.
type URL struct {
	u *url.URL
}

// NewURL parses raw into a URL.
func NewURL(raw string) (URL, error) {
	u, err := parseURL(raw)
	if err != nil {
		return URL{}, err
	}
	return URL{u: u}, nil
}

// URL returns the parsed URL, or nil for the zero value.
func (u URL) URL() *url.URL { return u.u }

func (u URL) String() string {
	if u.u == nil {
		return ""
	}
	return u.u.String()
}

func (u *URL) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	parsed, err := parseURL(raw)
	if err != nil {
		return err
	}
	u.u = parsed
	return nil
}

func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// OptionalURL is a URL field the service may send as null or "". Both
// decode to absent.
type OptionalURL struct {
	u *url.URL
}

// Get returns the URL and whether it is present.
func (o OptionalURL) Get() (*url.URL, bool) { return o.u, o.u != nil }

// IsSet reports whether a URL is present.
func (o OptionalURL) IsSet() bool { return o.u != nil }

func (o OptionalURL) String() string {
	if o.u == nil {
		return ""
	}
	return o.u.String()
}

func (o *OptionalURL) UnmarshalJSON(data []byte) error {
	o.u = nil
	if isNull(data) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("url: %w", err)
	}
	if raw == "" {
		return nil
	}
	parsed, err := parseURL(raw)
	if err != nil {
		return err
	}
	o.u = parsed
	return nil
}

func (o OptionalURL) MarshalJSON() ([]byte, error) {
	if o.u == nil {
		return jsonNull, nil
	}
	return json.Marshal(o.u.String())
}

func parseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("url: empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("url: %q is not an absolute URL", raw)
	}
	return u, nil
}

// OptionalTime is a timestamp the service may send as null or "".
type OptionalTime struct {
	t  time.Time
	ok bool
}

// Get returns the time and whether it is present.
func (o OptionalTime) Get() (time.Time, bool) { return o.t, o.ok }

// IsSet reports whether a timestamp is present.
func (o OptionalTime) IsSet() bool { return o.ok }

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	*o = OptionalTime{}
	if isNull(data) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("time: %w", err)
	}
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("time: %w", err)
	}
	o.t, o.ok = t, true
	return nil
}

func (o OptionalTime) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return jsonNull, nil
	}
	return json.Marshal(o.t.Format(time.RFC3339Nano))
}
