// Package schema defines the JSON shapes returned by the CurseForge API.
//
// Decoding is strict where the shape is known: required fields must be
// present and non-null, and integer-coded enums reject codes this package
// does not know. Unknown object keys are ignored so that additive service
// changes do not break clients.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingFieldError reports a required field that was absent or null.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
}

// UnknownCodeError reports an enum code outside the known set.
type UnknownCodeError struct {
	Enum string
	Code int
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("%s: unknown code %d", e.Enum, e.Code)
}

var jsonNull = []byte("null")

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// requireFields checks that data is a JSON object carrying every name with a
// non-null value.
func requireFields(data []byte, typ string, names ...string) error {
	if isNull(data) {
		return fmt.Errorf("%s: object is null", typ)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}
	for _, name := range names {
		raw, ok := fields[name]
		if !ok || isNull(raw) {
			return &MissingFieldError{Type: typ, Field: name}
		}
	}
	return nil
}

// decodeStrict checks required fields and then decodes data into v, which
// must be a pointer to a type without its own UnmarshalJSON.
func decodeStrict(data []byte, typ string, v any, required ...string) error {
	if err := requireFields(data, typ, required...); err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}
	return nil
}

func decodeEnum[T ~uint8](data []byte, name string, valid func(T) bool) (T, error) {
	if isNull(data) {
		return 0, fmt.Errorf("%s: null code", name)
	}
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if code < 0 || code > 0xff || !valid(T(code)) {
		return 0, &UnknownCodeError{Enum: name, Code: code}
	}
	return T(code), nil
}
