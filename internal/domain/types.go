package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RawJSON is a nullable jsonb column kept as raw bytes
type RawJSON json.RawMessage

// Scan implements the sql.Scanner interface
func (r *RawJSON) Scan(val interface{}) error {
	switch v := val.(type) {
	case nil:
		*r = nil
	case []byte:
		*r = bytes.Clone(v)
	case string:
		*r = RawJSON(v)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return []byte(r), nil
}

// MarshalJSON writes null for an empty value
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON keeps the raw bytes, dropping a literal null
func (r *RawJSON) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = nil
		return nil
	}
	*r = bytes.Clone(data)
	return nil
}

// FlexibleID decodes an identifier sent either as a JSON string or number
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("id must be a string or a number")
	}
	*f = FlexibleID(n.String())
	return nil
}
