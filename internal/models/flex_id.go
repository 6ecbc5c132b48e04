package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexID is a row identifier that accepts either a JSON number or a numeric
// JSON string; browser clients send both forms.
type FlexID int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexID(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexID: expected number or string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("FlexID: invalid integer string %q: %w", s, err)
	}
	*f = FlexID(val)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}

// Int64 converts FlexID back to int64.
func (f FlexID) Int64() int64 {
	return int64(f)
}
