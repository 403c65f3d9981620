package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// The frontend sends datetime-local values without a zone ("2024-05-01T17:30")
// as well as full RFC 3339 timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexibleTime decodes any of timeLayouts, or a JSON integer of Unix
// milliseconds. Zone-less values are read in local time.
type FlexibleTime struct {
	time.Time
}

func (t *FlexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("unrecognised time %s", data)
		}
		t.Time = time.UnixMilli(ms)
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised time %q", s)
}

// Ptr returns nil for a missing or zero time.
func (t *FlexibleTime) Ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}
