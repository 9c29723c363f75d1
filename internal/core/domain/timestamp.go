package domain

import (
	"encoding/json"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// timestampLayouts are tried in order for values that are not pure dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// DateFields lists front-matter keys whose string values are decoded as Timestamps.
var DateFields = []string{"date", "updated", "lastmod", "modified", "published", "expires"}

// Timestamp is a date or date-time front-matter value that remembers which
// of the two it was, so a pure calendar date survives a cache round trip.
type Timestamp struct {
	Time     time.Time
	DateOnly bool
}

// NewDate returns a calendar-date Timestamp.
func NewDate(year int, month time.Month, day int) Timestamp {
	return Timestamp{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), DateOnly: true}
}

// LooksLikeDate reports whether s has the shape of a YYYY-MM-DD date.
func LooksLikeDate(s string) bool {
	return len(s) == len(dateLayout) && strings.Count(s, "-") == 2
}

// ParseTimestamp decodes s, choosing date or date-time by its shape.
func ParseTimestamp(s string) (Timestamp, error) {
	if LooksLikeDate(s) {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return Timestamp{}, err
		}
		return Timestamp{Time: t, DateOnly: true}, nil
	}

	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Timestamp{Time: t}, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return Timestamp{}, firstErr
}

// String returns the ISO-8601 form.
func (ts Timestamp) String() string {
	if ts.DateOnly {
		return ts.Time.Format(dateLayout)
	}
	return ts.Time.Format(time.RFC3339Nano)
}

// Equal reports whether both values denote the same instant and kind.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.DateOnly == other.DateOnly && ts.Time.Equal(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// TimestampFrom converts a decoded front-matter value into a Timestamp.
// Strings that do not parse and other types are reported as not ok.
func TimestampFrom(v any) (Timestamp, bool) {
	switch val := v.(type) {
	case Timestamp:
		return val, true
	case *Timestamp:
		if val == nil {
			return Timestamp{}, false
		}
		return *val, true
	case time.Time:
		return Timestamp{Time: val}, true
	case string:
		ts, err := ParseTimestamp(val)
		if err != nil {
			return Timestamp{}, false
		}
		return ts, true
	default:
		return Timestamp{}, false
	}
}
