package calendar

import (
	"fmt"
	"time"
)

// TimestampFormat is the canonical wire format for booking timestamps:
// ISO 8601 without a zone offset, e.g. "2025-03-01T10:00:00".
const TimestampFormat = "2006-01-02T15:04:05"

// timestampLayouts lists the accepted input layouts, tried in order.
// Zone-less input is interpreted in UTC so that values round-trip unchanged
// ("timezone-naive" semantics: a booking entered as 10:00 stays 10:00).
var timestampLayouts = []string{
	TimestampFormat,
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses s strictly as an ISO 8601 timestamp.
// A bare date ("2025-03-01") is accepted as midnight. Anything else fails
// with an error naming the offending value and the expected format, so the
// caller can surface a correctable message.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected ISO 8601 format (%s)", s, TimestampFormat)
}
