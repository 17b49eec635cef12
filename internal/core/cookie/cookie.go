// Package cookie holds the parsed form of one cookie log line
package cookie

import (
	"strings"
	"time"
)

// Record is either Valid or Invalid
type Record interface {
	isRecord()
}

// Valid is a well formed log entry
// ID is non blank and kept exactly as written; At is in UTC
type Valid struct {
	ID string
	At time.Time
}

// Invalid carries a line that could not be parsed, for diagnostics only
type Invalid struct {
	Raw string
}

func (Valid) isRecord()   {}
func (Invalid) isRecord() {}

// TimestampLayout is the canonical timestamp format: date, time and a mandatory offset
// Fractional seconds and a Z offset are accepted as well
const TimestampLayout = time.RFC3339

// timestampLayouts are tried in order; seconds and offset seconds are both optional
var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05Z07:00:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z07:00:00",
}

// parseTimestamp reads an offset date-time; the T and Z letters may be lowercase
func parseTimestamp(ts string) (time.Time, error) {
	ts = strings.ToUpper(ts)
	var err error
	for _, layout := range timestampLayouts {
		var at time.Time
		if at, err = time.Parse(layout, ts); err == nil {
			return at, nil
		}
	}
	return time.Time{}, err
}

// Parse turns a raw log line into a Record
//
//  1. the line must split on ',' into exactly two fields
//  2. the first field (the cookie) must not be blank
//  3. the second field must be an offset date-time; it is normalized to UTC
func Parse(line string) Record {
	id, ts, ok := strings.Cut(line, ",")
	if !ok || strings.Contains(ts, ",") {
		return Invalid{Raw: line}
	}
	if strings.TrimSpace(id) == "" {
		return Invalid{Raw: line}
	}
	at, err := parseTimestamp(ts)
	if err != nil {
		return Invalid{Raw: line}
	}
	return Valid{ID: id, At: at.UTC()}
}

// OutputLayout renders timestamps with a numeric offset, +00:00 for UTC
const OutputLayout = "2006-01-02T15:04:05-07:00"

// Line renders v as a log line; Parse(v.Line()) gives v back at second precision
func (v Valid) Line() string {
	return v.ID + "," + v.At.UTC().Format(OutputLayout)
}
