package cookie

import (
	"testing"
	"time"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		name string
		line string
		id   string
		at   time.Time
	}{
		{
			name: "positive offset shifted to utc",
			line: "AtY0laUfhglK3lC7,2018-12-09T14:19:00+01:00",
			id:   "AtY0laUfhglK3lC7",
			at:   time.Date(2018, 12, 9, 13, 19, 0, 0, time.UTC),
		},
		{
			name: "zero offset",
			line: "c1,2018-12-09T00:00:00+00:00",
			id:   "c1",
			at:   time.Date(2018, 12, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "negative offset crosses midnight",
			line: "c2,2018-12-09T22:30:00-05:00",
			id:   "c2",
			at:   time.Date(2018, 12, 10, 3, 30, 0, 0, time.UTC),
		},
		{
			name: "zulu and fraction",
			line: "c3,2018-12-09T06:19:00.250Z",
			id:   "c3",
			at:   time.Date(2018, 12, 9, 6, 19, 0, 250_000_000, time.UTC),
		},
		{
			name: "minute precision",
			line: "a,2018-12-09T14:19+01:00",
			id:   "a",
			at:   time.Date(2018, 12, 9, 13, 19, 0, 0, time.UTC),
		},
		{
			name: "lowercase t",
			line: "a,2018-12-09t14:19:00+01:00",
			id:   "a",
			at:   time.Date(2018, 12, 9, 13, 19, 0, 0, time.UTC),
		},
		{
			name: "lowercase z",
			line: "a,2018-12-09T14:19:00z",
			id:   "a",
			at:   time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC),
		},
		{
			name: "offset with seconds",
			line: "a,2018-12-09T14:19:00+01:00:00",
			id:   "a",
			at:   time.Date(2018, 12, 9, 13, 19, 0, 0, time.UTC),
		},
		{
			name: "offset seconds not zero",
			line: "a,2018-12-09T14:19:30+00:00:30",
			id:   "a",
			at:   time.Date(2018, 12, 9, 14, 19, 0, 0, time.UTC),
		},
		{
			name: "minute precision with offset seconds",
			line: "a,2018-12-09T14:19-01:00:00",
			id:   "a",
			at:   time.Date(2018, 12, 9, 15, 19, 0, 0, time.UTC),
		},
		{
			name: "identifier kept untrimmed",
			line: " x ,2018-12-09T06:19:00+00:00",
			id:   " x ",
			at:   time.Date(2018, 12, 9, 6, 19, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Parse(tc.line)
			v, ok := rec.(Valid)
			if !ok {
				t.Fatalf("Parse(%q) = %#v, want Valid", tc.line, rec)
			}
			if v.ID != tc.id {
				t.Fatalf("ID = %q, want %q", v.ID, tc.id)
			}
			if !v.At.Equal(tc.at) || v.At.Location() != time.UTC {
				t.Fatalf("At = %v, want %v in UTC", v.At, tc.at)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	lines := []string{
		"",
		",",
		"abcd,",
		"  ,    ",
		"\t,2018-12-09T14:19:00+01:00",
		",2018-12-09T14:19:00+01:00",
		"no-comma-at-all",
		"a,b,c",
		"a,2018-12-09T14:19:00+01:00,extra",
		"a,2018-12-09T14:19:00",        // no offset
		"a,2018-12-09",                 // date only
		"a, 2018-12-09T14:19:00+01:00", // leading space in timestamp
		"a,2018-12-09 14:19:00+01:00",  // space separator
		"a,2018-13-09T14:19:00+01:00",  // bad month
		"a,2018-12-09T14+01:00",        // hour only
		"a,2018-12-09T14:19:00+0100",   // offset without colon
		"a,yesterday",
	}
	for _, line := range lines {
		rec := Parse(line)
		inv, ok := rec.(Invalid)
		if !ok {
			t.Fatalf("Parse(%q) = %#v, want Invalid", line, rec)
		}
		if inv.Raw != line {
			t.Fatalf("Invalid.Raw = %q, want %q", inv.Raw, line)
		}
	}
}

func TestValid_LineParsesBack(t *testing.T) {
	in := Valid{ID: "AtY0laUfhglK3lC7", At: time.Date(2018, time.December, 9, 14, 19, 0, 0, time.FixedZone("x", 3600))}
	line := in.Line()
	if line != "AtY0laUfhglK3lC7,2018-12-09T13:19:00+00:00" {
		t.Fatalf("line %q", line)
	}
	out, ok := Parse(line).(Valid)
	if !ok || out.ID != in.ID || !out.At.Equal(in.At) {
		t.Fatalf("parse back: %#v", Parse(line))
	}
}
