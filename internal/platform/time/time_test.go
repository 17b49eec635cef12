package time

import (
	"testing"
	"time"
)

func TestDayOf_NormalizesToUTC(t *testing.T) {
	plusOne := time.FixedZone("+01:00", 3600)
	cases := []struct {
		name string
		in   time.Time
		want Day
	}{
		{"utc midday", time.Date(2018, 12, 9, 13, 19, 0, 0, time.UTC), Day{2018, time.December, 9}},
		{"offset same day", time.Date(2018, 12, 9, 14, 19, 0, 0, plusOne), Day{2018, time.December, 9}},
		{"offset previous utc day", time.Date(2018, 12, 9, 0, 30, 0, 0, plusOne), Day{2018, time.December, 8}},
		{"last instant", time.Date(2021, 12, 31, 23, 59, 59, 999, time.UTC), Day{2021, time.December, 31}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayOf(tc.in); got != tc.want {
				t.Fatalf("DayOf(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSameDayDifferentInstantsShareKey(t *testing.T) {
	a := DayOf(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC))
	b := DayOf(time.Date(2022, 1, 1, 23, 59, 0, 0, time.UTC))
	m := map[Day]int{a: 1}
	m[b]++
	if len(m) != 1 || m[a] != 2 {
		t.Fatalf("expected one shared key, got %v", m)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2018-12-09")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if d != (Day{2018, time.December, 9}) || d.String() != "2018-12-09" {
		t.Fatalf("ParseDay = %v", d)
	}
	for _, bad := range []string{"", "2018-13-01", "09-12-2018", "2018-12-09T00:00:00Z"} {
		if _, err := ParseDay(bad); err == nil {
			t.Fatalf("ParseDay(%q) expected error", bad)
		}
	}
}

func TestAddDaysAndCompare(t *testing.T) {
	d := NewDay(2022, time.January, 1)
	prev := d.AddDays(-1)
	if prev != (Day{2021, time.December, 31}) {
		t.Fatalf("AddDays(-1) = %v", prev)
	}
	if !prev.Before(d) || prev.After(d) || !d.After(prev) {
		t.Fatalf("ordering mismatch between %v and %v", prev, d)
	}
	if d.Compare(d) != 0 || d.Before(d) || d.After(d) {
		t.Fatalf("a day must compare equal to itself")
	}
	if got := NewDay(2020, time.February, 30); got != (Day{2020, time.March, 1}) {
		t.Fatalf("NewDay normalization = %v", got)
	}
	if NewDay(2021, time.March, 1).Compare(NewDay(2020, time.December, 31)) != 1 {
		t.Fatalf("year must dominate")
	}
}

func TestStartAndZero(t *testing.T) {
	d := NewDay(2018, time.December, 9)
	if got := d.Start(); !got.Equal(time.Date(2018, 12, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("Start = %v", got)
	}
	if !(Day{}).IsZero() || d.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
