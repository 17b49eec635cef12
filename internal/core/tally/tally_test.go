package tally

import (
	"slices"
	"testing"
	"time"

	"cookiejar/internal/core/cookie"
	ptime "cookiejar/internal/platform/time"

	mapset "github.com/deckarep/golang-set/v2"
)

func rec(id, ts string) cookie.Valid {
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return cookie.Valid{ID: id, At: at.UTC()}
}

func sorted(s mapset.Set[string]) []string {
	out := s.ToSlice()
	slices.Sort(out)
	return out
}

var dec09 = ptime.NewDay(2018, time.December, 9)

func TestMostFrequent_SingleWinner(t *testing.T) {
	s := New()
	s.Add(rec("a", "2018-12-09T14:19:00Z"))
	s.Add(rec("b", "2018-12-09T10:13:00Z"))
	s.Add(rec("a", "2018-12-09T07:25:00Z"))

	got := s.MostFrequent(dec09)
	if got.Cardinality() != 1 || !got.Contains("a") {
		t.Fatalf("got %v", sorted(got))
	}
}

func TestMostFrequent_TiesReturnAll(t *testing.T) {
	s := New()
	for _, id := range []string{"A", "B", "A", "B", "C"} {
		s.Add(rec(id, "2018-12-09T12:00:00Z"))
	}
	if got := sorted(s.MostFrequent(dec09)); !slices.Equal(got, []string{"A", "B"}) {
		t.Fatalf("got %v", got)
	}
}

func TestMostFrequent_EmptyDay(t *testing.T) {
	s := New()
	if got := s.MostFrequent(dec09); got.Cardinality() != 0 {
		t.Fatalf("empty store: %v", sorted(got))
	}
	s.Add(rec("a", "2018-12-08T12:00:00Z"))
	if got := s.MostFrequent(dec09); got.Cardinality() != 0 {
		t.Fatalf("other day only: %v", sorted(got))
	}
}

func TestMostFrequent_Repeatable(t *testing.T) {
	s := New()
	s.Add(rec("a", "2018-12-09T12:00:00Z"))
	s.Add(rec("b", "2018-12-09T13:00:00Z"))

	first := s.MostFrequent(dec09)
	first.Add("mutated")
	second := s.MostFrequent(dec09)
	if !slices.Equal(sorted(second), []string{"a", "b"}) {
		t.Fatalf("second query changed: %v", sorted(second))
	}
	if s.Count(dec09, "a") != 1 || s.Len() != 2 {
		t.Fatalf("query mutated counts")
	}
}

func TestAdd_DaysAreIndependent(t *testing.T) {
	s := New()
	s.Add(rec("x", "2018-12-09T23:59:59Z"))
	s.Add(rec("x", "2018-12-10T00:00:00Z"))
	s.Add(rec("y", "2018-12-10T05:00:00Z"))
	s.Add(rec("y", "2018-12-10T06:00:00Z"))

	if got := sorted(s.MostFrequent(dec09)); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("dec09: %v", got)
	}
	if got := sorted(s.MostFrequent(dec09.AddDays(1))); !slices.Equal(got, []string{"y"}) {
		t.Fatalf("dec10: %v", got)
	}
}

func TestAdd_BucketsByUTCDay(t *testing.T) {
	s := New()
	// 00:30 local at +01:00 is still the previous day in UTC
	s.Add(rec("late", "2018-12-10T00:30:00+01:00"))
	if s.Count(dec09, "late") != 1 {
		t.Fatalf("expected record on %s, days=%v", dec09, s.Days())
	}
}

func TestCountDaysLen(t *testing.T) {
	s := New()
	s.Add(rec("a", "2018-12-09T12:00:00Z"))
	s.Add(rec("a", "2018-12-07T12:00:00Z"))
	s.Add(rec("a", "2018-12-09T13:00:00Z"))
	s.Add(rec("b", "2018-12-08T12:00:00Z"))

	if s.Count(dec09, "a") != 2 || s.Count(dec09, "b") != 0 || s.Count(ptime.Day{}, "a") != 0 {
		t.Fatalf("counts wrong")
	}
	want := []ptime.Day{dec09.AddDays(-2), dec09.AddDays(-1), dec09}
	if got := s.Days(); !slices.Equal(got, want) {
		t.Fatalf("days %v want %v", got, want)
	}
	if s.Len() != 4 {
		t.Fatalf("len %d", s.Len())
	}
}
