// Package tally keeps per-day occurrence counts of cookie identifiers
package tally

import (
	"slices"

	"cookiejar/internal/core/cookie"
	ptime "cookiejar/internal/platform/time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Store counts records by UTC day and identifier
// It has no locks: fill it from one goroutine, then treat it as read-only
type Store struct {
	days  map[ptime.Day]map[string]int
	total int
}

// New returns an empty store
func New() *Store {
	return &Store{days: make(map[ptime.Day]map[string]int)}
}

// Add counts one occurrence of v.ID on the UTC day of v.At
// v must come from cookie.Parse; it is not checked again here
func (s *Store) Add(v cookie.Valid) {
	day := ptime.DayOf(v.At)
	ids, ok := s.days[day]
	if !ok {
		ids = make(map[string]int)
		s.days[day] = ids
	}
	ids[v.ID]++
	s.total++
}

// MostFrequent returns every identifier that reached the highest count on day
// The set is empty when nothing was recorded for day. Each call builds a new set
func (s *Store) MostFrequent(day ptime.Day) mapset.Set[string] {
	out := mapset.NewThreadUnsafeSet[string]()
	ids := s.days[day]
	if len(ids) == 0 {
		return out
	}

	best := 0
	for _, n := range ids {
		best = max(best, n)
	}
	for id, n := range ids {
		if n == best {
			out.Add(id)
		}
	}
	return out
}

// Count returns how often id was seen on day
func (s *Store) Count(day ptime.Day, id string) int {
	return s.days[day][id]
}

// Days lists the days with at least one record, oldest first
func (s *Store) Days() []ptime.Day {
	out := make([]ptime.Day, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	slices.SortFunc(out, ptime.Day.Compare)
	return out
}

// Len returns the number of records added
func (s *Store) Len() int { return s.total }
