// Package domain defines the types and ports for the most active cookie service
package domain

import (
	"cookiejar/internal/core/cookie"
	ptime "cookiejar/internal/platform/time"

	mapset "github.com/deckarep/golang-set/v2"
)

// RecordStream yields valid records until io.EOF or a source failure
type RecordStream interface {
	Next() (cookie.Valid, error)
}

// Store accumulates records and answers the per-day question
type Store interface {
	Add(v cookie.Valid)
	MostFrequent(day ptime.Day) mapset.Set[string]
	Len() int
}

// Summary describes one finished run, for logs and callers that want counts
type Summary struct {
	Day     ptime.Day
	Records int
	Winners int
}
