package parser

import (
	"strings"

	perr "cookiejar/internal/platform/errors"
	ptime "cookiejar/internal/platform/time"
)

// CutoffPolicy decides what happens to records that fall on the cutoff day itself
type CutoffPolicy uint8

const (
	// KeepCutoffDay yields the cutoff day and stops at the first record before it
	KeepCutoffDay CutoffPolicy = iota
	// DropCutoffDay yields only days after the cutoff and stops at the first record on or before it
	DropCutoffDay
)

// String returns the config spelling of the policy
func (p CutoffPolicy) String() string {
	if p == DropCutoffDay {
		return "drop"
	}
	return "keep"
}

// ParseCutoffPolicy reads "keep" or "drop" (case insensitive)
func ParseCutoffPolicy(s string) (CutoffPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return KeepCutoffDay, nil
	case "drop":
		return DropCutoffDay, nil
	default:
		return KeepCutoffDay, perr.WithField(perr.InvalidArgf("unknown cutoff policy %q", s), "cutoff_policy")
	}
}

// stops reports whether a record on day ends the stream for the given cutoff
// Input is sorted newest first, so nothing after such a record can qualify
func (p CutoffPolicy) stops(day, cutoff ptime.Day) bool {
	if p == DropCutoffDay {
		return !day.After(cutoff)
	}
	return day.Before(cutoff)
}
