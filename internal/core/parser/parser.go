// Package parser turns a cookie log into a lazy stream of valid records
//
// The header is checked once, eagerly, in New. After that records are pulled
// one line at a time: malformed lines are dropped, and because the log is
// sorted newest first the stream ends for good at the first valid record that
// falls past the cutoff. No line after that record is ever read.
package parser

import (
	"errors"
	"io"
	"iter"
	"slices"
	"strings"

	"cookiejar/internal/core/cookie"
	perr "cookiejar/internal/platform/errors"
	"cookiejar/internal/platform/logger"
	ptime "cookiejar/internal/platform/time"
)

// DefaultHeader is the column layout of a cookie log
var DefaultHeader = []string{"cookie", "timestamp"}

// LineReader is the line source the parser pulls from
// NextLine returns io.EOF at the end of input
type LineReader interface {
	NextLine() (string, error)
}

// StopReason records why the stream ended
type StopReason uint8

const (
	// StopNone means the stream is still open
	StopNone StopReason = iota
	// StopEOF means the input ran out
	StopEOF
	// StopCutoff means a record past the cutoff was reached
	StopCutoff
	// StopError means the source failed
	StopError
)

// String returns a log friendly label
func (r StopReason) String() string {
	switch r {
	case StopEOF:
		return "eof"
	case StopCutoff:
		return "cutoff"
	case StopError:
		return "error"
	default:
		return "open"
	}
}

// Stats counts what the parser has seen so far (header excluded)
type Stats struct {
	Lines   int
	Invalid int
	Yielded int
	Stopped StopReason
}

// Option configures a Parser
type Option func(*Parser)

// WithCutoffPolicy selects how the cutoff day itself is treated
func WithCutoffPolicy(pol CutoffPolicy) Option {
	return func(p *Parser) { p.policy = pol }
}

// Parser is a single pass, non restartable record stream
// Not safe for concurrent use
type Parser struct {
	src    LineReader
	header []string
	cutoff ptime.Day
	policy CutoffPolicy
	done   error // io.EOF or the source failure once the stream has ended
	stats  Stats
	log    *logger.Logger
}

// New reads exactly one line from src and checks it against header
// It fails with ErrorCodeSchema when src is empty or the header differs;
// source failures are returned as they are
func New(src LineReader, header []string, cutoff ptime.Day, opts ...Option) (*Parser, error) {
	p := &Parser{
		src:    src,
		header: slices.Clone(header),
		cutoff: cutoff,
		log:    logger.Named("parser"),
	}
	for _, o := range opts {
		o(p)
	}
	if err := p.validateHeader(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) validateHeader() error {
	line, err := p.src.NextLine()
	if errors.Is(err, io.EOF) {
		return perr.Schemaf("no header found in cookie source")
	}
	if err != nil {
		return err
	}
	got := strings.Split(line, ",")
	for i := range got {
		got[i] = strings.TrimSpace(got[i])
	}
	if !slices.Equal(got, p.header) {
		return perr.Schemaf("header %v does not match expected %v", got, p.header)
	}
	return nil
}

// Next returns the next valid record on the kept side of the cutoff
// It returns io.EOF once the stream has ended, and on every call after that
func (p *Parser) Next() (cookie.Valid, error) {
	if p.done != nil {
		return cookie.Valid{}, p.done
	}
	for {
		line, err := p.src.NextLine()
		if errors.Is(err, io.EOF) {
			p.finish(StopEOF, io.EOF)
			p.log.Debug().Msg("parser: no more data in the source")
			return cookie.Valid{}, io.EOF
		}
		if err != nil {
			p.finish(StopError, err)
			return cookie.Valid{}, err
		}
		p.stats.Lines++

		switch rec := cookie.Parse(line).(type) {
		case cookie.Invalid:
			p.stats.Invalid++
			p.log.Debug().Str("line", rec.Raw).Msg("parser: skipping malformed line")
		case cookie.Valid:
			if day := ptime.DayOf(rec.At); p.policy.stops(day, p.cutoff) {
				p.finish(StopCutoff, io.EOF)
				p.log.Debug().
					Stringer("cutoff", p.cutoff).
					Stringer("day", day).
					Stringer("policy", p.policy).
					Str("cookie", rec.ID).
					Msg("parser: early exit, reached the cutoff")
				return cookie.Valid{}, io.EOF
			}
			p.stats.Yielded++
			return rec, nil
		}
	}
}

// All exposes the same single pass as a range-over-func iterator
// Iteration ends quietly at io.EOF; a source failure is yielded once as the last pair
func (p *Parser) All() iter.Seq2[cookie.Valid, error] {
	return func(yield func(cookie.Valid, error) bool) {
		for {
			v, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(cookie.Valid{}, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Stats returns a snapshot of the parser counters
func (p *Parser) Stats() Stats { return p.stats }

func (p *Parser) finish(reason StopReason, err error) {
	p.stats.Stopped = reason
	p.done = err
}
