// Package service implements the most active cookie pipeline
package service

import (
	"context"
	"errors"
	"io"

	"cookiejar/internal/adapters/ingest/cookielog"
	"cookiejar/internal/core/parser"
	"cookiejar/internal/core/tally"
	"cookiejar/internal/platform/logger"
	ptime "cookiejar/internal/platform/time"
	dom "cookiejar/internal/services/mostactive/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

// Config for the runner
type Config struct {
	Header       []string
	Policy       parser.CutoffPolicy
	MaxLineBytes int
}

// lineSource is what RunFile needs from an opened input
type lineSource interface {
	parser.LineReader
	Stats() (lines int, textBytes int64)
	Close() error
}

// openSource is the file acquisition seam, swapped in tests
var openSource = func(path string, maxLine int) (lineSource, error) {
	return cookielog.Open(path, cookielog.WithMaxLineBytes(maxLine))
}

// Service implements domain.RunnerPort
type Service struct {
	Cfg Config
}

// New constructs a runner, filling zero config values with defaults
func New(cfg Config) *Service {
	if len(cfg.Header) == 0 {
		cfg.Header = parser.DefaultHeader
	}
	if cfg.MaxLineBytes <= 0 {
		cfg.MaxLineBytes = cookielog.DefaultMaxLineBytes
	}
	return &Service{Cfg: cfg}
}

// Run implements domain.RunnerPort
// Any stream failure aborts the run; whatever was counted so far is discarded
func (s *Service) Run(ctx context.Context, stream dom.RecordStream, store dom.Store, day ptime.Day) (mapset.Set[string], error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		store.Add(v)
	}

	winners := store.MostFrequent(day)
	sum := dom.Summary{Day: day, Records: store.Len(), Winners: winners.Cardinality()}
	logger.C(ctx).Info().
		Stringer("day", sum.Day).
		Int("records", sum.Records).
		Int("winners", sum.Winners).
		Msg("mostactive: run complete")
	return winners, nil
}

// RunFile implements domain.RunnerPort
// The source is closed on every path; a close failure is reported only when the run itself succeeded
func (s *Service) RunFile(ctx context.Context, path string, day ptime.Day) (winners mapset.Set[string], err error) {
	src, err := openSource(path, s.Cfg.MaxLineBytes)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			if err == nil {
				winners, err = nil, cerr
				return
			}
			logger.C(ctx).Warn().Err(cerr).Msg("mostactive: close after failed run")
		}
	}()

	p, err := parser.New(src, s.Cfg.Header, day, parser.WithCutoffPolicy(s.Cfg.Policy))
	if err != nil {
		return nil, err
	}
	winners, err = s.Run(ctx, p, tally.New(), day)
	if err != nil {
		return nil, err
	}

	st := p.Stats()
	_, read := src.Stats()
	logger.C(ctx).Debug().
		Int64("text_bytes", read).
		Int("lines", st.Lines).
		Int("invalid", st.Invalid).
		Int("yielded", st.Yielded).
		Stringer("stopped", st.Stopped).
		Msg("mostactive: parser stats")
	return winners, nil
}
