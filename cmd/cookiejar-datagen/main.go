// Command cookiejar-datagen writes a synthetic cookie log sorted newest first
//
//	cookiejar-datagen -o cookie_log.csv -n 100000 -names 500 -days 30 -start 2018-12-09
package main

import (
	"context"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"

	"cookiejar/internal/adapters/ingest/cookielog"
	"cookiejar/internal/core/cookie"
	"cookiejar/internal/core/parser"
	"cookiejar/internal/core/version"
	perr "cookiejar/internal/platform/errors"
	"cookiejar/internal/platform/logger"
	ptime "cookiejar/internal/platform/time"
	"cookiejar/internal/platform/validate"

	"github.com/google/uuid"
)

const name = "cookiejar-datagen"

type options struct {
	Out     string `flag:"o" validate:"required"`
	Records int    `flag:"n" validate:"min=0,max=10000000"`
	Names   int    `flag:"names" validate:"min=1"`
	Days    int    `flag:"days" validate:"min=1,max=3660"`
	Start   string `flag:"start" validate:"required,day"`
	Seed    uint64 `flag:"seed"`
	Gzip    bool   `flag:"gzip"`
}

// plan is a validated generation request
type plan struct {
	records int
	names   int
	days    int
	newest  ptime.Day
	seed    uint64
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.Out, "o", "", "output path, - for stdout")
	fs.IntVar(&o.Records, "n", 1000, "number of records")
	fs.IntVar(&o.Names, "names", 50, "number of distinct cookies")
	fs.IntVar(&o.Days, "days", 7, "number of days covered, counting back from -start")
	fs.StringVar(&o.Start, "start", time.Now().UTC().Format(ptime.DayLayout), "newest day, YYYY-MM-DD")
	fs.Uint64Var(&o.Seed, "seed", 1, "random seed; the same seed gives the same file")
	fs.BoolVar(&o.Gzip, "gzip", false, "gzip the output")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return perr.ExitOK
		}
		return perr.ExitUsage
	}
	if *showVersion {
		_, _ = fmt.Fprintln(stdout, version.Info(name))
		return perr.ExitOK
	}

	l := logger.Named("datagen")
	if err := validate.Struct(o); err != nil {
		l.Error().Err(err).Msg("datagen: invalid arguments")
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fs.Usage()
		return perr.ExitCode(err)
	}
	newest, _ := ptime.ParseDay(o.Start)
	p := plan{records: o.Records, names: o.Names, days: o.Days, newest: newest, seed: o.Seed}

	n, err := writeTo(ctx, o.Out, o.Gzip, p, stdout)
	if err != nil {
		l.Error().Err(err).Str("out", o.Out).Msg("datagen: failed")
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return perr.ExitCode(err)
	}
	l.Info().
		Str("out", o.Out).
		Int("records", n).
		Int("names", p.names).
		Int("days", p.days).
		Stringer("newest", p.newest).
		Msg("datagen: done")
	return perr.ExitOK
}

func writeTo(ctx context.Context, out string, compress bool, p plan, stdout io.Writer) (n int, err error) {
	if out == "-" {
		return generate(ctx, stdout, compress, p)
	}
	f, err := os.Create(out)
	if err != nil {
		return 0, perr.WrapOp(err, perr.ErrorCodeIO, cookielog.OpOpen, "unable to create "+out)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = perr.WrapOp(cerr, perr.ErrorCodeIO, cookielog.OpClose, "unable to close "+out)
		}
		if err != nil {
			// no partial output on failure
			_ = os.Remove(out)
		}
	}()
	return generate(ctx, f, compress, p)
}

// generate writes p.records records drawn from p.names cookies over p.days days
func generate(ctx context.Context, w io.Writer, compress bool, p plan) (int, error) {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], p.seed)
	src := rand.NewChaCha8(seed)
	rng := rand.New(src)

	names, err := cookieNames(src, p.names)
	if err != nil {
		return 0, err
	}

	recs := make([]cookie.Valid, 0, p.records)
	oldest := p.newest.AddDays(-(p.days - 1)).Start()
	span := int64(p.days) * int64(24*time.Hour/time.Second)
	for range p.records {
		recs = append(recs, cookie.Valid{
			ID: names[rng.IntN(len(names))],
			At: oldest.Add(time.Duration(rng.Int64N(span)) * time.Second),
		})
	}
	slices.SortStableFunc(recs, func(a, b cookie.Valid) int { return b.At.Compare(a.At) })

	lw, err := cookielog.NewWriter(w, parser.DefaultHeader, compress)
	if err != nil {
		return 0, err
	}
	for i, v := range recs {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return lw.Records(), err
			}
		}
		if err := lw.Write(v); err != nil {
			return lw.Records(), err
		}
	}
	return lw.Records(), lw.Close()
}

// cookieNames derives n distinct 16 character identifiers from random UUIDs
func cookieNames(r io.Reader, n int) ([]string, error) {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		u, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "unable to generate cookie name")
		}
		id := strings.ReplaceAll(u.String(), "-", "")[:16]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
