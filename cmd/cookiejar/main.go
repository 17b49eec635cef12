// Command cookiejar prints the most active cookie(s) of a day from a cookie log
//
//	cookiejar -f cookie_log.csv -d 2018-12-09
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"cookiejar/internal/core/version"
	"cookiejar/internal/modkit"
	"cookiejar/internal/modkit/module"
	"cookiejar/internal/platform/config"
	perr "cookiejar/internal/platform/errors"
	"cookiejar/internal/platform/logger"
	ptime "cookiejar/internal/platform/time"
	"cookiejar/internal/platform/validate"
	"cookiejar/internal/services/mostactive/domain"
	mostactivemod "cookiejar/internal/services/mostactive/module"

	"github.com/google/uuid"
)

const name = "cookiejar"

// options are the validated command line flags
type options struct {
	File string `flag:"f" validate:"required"`
	Date string `flag:"d" validate:"required,day"`
}

// newRunID is swapped in tests for a stable id
var newRunID = uuid.NewString

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.File, "f", "", "path to the cookie log (plain or gzip)")
	fs.StringVar(&o.Date, "d", "", "day to report, YYYY-MM-DD in UTC")
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

	l := logger.Get()
	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "%s: unexpected arguments %v\n", name, fs.Args())
		fs.Usage()
		return perr.ExitUsage
	}
	if err := validate.Struct(o); err != nil {
		var field string
		if e, ok := perr.As(err); ok {
			field = e.Field()
		}
		l.Error().Err(err).Str("flag", field).Msg("cookiejar: invalid arguments")
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fs.Usage()
		return perr.ExitCode(err)
	}
	day, err := ptime.ParseDay(o.Date)
	if err != nil {
		// validated above
		l.Error().Err(err).Msg("bad -d")
		return perr.ExitUsage
	}

	ctx = logger.WithRun(ctx, newRunID(), o.File)
	log := logger.C(ctx)

	cfg := config.New()
	if err := mostactivemod.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("cookiejar: invalid configuration")
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return perr.ExitCode(err)
	}

	mods := modkit.Build(modkit.Deps{Log: l, Cfg: cfg},
		func(d modkit.Deps) modkit.Module { return mostactivemod.New(d) },
	)
	runner := module.MustPortsOf[domain.RunnerPort](mods[0])

	winners, err := runner.RunFile(ctx, o.File, day)
	if err != nil {
		log.Error().Err(err).Str("code", perr.CodeOf(err).String()).Msg("cookiejar: run failed")
		_, _ = fmt.Fprintf(stderr, "%s: %v (run %s)\n", name, err, logger.RunID(ctx))
		return perr.ExitCode(err)
	}

	ids := winners.ToSlice()
	slices.Sort(ids)
	if len(ids) == 0 {
		log.Info().Stringer("day", day).Msg("no cookies found for day")
		return perr.ExitOK
	}

	w := bufio.NewWriter(stdout)
	for _, id := range ids {
		_, _ = fmt.Fprintln(w, id)
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("cookiejar: unable to write results")
		return perr.ExitError
	}
	return perr.ExitOK
}
