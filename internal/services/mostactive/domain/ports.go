package domain

import (
	"context"

	ptime "cookiejar/internal/platform/time"

	mapset "github.com/deckarep/golang-set/v2"
)

// RunnerPort answers "which cookies were most active on day"
type RunnerPort interface {
	// Run drains stream into store and queries day
	Run(ctx context.Context, stream RecordStream, store Store, day ptime.Day) (mapset.Set[string], error)
	// RunFile opens path, runs it with day as the cutoff and always releases the file
	RunFile(ctx context.Context, path string, day ptime.Day) (mapset.Set[string], error)
}
