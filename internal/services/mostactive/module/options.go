package module

import (
	"cookiejar/internal/adapters/ingest/cookielog"
	"cookiejar/internal/core/parser"
	"cookiejar/internal/platform/config"
	"cookiejar/internal/platform/logger"
)

// Options holds configuration settings for the mostactive module
type Options struct {
	Header       []string
	CutoffPolicy parser.CutoffPolicy
	MaxLineBytes int
}

func cutoffPolicy(cfg config.Conf) (parser.CutoffPolicy, error) {
	return parser.ParseCutoffPolicy(cfg.Prefix("COOKIEJAR_").MayString("CUTOFF_POLICY", "keep"))
}

// Validate reports configuration that FromConfig would reject
// Call it before New to turn bad settings into an error instead of a panic
func Validate(cfg config.Conf) error {
	_, err := cutoffPolicy(cfg)
	return err
}

// FromConfig reads configuration settings from the config.Conf
// An unknown cutoff policy panics; Validate catches it first
func FromConfig(cfg config.Conf) Options {
	mf := cfg.Prefix("COOKIEJAR_")
	pol, err := cutoffPolicy(cfg)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", "COOKIEJAR_CUTOFF_POLICY").Msg("invalid cutoff policy")
	}
	return Options{
		Header:       mf.MayCSV("HEADER", parser.DefaultHeader),
		CutoffPolicy: pol,
		MaxLineBytes: mf.MayInt("MAX_LINE_BYTES", cookielog.DefaultMaxLineBytes),
	}
}
