// Package modkit provides module wiring and core deps
package modkit

import (
	"cookiejar/internal/platform/config"
	"cookiejar/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// the zero value is usable: a nil Log falls back to the root logger
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log or the process root logger
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
