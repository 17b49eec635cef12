// Package module implements the mostactive service module
package module

import (
	"cookiejar/internal/modkit"
	"cookiejar/internal/services/mostactive/domain"
	"cookiejar/internal/services/mostactive/service"
)

// Ports exposed by the mostactive module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the mostactive service module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs a new mostactive module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(service.Config{
		Header:       opts.Header,
		Policy:       opts.CutoffPolicy,
		MaxLineBytes: opts.MaxLineBytes,
	})

	deps.Logger().Debug().
		Strs("header", opts.Header).
		Stringer("cutoff_policy", opts.CutoffPolicy).
		Int("max_line_bytes", opts.MaxLineBytes).
		Msg("mostactive: module configured")

	return &Module{deps: deps, opts: opts, ports: Ports{Runner: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "mostactive" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the resolved configuration
func (m *Module) Options() Options { return m.opts }
