package modkit

import "cookiejar/internal/modkit/module"

// Module is the common surface for service modules
type Module = module.Module

// Builder constructs a Module from shared deps
type Builder func(Deps) Module

// Build runs each builder against deps in order
func Build(deps Deps, builders ...Builder) []Module {
	out := make([]Module, 0, len(builders))
	for _, b := range builders {
		m := b(deps)
		deps.Logger().Debug().Str("module", m.Name()).Msg("modkit: module built")
		out = append(out, m)
	}
	return out
}
