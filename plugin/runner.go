package plugin

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/rewrite"
	"github.com/hashicorp/go-multierror"
)

// Runner executes the units of registered plugins for the host's phases.
// Registration must complete before any phase runs; phases may then run
// concurrently since units never modify their input.
type Runner struct {
	cfg     *config
	mu      sync.RWMutex
	plugins []*Plugin
	byName  map[string]*Plugin
}

// NewRunner returns a Runner configured with the given options.
func NewRunner(opts ...Option) *Runner {
	return &Runner{
		cfg:    newConfig(opts...),
		byName: map[string]*Plugin{},
	}
}

// HostVersion returns the configured host version, or nil.
func (r *Runner) HostVersion() *semver.Version {
	return r.cfg.hostVersion
}

// Register adds plugins in order. A plugin that fails Check or whose name is
// already taken is skipped; the others are still registered and every
// problem is returned as one aggregated error.
func (r *Runner) Register(plugins ...*Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result error
	for _, p := range plugins {
		if p == nil {
			continue
		}
		if err := p.Check(r.cfg.hostVersion); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if _, ok := r.byName[p.Name]; ok {
			result = multierror.Append(result, errz.Newf(errz.ErrConfig,
				"plugin %s is already registered", p.Name).
				WithLocation(errz.Location{Plugin: p.Name}))
			continue
		}
		r.byName[p.Name] = p
		r.plugins = append(r.plugins, p)
		r.cfg.logger.Debug().
			Str("plugin", p.Name).
			Int("analysis_units", len(p.Analysis)).
			Int("ir_units", len(p.IR)).
			Msg("plugin registered")
	}
	return result
}

// Plugins returns the registered plugins in registration order.
func (r *Runner) Plugins() []*Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// Plugin returns the registered plugin with the given name.
func (r *Runner) Plugin(name string) (*Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// Outcome is the result of running one phase.
type Outcome[R any] struct {
	// Root is the root after the last unit that ran.
	Root R
	// Messages holds every diagnostic reported during the phase.
	Messages []host.Message
	// Units is the number of units that ran.
	Units int
}

// RunAnalysis threads root through the analysis units of every plugin.
// The returned error aggregates error-severity diagnostics and cancellation.
func (r *Runner) RunAnalysis(ctx context.Context, root *ast.Module) (Outcome[*ast.Module], error) {
	return runPhase(ctx, r, rewrite.SyntaxTree, root, func(p *Plugin) []rewrite.Generation[*ast.Module] {
		return p.Analysis
	})
}

// RunIR threads root through the IR units of every plugin.
func (r *Runner) RunIR(ctx context.Context, root *ir.ModuleFragment) (Outcome[*ir.ModuleFragment], error) {
	return runPhase(ctx, r, rewrite.IR, root, func(p *Plugin) []rewrite.Generation[*ir.ModuleFragment] {
		return p.IR
	})
}

func (r *Runner) compilerContext() *host.CompilerContext {
	compiler := host.NewCompilerContext(r.cfg.hostVersion)
	compiler.Configuration = maps.Clone(r.cfg.configuration)
	compiler.Logger = r.cfg.logger
	return compiler
}

func runPhase[R any](
	ctx context.Context,
	r *Runner,
	universe rewrite.Universe,
	root R,
	units func(*Plugin) []rewrite.Generation[R],
) (Outcome[R], error) {
	compiler := r.compilerContext()
	logger := r.cfg.logger.With().Stringer("universe", universe).Logger()
	out := Outcome[R]{Root: root}

	var result error
	finish := func() (Outcome[R], error) {
		out.Messages = compiler.Messages.Messages()
		return out, result
	}

	start := time.Now()
	for _, p := range r.Plugins() {
		pc := p.context()
		for _, u := range units(p) {
			loc := errz.Location{Plugin: p.Name, Unit: u.Name()}
			if err := ctx.Err(); err != nil {
				result = multierror.Append(result, errz.New(errz.ErrPhase, "phase cancelled").
					WithLocation(loc).WithCause(err))
				return finish()
			}
			seen := compiler.Messages.Len()
			unitStart := time.Now()
			logger.Debug().Str("plugin", p.Name).Str("unit", u.Name()).Msg("unit started")

			out.Root = u.Generate(pc, compiler, out.Root)
			out.Units++

			failed := false
			for _, m := range compiler.Messages.Since(seen) {
				if m.Severity != host.Error {
					continue
				}
				failed = true
				result = multierror.Append(result, errz.New(errz.ErrPhase, m.Text).WithLocation(loc))
			}
			logger.Debug().
				Str("plugin", p.Name).
				Str("unit", u.Name()).
				Str("unit_id", u.ID().String()).
				Bool("failed", failed).
				Dur("elapsed", time.Since(unitStart)).
				Msg("unit finished")
			if failed && r.cfg.failFast {
				return finish()
			}
		}
	}
	logger.Debug().Int("units", out.Units).Dur("elapsed", time.Since(start)).Msg("phase complete")
	return finish()
}
