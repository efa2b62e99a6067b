// Package plugin runs compiler plugins for a host. A Plugin bundles the
// generation units it contributes to the analysis and IR phases; a Runner
// checks plugins against the host version and threads each phase's root
// through their units in registration order.
package plugin

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/rewrite"
	"github.com/hashicorp/go-multierror"
)

// Plugin describes one compiler plugin.
type Plugin struct {
	// Name identifies the plugin in logs and diagnostics. Must be unique
	// within a Runner.
	Name string

	// Version of the plugin itself. Optional.
	Version *semver.Version

	// Requires is a semver constraint on the host version, e.g. ">= 1.8, < 2".
	// Empty means any host version.
	Requires string

	// Analysis units run over the syntax tree, in order.
	Analysis []rewrite.Generation[*ast.Module]

	// IR units run over the module fragment, in order.
	IR []rewrite.Generation[*ir.ModuleFragment]

	// Data is shared by all units of the plugin through the plugin context.
	Data map[string]any
}

func (p *Plugin) context() *host.PluginContext {
	data := p.Data
	if data == nil {
		data = map[string]any{}
	}
	return &host.PluginContext{Name: p.Name, Version: p.Version, Data: data}
}

// Check validates the descriptor and, when hostVersion is set, the Requires
// constraint against it. All problems are returned together.
func (p *Plugin) Check(hostVersion *semver.Version) error {
	var result error
	loc := errz.Location{Plugin: p.Name}
	if p.Name == "" {
		result = multierror.Append(result, errz.New(errz.ErrConfig, "plugin has no name"))
	}
	for _, u := range p.Analysis {
		if u.Universe() != rewrite.SyntaxTree {
			result = multierror.Append(result, errz.Newf(errz.ErrConfig,
				"analysis unit %s runs over the %s universe", u.Name(), u.Universe()).
				WithLocation(errz.Location{Plugin: p.Name, Unit: u.Name()}))
		}
	}
	for _, u := range p.IR {
		if u.Universe() != rewrite.IR {
			result = multierror.Append(result, errz.Newf(errz.ErrConfig,
				"IR unit %s runs over the %s universe", u.Name(), u.Universe()).
				WithLocation(errz.Location{Plugin: p.Name, Unit: u.Name()}))
		}
	}
	if p.Requires == "" {
		return result
	}
	constraint, err := semver.NewConstraint(p.Requires)
	if err != nil {
		return multierror.Append(result, errz.Newf(errz.ErrVersion,
			"invalid host requirement %q", p.Requires).WithLocation(loc).WithCause(err))
	}
	if hostVersion == nil {
		return result
	}
	if ok, errs := constraint.Validate(hostVersion); !ok {
		e := errz.Newf(errz.ErrVersion, "host version %s does not satisfy %s", hostVersion, p.Requires).
			WithLocation(loc)
		if len(errs) > 0 {
			e = e.WithCause(errs[0])
		}
		result = multierror.Append(result, e)
	}
	return result
}

func (p *Plugin) String() string {
	if p.Version == nil {
		return p.Name
	}
	return fmt.Sprintf("%s@%s", p.Name, p.Version)
}
