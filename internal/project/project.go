// Package project implements the build orchestrator: the aggregate owning
// the property store, reference table, component registry, target graph, and
// event bus of one build, and the execution loop tying them together.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/anvilgo/internal/events"
	"github.com/vk/anvilgo/internal/graph"
	"github.com/vk/anvilgo/internal/properties"
	"github.com/vk/anvilgo/internal/refstore"
	"github.com/vk/anvilgo/internal/registry"
)

// Version is the engine version seeded into every project's properties.
const Version = "0.3.0"

// Project owns one instance of every core component. All mutable state is
// exclusive to one Project; independent builds need independent instances.
type Project struct {
	logger *slog.Logger
	runID  string

	name            string
	description     string
	baseDir         string
	defaultTarget   string
	requiredVersion string

	props   *properties.Store
	refs    *refstore.Store
	reg     *registry.Registry
	targets *graph.Graph
	bus     *events.Bus

	// graphCheck controls the full-graph validation pass performed after
	// every root-rooted sort. On by default for diagnostic parity; large
	// graphs may switch it off.
	graphCheck bool
}

// New constructs a project resolving component descriptors through loader.
// The process environment and built-in facts are seeded into the property
// store once, here; no ambient state is read afterwards.
func New(logger *slog.Logger, loader registry.Loader) *Project {
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	p := &Project{
		logger:     logger,
		runID:      runID,
		props:      properties.New(logger),
		refs:       refstore.New(logger),
		reg:        registry.New(logger, loader),
		targets:    graph.New(logger),
		bus:        events.NewBus(),
		graphCheck: true,
	}
	p.reg.BindProject(p)
	p.seedSystemProperties()
	return p
}

func (p *Project) seedSystemProperties() {
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			p.props.Seed("env."+name, value)
		}
	}
	p.props.Seed("anvil.version", Version)
	p.props.Seed("os.name", runtime.GOOS)
	p.props.Seed("os.arch", runtime.GOARCH)
}

// RunID returns the unique identifier of this project instance.
func (p *Project) RunID() string { return p.runID }

// Logger returns the project's logger.
func (p *Project) Logger() *slog.Logger { return p.logger }

// Name returns the project name, empty if unset.
func (p *Project) Name() string { return p.name }

// SetName sets the project name and seeds the anvil.project.name property.
func (p *Project) SetName(name string) {
	p.name = name
	p.props.Seed("anvil.project.name", name)
}

// Description returns the project description.
func (p *Project) Description() string { return p.description }

// SetDescription sets the project description.
func (p *Project) SetDescription(d string) { p.description = d }

// DefaultTarget returns the name of the target run when none is requested.
func (p *Project) DefaultTarget() string { return p.defaultTarget }

// SetDefaultTarget sets the default target name.
func (p *Project) SetDefaultTarget(name string) { p.defaultTarget = name }

// BaseDir returns the project base directory.
func (p *Project) BaseDir() string { return p.baseDir }

// SetBaseDir resolves dir, validates that it exists and is a directory, and
// seeds the basedir property.
func (p *Project) SetBaseDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving basedir %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("basedir %q does not exist: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("basedir %q is not a directory", abs)
	}
	p.baseDir = abs
	p.props.Seed("basedir", abs)
	p.logger.Debug("Project base directory set.", "basedir", abs)
	return nil
}

// RequiredVersion returns the normalized minimum-required-version string.
func (p *Project) RequiredVersion() string { return p.requiredVersion }

// SetRequiredVersion stores the free-form version requirement, lower-cased,
// with a leading product-name token stripped.
func (p *Project) SetRequiredVersion(v string) {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.TrimSpace(strings.TrimPrefix(v, "anvil"))
	p.requiredVersion = v
}

// SetGraphCheck switches the full-graph validation pass performed after
// every execution-order computation.
func (p *Project) SetGraphCheck(enabled bool) { p.graphCheck = enabled }

// Registry returns the project's component registry.
func (p *Project) Registry() *registry.Registry { return p.reg }

// AddListener registers a build listener.
func (p *Project) AddListener(l events.Listener) { p.bus.AddListener(l) }

// RemoveListener removes a build listener; unknown listeners are ignored.
func (p *Project) RemoveListener(l events.Listener) { p.bus.RemoveListener(l) }

// AddTarget registers a target, rejecting duplicates.
func (p *Project) AddTarget(t *graph.Target) error {
	if err := p.targets.Add(t); err != nil {
		return err
	}
	t.Bind(p)
	return nil
}

// AddOrReplaceTarget registers a target, silently overwriting an existing
// one of the same name.
func (p *Project) AddOrReplaceTarget(t *graph.Target) {
	p.targets.AddOrReplace(t)
	t.Bind(p)
}

// Target returns a registered target by name.
func (p *Project) Target(name string) (*graph.Target, bool) {
	return p.targets.Get(name)
}

// TargetNames returns all registered target names in registration order.
func (p *Project) TargetNames() []string { return p.targets.Names() }

// Log reports a build message through the event bus.
func (p *Project) Log(message string, severity events.Severity) {
	p.bus.FireMessageLogged(events.Event{
		Project:  p.name,
		Message:  message,
		Severity: severity,
	})
}
