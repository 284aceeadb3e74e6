package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vk/anvilgo/internal/task"
	"go.uber.org/multierr"
)

// ConfigurationError reports a definition whose implementation failed to
// load or an instance that failed a capability check.
type ConfigurationError struct {
	Name   string
	Detail string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error for %q: %s", e.Name, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Definition records one resolved (namespace, name) registration.
type Definition struct {
	// Name is the logical name as first registered.
	Name string
	// Descriptor is the opaque implementation identifier handed to the
	// loader.
	Descriptor string
	// Hint is the optional load-path hint.
	Hint string

	factory Factory
}

// Registry holds the two independent component namespaces of one
// orchestrator: step-kind definitions and data-type definitions. Lookup is
// case-insensitive and registration is first-wins in each namespace.
type Registry struct {
	logger  *slog.Logger
	loader  Loader
	project task.Project

	steps     map[string]*Definition
	dataTypes map[string]*Definition
}

// New returns an empty registry resolving descriptors through loader.
func New(logger *slog.Logger, loader Loader) *Registry {
	return &Registry{
		logger:    logger,
		loader:    loader,
		steps:     make(map[string]*Definition),
		dataTypes: make(map[string]*Definition),
	}
}

// BindProject records the orchestrator handed to project-aware instances.
func (r *Registry) BindProject(p task.Project) {
	r.project = p
}

// DefineStep registers a step kind. The implementation is resolved eagerly:
// a descriptor that fails to load is a hard configuration error and nothing
// is recorded. A later registration for an already-defined name is a no-op.
func (r *Registry) DefineStep(name, descriptor, hint string) error {
	return r.define(r.steps, "step kind", name, descriptor, hint)
}

// DefineDataType registers a data type with the same contract as DefineStep.
func (r *Registry) DefineDataType(name, descriptor, hint string) error {
	return r.define(r.dataTypes, "data type", name, descriptor, hint)
}

func (r *Registry) define(ns map[string]*Definition, kind, name, descriptor, hint string) error {
	key := strings.ToLower(name)
	if _, ok := ns[key]; ok {
		r.logger.Debug("Definition already exists, keeping first registration.",
			"kind", kind, "name", name)
		return nil
	}
	factory, err := r.loader.Resolve(descriptor, hint)
	if err != nil {
		return &ConfigurationError{Name: name, Detail: "failed to load " + kind + " implementation", Err: err}
	}
	ns[key] = &Definition{Name: name, Descriptor: descriptor, Hint: hint, factory: factory}
	r.logger.Debug("Definition registered.", "kind", kind, "name", name, "descriptor", descriptor)
	return nil
}

// LookupStep returns the step-kind definition for name, case-insensitively.
func (r *Registry) LookupStep(name string) (*Definition, bool) {
	d, ok := r.steps[strings.ToLower(name)]
	return d, ok
}

// LookupDataType returns the data-type definition for name.
func (r *Registry) LookupDataType(name string) (*Definition, bool) {
	d, ok := r.dataTypes[strings.ToLower(name)]
	return d, ok
}

// Seed populates both namespaces from the built-in name to descriptor
// listings, collecting every definition failure rather than stopping at the
// first one.
func (r *Registry) Seed(stepKinds, dataTypes map[string]string) error {
	var errs error
	for name, descriptor := range stepKinds {
		errs = multierr.Append(errs, r.DefineStep(name, descriptor, ""))
	}
	for name, descriptor := range dataTypes {
		errs = multierr.Append(errs, r.DefineDataType(name, descriptor, ""))
	}
	return errs
}
