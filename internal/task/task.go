// Package task defines the narrow capability contracts a registered step,
// data type, or condition implementation may conform to. Instances produced
// by the component registry are checked against this small fixed set of
// interfaces instead of an open-ended type hierarchy.
package task

import (
	"context"

	"github.com/vk/anvilgo/internal/events"
)

// Project is the view of the orchestrator handed to step and data-type
// implementations. It exposes exactly what a running step needs: property
// access, placeholder expansion, reference lookup, and build logging.
type Project interface {
	// Name returns the project name, empty if unset.
	Name() string
	// BaseDir returns the project base directory.
	BaseDir() string
	// Property returns the expanded value of a property, reporting whether
	// the key exists.
	Property(name string) (string, bool)
	// SetProperty writes a project-origin property, subject to the store's
	// precedence rules (user-origin values win).
	SetProperty(name, value string)
	// ReplaceProperties expands ${name} placeholders in text against the
	// project's property store.
	ReplaceProperties(text string) (string, error)
	// Reference resolves an identifier from the project's reference table.
	Reference(id string) (any, bool)
	// Log reports a build message through the project's event bus.
	Log(message string, severity events.Severity)
}

// ProjectAware is implemented by components that want the owning
// orchestrator handed to them after instantiation.
type ProjectAware interface {
	Bind(p Project)
}

// Configurable is the generic configurable-value capability: attributes from
// the build file are applied one at a time, already property-expanded.
// Data types must implement it; steps may.
type Configurable interface {
	SetAttribute(name, value string) error
}

// Step is the step-execution capability. The orchestrator calls Bind and
// SetStepName before configuration, then Run exactly once.
type Step interface {
	ProjectAware
	// SetStepName records the logical (registry) name the step was
	// instantiated under, for diagnostics.
	SetStepName(name string)
	// Run performs the unit of work, raising on failure.
	Run(ctx context.Context) error
}

// Executable is the narrow adapter contract for foreign step
// implementations that do not conform to Step. The registry wraps such an
// instance in an adapter that proxies configuration onto Configurable (when
// implemented) and the single run invocation onto Execute.
type Executable interface {
	Execute() error
}

// Condition is the boolean-condition capability.
type Condition interface {
	Evaluate() (bool, error)
}
