package registry

import (
	"context"
	"fmt"

	"github.com/vk/anvilgo/internal/task"
)

// stepAdapter wraps a foreign instance that does not implement the step
// capability. Configuration calls are proxied onto the instance's
// Configurable implementation and the single run invocation onto its
// Execute method. The foreign object must conform to these two narrow
// contracts; there is no reflective method dispatch.
type stepAdapter struct {
	kind     string
	name     string
	instance any
	project  task.Project
}

func newStepAdapter(kind string, instance any) *stepAdapter {
	return &stepAdapter{kind: kind, instance: instance}
}

// Bind stores the orchestrator and forwards it when the wrapped instance is
// project-aware.
func (a *stepAdapter) Bind(p task.Project) {
	a.project = p
	if aware, ok := a.instance.(task.ProjectAware); ok {
		aware.Bind(p)
	}
}

// SetStepName records the logical name for diagnostics.
func (a *stepAdapter) SetStepName(name string) {
	a.name = name
}

// SetAttribute proxies configuration onto the wrapped instance.
func (a *stepAdapter) SetAttribute(name, value string) error {
	cfg, ok := a.instance.(task.Configurable)
	if !ok {
		return &ConfigurationError{
			Name:   a.kind,
			Detail: fmt.Sprintf("%T does not accept attribute %q", a.instance, name),
		}
	}
	return cfg.SetAttribute(name, value)
}

// Run invokes the wrapped instance's Execute method. An instance without
// one fails here, at run time, not at instantiation.
func (a *stepAdapter) Run(ctx context.Context) error {
	ex, ok := a.instance.(task.Executable)
	if !ok {
		return &ConfigurationError{
			Name:   a.kind,
			Detail: fmt.Sprintf("%T is not executable as a step", a.instance),
		}
	}
	return ex.Execute()
}
