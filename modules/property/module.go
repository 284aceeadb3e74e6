// Package property provides the property step: it writes a project-origin
// property through the orchestrator while the build runs.
package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/task"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("PropertyStep", func() any { return &Step{} })
}

// Step sets one property when run. Attributes: name, value. The write goes
// through the normal precedence rules, so user properties stay untouched.
type Step struct {
	project  task.Project
	stepName string
	propName string
	value    string
}

func (s *Step) Bind(p task.Project) { s.project = p }
func (s *Step) SetStepName(name string) { s.stepName = name }

// SetAttribute implements the configurable-value capability.
func (s *Step) SetAttribute(name, value string) error {
	switch name {
	case "name":
		s.propName = value
	case "value":
		s.value = value
	default:
		return fmt.Errorf("property does not support attribute %q", name)
	}
	return nil
}

// Run writes the property.
func (s *Step) Run(ctx context.Context) error {
	if s.propName == "" {
		return errors.New("property requires a name attribute")
	}
	s.project.SetProperty(s.propName, s.value)
	return nil
}
