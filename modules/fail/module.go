// Package fail provides the fail step: it deliberately aborts the build
// with a configurable message.
package fail

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
	l.Register("FailStep", func() any { return &Step{} })
}

// Step fails when run. Attributes: message.
type Step struct {
	project task.Project
	name    string
	message string
}

func (s *Step) Bind(p task.Project) { s.project = p }
func (s *Step) SetStepName(name string) { s.name = name }

// SetAttribute implements the configurable-value capability.
func (s *Step) SetAttribute(name, value string) error {
	if name != "message" {
		return fmt.Errorf("fail does not support attribute %q", name)
	}
	s.message = value
	return nil
}

// Run aborts the build.
func (s *Step) Run(ctx context.Context) error {
	if s.message == "" {
		return errors.New("build failed")
	}
	return errors.New(s.message)
}
