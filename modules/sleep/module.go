// Package sleep provides the sleep step: it pauses the build for a
// configurable duration.
package sleep

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/task"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("SleepStep", func() any { return &Step{} })
}

// Step sleeps when run. Attributes: duration (Go duration syntax).
type Step struct {
	project  task.Project
	name     string
	duration time.Duration
}

func (s *Step) Bind(p task.Project) { s.project = p }
func (s *Step) SetStepName(name string) { s.name = name }

// SetAttribute implements the configurable-value capability.
func (s *Step) SetAttribute(name, value string) error {
	if name != "duration" {
		return fmt.Errorf("sleep does not support attribute %q", name)
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value, err)
	}
	s.duration = d
	return nil
}

// Run pauses for the configured duration. The execution model has no
// cancellation, so the timer always runs out.
func (s *Step) Run(ctx context.Context) error {
	time.Sleep(s.duration)
	return nil
}
