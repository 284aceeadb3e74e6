// Package echo provides the echo step: it reports a message through the
// project's build log at a configurable severity.
package echo

import (
	"context"
	"fmt"

	"github.com/vk/anvilgo/internal/events"
	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/task"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("EchoStep", func() any { return &Step{severity: events.SeverityInfo} })
}

// Step logs its message when run. Attributes: message, level.
type Step struct {
	project  task.Project
	name     string
	message  string
	severity events.Severity
}

func (s *Step) Bind(p task.Project) { s.project = p }
func (s *Step) SetStepName(name string) { s.name = name }

// SetAttribute implements the configurable-value capability.
func (s *Step) SetAttribute(name, value string) error {
	switch name {
	case "message":
		s.message = value
	case "level":
		switch value {
		case "error":
			s.severity = events.SeverityError
		case "warn":
			s.severity = events.SeverityWarn
		case "info":
			s.severity = events.SeverityInfo
		case "verbose":
			s.severity = events.SeverityVerbose
		case "debug":
			s.severity = events.SeverityDebug
		default:
			return fmt.Errorf("unknown level %q", value)
		}
	default:
		return fmt.Errorf("echo does not support attribute %q", name)
	}
	return nil
}

// Run reports the message.
func (s *Step) Run(ctx context.Context) error {
	s.project.Log(s.message, s.severity)
	return nil
}
