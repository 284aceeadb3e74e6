// Package shell provides the shell step: it runs a command line through the
// system shell in the project's base directory.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/vk/anvilgo/internal/events"
	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/task"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("ShellStep", func() any { return &Step{} })
}

// Step runs one command. Attributes: command, dir (defaults to the project
// base directory).
type Step struct {
	project task.Project
	name    string
	command string
	dir     string
}

func (s *Step) Bind(p task.Project) { s.project = p }
func (s *Step) SetStepName(name string) { s.name = name }

// SetAttribute implements the configurable-value capability.
func (s *Step) SetAttribute(name, value string) error {
	switch name {
	case "command":
		s.command = value
	case "dir":
		s.dir = value
	default:
		return fmt.Errorf("shell does not support attribute %q", name)
	}
	return nil
}

// Run executes the command, reporting its combined output through the build
// log. A non-zero exit is a step failure.
func (s *Step) Run(ctx context.Context) error {
	if s.command == "" {
		return errors.New("shell requires a command attribute")
	}
	dir := s.dir
	if dir == "" {
		dir = s.project.BaseDir()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", s.command)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if text := strings.TrimRight(string(out), "\n"); text != "" {
		s.project.Log(text, events.SeverityInfo)
	}
	if err != nil {
		return fmt.Errorf("command %q: %w", s.command, err)
	}
	return nil
}
