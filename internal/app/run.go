package app

import (
	"context"
	"fmt"

	"github.com/vk/anvilgo/internal/ctxlog"
)

// Run executes the requested targets, falling back to the project's default
// target when none were requested. With ListTargets set it prints the
// project's targets instead of executing.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if appConfig.ListTargets {
		return a.listTargets()
	}

	names := appConfig.Targets
	if len(names) == 0 {
		def := a.project.DefaultTarget()
		if def == "" {
			return fmt.Errorf("no targets requested and the project declares no default target")
		}
		names = []string{def}
	}

	a.logger.Debug("Executing targets.", "targets", names)
	return a.project.ExecuteTargets(ctx, names)
}

// listTargets prints each target and its description without executing.
func (a *App) listTargets() error {
	if name := a.project.Name(); name != "" {
		fmt.Fprintf(a.outW, "Project %q", name)
		if d := a.project.Description(); d != "" {
			fmt.Fprintf(a.outW, " - %s", d)
		}
		fmt.Fprintln(a.outW)
	}
	for _, name := range a.project.TargetNames() {
		t, _ := a.project.Target(name)
		if t.Description() != "" {
			fmt.Fprintf(a.outW, "  %-20s %s\n", name, t.Description())
		} else {
			fmt.Fprintf(a.outW, "  %s\n", name)
		}
	}
	if def := a.project.DefaultTarget(); def != "" {
		fmt.Fprintf(a.outW, "Default target: %s\n", def)
	}
	return nil
}
