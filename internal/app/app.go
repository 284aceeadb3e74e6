// Package app wires one build run together: logger, build-file loading,
// module registration, and orchestrator construction.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/anvilgo/internal/config"
	"github.com/vk/anvilgo/internal/ctxlog"
	"github.com/vk/anvilgo/internal/events"
	"github.com/vk/anvilgo/internal/project"
	"github.com/vk/anvilgo/internal/registry"
)

// App encapsulates one fully configured build: its logger and orchestrator.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	project *project.Project
}

// NewApp constructs a ready-to-run App. The build file is loaded through the
// given loader, modules (coreModules when none are passed) are registered,
// the registry is seeded with the built-in definitions, -D user properties
// are applied, and the build-file model is applied to a fresh orchestrator.
// Startup configuration failures panic; main recovers them into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	model, err := loader.Load(ctx, appConfig.BuildFile)
	if err != nil {
		panic(fmt.Errorf("failed to load build file: %w", err))
	}
	logger.Debug("Build file translated into unified model.")

	builtin := registry.NewBuiltinLoader()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(builtin)
	}
	logger.Debug("All modules registered.", "count", len(modules))

	p := project.New(logger, builtin)
	p.AddListener(events.NewLoggerListener(logger))
	if appConfig.SkipGraphCheck {
		p.SetGraphCheck(false)
	}

	if err := p.Registry().Seed(defaultStepKinds, defaultDataTypes); err != nil {
		panic(fmt.Errorf("failed to seed built-in definitions: %w", err))
	}

	for name, value := range appConfig.UserProperties {
		p.SetUserProperty(name, value)
	}

	if err := p.Configure(model); err != nil {
		panic(fmt.Errorf("failed to configure project: %w", err))
	}
	logger.Debug("Project configured.",
		"project", p.Name(), "targets", len(p.TargetNames()))

	return &App{outW: outW, logger: logger, project: p}
}

// Project returns the app's orchestrator. Primarily for tests.
func (a *App) Project() *project.Project {
	return a.project
}
