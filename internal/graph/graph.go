// Package graph holds the target dependency graph and the topological
// execution-order algorithm operating over it.
package graph

import "log/slog"

// Graph is the node/edge model for targets and their declared dependencies.
// Targets are kept in insertion order so that full-graph validation and
// diagnostics are deterministic. The graph is owned by exactly one
// orchestrator and is not safe for concurrent use.
type Graph struct {
	logger  *slog.Logger
	targets map[string]*Target
	order   []string
}

// New returns an empty graph logging through the given logger.
func New(logger *slog.Logger) *Graph {
	return &Graph{
		logger:  logger,
		targets: make(map[string]*Target),
	}
}

// Add registers a target. Re-registration under an existing name is a hard
// error; use AddOrReplace for deliberate overwrites.
func (g *Graph) Add(t *Target) error {
	if _, ok := g.targets[t.Name()]; ok {
		return &DuplicateTargetError{Name: t.Name()}
	}
	g.targets[t.Name()] = t
	g.order = append(g.order, t.Name())
	g.logger.Debug("Target added.", "target", t.Name())
	return nil
}

// AddOrReplace registers a target, silently overwriting any existing target
// of the same name.
func (g *Graph) AddOrReplace(t *Target) {
	if _, ok := g.targets[t.Name()]; ok {
		g.logger.Debug("Replacing existing target.", "target", t.Name())
		g.targets[t.Name()] = t
		return
	}
	g.targets[t.Name()] = t
	g.order = append(g.order, t.Name())
}

// Get returns the target registered under name.
func (g *Graph) Get(name string) (*Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Names returns all registered target names in insertion order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of registered targets.
func (g *Graph) Len() int {
	return len(g.targets)
}
