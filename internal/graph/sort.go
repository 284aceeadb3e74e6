package graph

import (
	"fmt"

	"go.uber.org/multierr"
)

type visitState int

const (
	stateUnvisited visitState = iota
	stateVisiting
	stateVisited
	// stateFailed marks targets unwound from a traversal that ended in an
	// error during the diagnostic pass. They are never revisited; paths
	// leading into them report a BrokenDependencyError of their own.
	stateFailed
)

// traversal is the explicit context threaded through one sort pass. It is
// owned by a single ComputeOrder call and discarded on return.
type traversal struct {
	states   map[string]visitState
	visiting []string
}

func (tr *traversal) push(name string) {
	tr.states[name] = stateVisiting
	tr.visiting = append(tr.visiting, name)
}

func (tr *traversal) pop() string {
	name := tr.visiting[len(tr.visiting)-1]
	tr.visiting = tr.visiting[:len(tr.visiting)-1]
	tr.states[name] = stateVisited
	return name
}

// unwind clears the visiting stack after a failed traversal, marking every
// participant failed so later iterations neither mistake them for an
// inconsistent sort nor silently accept paths through them.
func (tr *traversal) unwind() {
	for _, name := range tr.visiting {
		tr.states[name] = stateFailed
	}
	tr.visiting = tr.visiting[:0]
}

// cycleFrom walks the visiting stack from the offending name back to itself.
func (tr *traversal) cycleFrom(name string) []string {
	cycle := []string{name}
	for i := len(tr.visiting) - 1; i >= 0; i-- {
		cycle = append(cycle, tr.visiting[i])
		if tr.visiting[i] == name {
			break
		}
	}
	return cycle
}

// ComputeOrder returns the minimal sequence of targets needed to reach root:
// dependencies always precede dependents, ties broken by each target's
// declared dependency order. The final element is root itself.
//
// When fullCheck is set, the rest of the graph is traversed afterwards so
// that cycles and missing dependencies are reported even for targets
// unreachable from root; that second pass is purely diagnostic.
func (g *Graph) ComputeOrder(root string, fullCheck bool) ([]*Target, error) {
	if _, ok := g.targets[root]; !ok {
		return nil, &UnknownTargetError{Name: root}
	}

	tr := &traversal{states: make(map[string]visitState)}
	var order []*Target
	if err := g.visit(root, tr, &order); err != nil {
		return nil, err
	}
	g.logger.Debug("Build sequence computed.", "root", root, "sequence", names(order))

	if !fullCheck {
		return order, nil
	}

	// Validate the remainder of the graph in registration order. The
	// resulting sequence is informational; only the root-rooted prefix
	// above is executed.
	var rest []*Target
	var errs error
	for _, name := range g.order {
		switch tr.states[name] {
		case stateUnvisited:
			if err := g.visit(name, tr, &rest); err != nil {
				errs = multierr.Append(errs, err)
				tr.unwind()
			}
		case stateVisiting:
			return nil, &InternalConsistencyError{
				Detail: fmt.Sprintf("target %q left in visiting state after sort", name),
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	if len(rest) > 0 {
		g.logger.Debug("Complete build sequence validated.", "unreachable", names(rest))
	}
	return order, nil
}

// visit performs the depth-first traversal from name, appending each target
// to out once all of its dependencies have been appended.
func (g *Graph) visit(name string, tr *traversal, out *[]*Target) error {
	tr.push(name)
	t := g.targets[name]

	for _, dep := range t.Dependencies() {
		if _, ok := g.targets[dep]; !ok {
			return &UnknownTargetError{Name: dep, RequiredBy: name}
		}
		switch tr.states[dep] {
		case stateUnvisited:
			if err := g.visit(dep, tr, out); err != nil {
				return err
			}
		case stateVisiting:
			return &CircularDependencyError{Cycle: tr.cycleFrom(dep)}
		case stateVisited:
			// Already placed earlier in the sequence.
		case stateFailed:
			return &BrokenDependencyError{Name: dep, RequiredBy: name}
		}
	}

	if popped := tr.pop(); popped != name {
		return &InternalConsistencyError{
			Detail: fmt.Sprintf("unexpected %q on visiting stack, want %q", popped, name),
		}
	}
	*out = append(*out, t)
	return nil
}

func names(targets []*Target) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.Name()
	}
	return out
}
