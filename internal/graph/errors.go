package graph

import (
	"fmt"
	"strings"
)

// DuplicateTargetError reports re-registration of an existing target name
// through the strict Add API.
type DuplicateTargetError struct {
	Name string
}

func (e *DuplicateTargetError) Error() string {
	return fmt.Sprintf("duplicate target %q", e.Name)
}

// UnknownTargetError reports a dependency or execution root that is not
// registered. RequiredBy names the dependent target when the missing name
// was encountered as a dependency.
type UnknownTargetError struct {
	Name       string
	RequiredBy string
}

func (e *UnknownTargetError) Error() string {
	if e.RequiredBy != "" {
		return fmt.Sprintf("target %q does not exist in this project (required by %q)", e.Name, e.RequiredBy)
	}
	return fmt.Sprintf("target %q does not exist in this project", e.Name)
}

// BrokenDependencyError reports a dependency whose own subgraph already
// failed validation earlier in the same diagnostic pass. It keeps distinct
// paths into a defective subgraph from being silently accepted without
// re-reporting the underlying defect for each of them.
type BrokenDependencyError struct {
	Name       string
	RequiredBy string
}

func (e *BrokenDependencyError) Error() string {
	return fmt.Sprintf("target %q depends on %q, which failed dependency validation", e.RequiredBy, e.Name)
}

// CircularDependencyError reports a dependency cycle found during the
// topological sort. Cycle lists the targets on the cycle, starting and
// ending at the same name.
type CircularDependencyError struct {
	Cycle []string
}

func (e *CircularDependencyError) Error() string {
	return "circular dependency: " + strings.Join(e.Cycle, " <- ")
}

// InternalConsistencyError reports a violated sort invariant. It is a defect
// in the engine, not a user error.
type InternalConsistencyError struct {
	Detail string
}

func (e *InternalConsistencyError) Error() string {
	return "internal consistency failure: " + e.Detail
}
