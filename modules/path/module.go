// Package path provides the path data type: an ordered list of filesystem
// locations resolved against the project base directory, shareable between
// steps through the project reference table.
package path

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/task"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("PathType", func() any { return &Path{} })
}

// Path is a configurable, project-aware value. Attributes: location (one
// element, resolved against the base directory) and elements (a
// list-separator-joined sequence appended verbatim).
type Path struct {
	project  task.Project
	elements []string
}

// Bind implements the project-aware capability.
func (p *Path) Bind(proj task.Project) { p.project = proj }

// SetAttribute implements the configurable-value capability.
func (p *Path) SetAttribute(name, value string) error {
	switch name {
	case "location":
		loc := value
		if !filepath.IsAbs(loc) && p.project != nil {
			loc = filepath.Join(p.project.BaseDir(), loc)
		}
		p.elements = append(p.elements, loc)
	case "elements":
		for _, el := range strings.Split(value, string(filepath.ListSeparator)) {
			if el != "" {
				p.elements = append(p.elements, el)
			}
		}
	default:
		return fmt.Errorf("path does not support attribute %q", name)
	}
	return nil
}

// Elements returns the accumulated locations in declaration order.
func (p *Path) Elements() []string {
	out := make([]string, len(p.elements))
	copy(out, p.elements)
	return out
}

// String joins the elements with the platform list separator.
func (p *Path) String() string {
	return strings.Join(p.elements, string(filepath.ListSeparator))
}
