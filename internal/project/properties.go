package project

import (
	"github.com/vk/anvilgo/internal/properties"
	"github.com/vk/anvilgo/internal/task"
)

var _ task.Project = (*Project)(nil)

// SetProperty writes a project-origin property, subject to user-property
// precedence. When the write takes effect the value is additionally stored
// as a reference under the same identifier so other components can resolve
// it; a write suppressed by an existing user property leaves the reference
// table untouched.
func (p *Project) SetProperty(name, value string) {
	if p.props.Set(name, value) {
		p.refs.Add(name, value)
	}
}

// SetNewProperty writes a property only if no value of any origin exists.
func (p *Project) SetNewProperty(name, value string) {
	p.props.SetNew(name, value)
}

// SetUserProperty writes a user-origin property; it wins over any present or
// future project-origin write.
func (p *Project) SetUserProperty(name, value string) {
	p.props.SetUser(name, value)
}

// SetInheritedProperty writes a user-origin property flagged as inherited,
// as used by sub-build propagation.
func (p *Project) SetInheritedProperty(name, value string) {
	p.props.SetInherited(name, value)
}

// Property returns the expanded value of a property. A value whose expansion
// fails syntactically is returned unexpanded after logging the failure.
func (p *Project) Property(name string) (string, bool) {
	value, ok, err := p.props.Get(name)
	if err != nil {
		p.logger.Warn("Property expansion failed, returning raw value.",
			"name", name, "error", err)
		raw, _ := p.props.Raw(name)
		return raw, true
	}
	return value, ok
}

// ReplaceProperties expands ${name} placeholders in text against the
// project's property store. Unresolved placeholders stay verbatim; an
// unterminated placeholder is a syntax error.
func (p *Project) ReplaceProperties(text string) (string, error) {
	return p.props.Expand(text)
}

// Properties returns the project's property store. Used by sub-build style
// steps to copy user and inherited properties between projects.
func (p *Project) Properties() *properties.Store { return p.props }

// AddReference binds id to value in the reference table, replacing any
// previous binding.
func (p *Project) AddReference(id string, value any) {
	p.refs.Add(id, value)
}

// Reference resolves id from the reference table.
func (p *Project) Reference(id string) (any, bool) {
	return p.refs.Get(id)
}
