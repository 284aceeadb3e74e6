// Package condition provides the built-in boolean conditions: equals
// (string comparison) and os (runtime platform check).
package condition

import (
	"fmt"
	"runtime"

	"github.com/vk/anvilgo/internal/registry"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("EqualsCondition", func() any { return &Equals{} })
	l.Register("OsCondition", func() any { return &OS{} })
}

// Equals evaluates to true when its two attributes match exactly.
type Equals struct {
	first  string
	second string
}

// SetAttribute implements the configurable-value capability.
func (c *Equals) SetAttribute(name, value string) error {
	switch name {
	case "first":
		c.first = value
	case "second":
		c.second = value
	default:
		return fmt.Errorf("equals does not support attribute %q", name)
	}
	return nil
}

// Evaluate implements the condition capability.
func (c *Equals) Evaluate() (bool, error) {
	return c.first == c.second, nil
}

// OS evaluates to true when the configured family matches the running
// platform (runtime.GOOS).
type OS struct {
	family string
}

// SetAttribute implements the configurable-value capability.
func (c *OS) SetAttribute(name, value string) error {
	if name != "family" {
		return fmt.Errorf("os does not support attribute %q", name)
	}
	c.family = value
	return nil
}

// Evaluate implements the condition capability.
func (c *OS) Evaluate() (bool, error) {
	if c.family == "" {
		return false, fmt.Errorf("os condition requires a family attribute")
	}
	return c.family == runtime.GOOS, nil
}
