package graph

import "github.com/vk/anvilgo/internal/task"

// Attribute is a single named configuration value for a step, kept in
// declaration order so configuration is applied deterministically.
type Attribute struct {
	Name  string
	Value string
}

// StepConfig describes one unit of work belonging to a target: the logical
// registry name of the step kind plus its raw attributes. Placeholders in
// attribute values stay unexpanded until the step runs.
type StepConfig struct {
	Kind       string
	Attributes []Attribute
}

// Target is a named build step with declared dependencies and an ordered
// list of steps. Its shape is fixed once added to a graph.
type Target struct {
	name        string
	description string
	deps        []string
	steps       []*StepConfig

	// ifProp and unlessProp optionally gate execution on a property being
	// set (or not set) at the time the target runs.
	ifProp     string
	unlessProp string

	// project is a non-owning back-reference to the orchestrator, used for
	// logging and property access while the target's steps run.
	project task.Project
}

// NewTarget creates a target with the given name, dependency list, and steps.
// The declared dependency order is significant: it breaks ties in the
// execution order.
func NewTarget(name string, deps []string, steps []*StepConfig) *Target {
	return &Target{name: name, deps: deps, steps: steps}
}

// Name returns the unique target name.
func (t *Target) Name() string { return t.name }

// Description returns the free-form target description.
func (t *Target) Description() string { return t.description }

// SetDescription sets the free-form target description.
func (t *Target) SetDescription(d string) { t.description = d }

// Dependencies returns the declared dependency names in declaration order.
func (t *Target) Dependencies() []string { return t.deps }

// Steps returns the target's step descriptors in declaration order.
func (t *Target) Steps() []*StepConfig { return t.steps }

// SetCondition gates the target on ifProp being set and unlessProp being
// unset at execution time. Empty strings leave the target unconditional.
func (t *Target) SetCondition(ifProp, unlessProp string) {
	t.ifProp = ifProp
	t.unlessProp = unlessProp
}

// ShouldRun reports whether the target's if/unless property gates allow it
// to run under the given project.
func (t *Target) ShouldRun(p task.Project) bool {
	if t.ifProp != "" {
		if _, ok := p.Property(t.ifProp); !ok {
			return false
		}
	}
	if t.unlessProp != "" {
		if _, ok := p.Property(t.unlessProp); ok {
			return false
		}
	}
	return true
}

// Bind records the owning orchestrator. The reference is non-owning.
func (t *Target) Bind(p task.Project) { t.project = p }

// Project returns the orchestrator the target is bound to, nil before Bind.
func (t *Target) Project() task.Project { return t.project }
