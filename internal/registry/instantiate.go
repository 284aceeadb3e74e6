package registry

import (
	"fmt"

	"github.com/vk/anvilgo/internal/task"
)

// NewStep resolves name and constructs a step instance. The second result is
// false when no such step kind is defined; the caller decides whether that
// is an error. An instance that does not conform to the step-execution
// capability is wrapped in an adapter rather than rejected.
func (r *Registry) NewStep(name string) (task.Step, bool, error) {
	def, ok := r.LookupStep(name)
	if !ok {
		return nil, false, nil
	}
	instance := def.factory()
	if step, ok := instance.(task.Step); ok {
		return step, true, nil
	}
	r.logger.Debug("Instance does not implement the step capability, adapting.",
		"name", name, "type", fmt.Sprintf("%T", instance))
	return newStepAdapter(def.Name, instance), true, nil
}

// NewDataType resolves name and constructs a data-type instance. The
// instance must conform to the configurable-value capability; it receives
// the orchestrator if it is additionally project-aware.
func (r *Registry) NewDataType(name string) (task.Configurable, bool, error) {
	def, ok := r.LookupDataType(name)
	if !ok {
		return nil, false, nil
	}
	instance := def.factory()
	cfg, ok := instance.(task.Configurable)
	if !ok {
		return nil, true, &ConfigurationError{
			Name:   def.Name,
			Detail: fmt.Sprintf("%T does not support the configurable-value capability", instance),
		}
	}
	if aware, ok := instance.(task.ProjectAware); ok {
		aware.Bind(r.project)
	}
	return cfg, true, nil
}

// NewCondition resolves name and constructs a boolean condition. Instances
// not conforming to the condition capability are a configuration error.
func (r *Registry) NewCondition(name string) (task.Condition, bool, error) {
	def, ok := r.LookupDataType(name)
	if !ok {
		return nil, false, nil
	}
	instance := def.factory()
	cond, ok := instance.(task.Condition)
	if !ok {
		return nil, true, &ConfigurationError{
			Name:   def.Name,
			Detail: fmt.Sprintf("%T does not support the condition capability", instance),
		}
	}
	if aware, ok := instance.(task.ProjectAware); ok {
		aware.Bind(r.project)
	}
	return cond, true, nil
}
