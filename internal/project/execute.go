package project

import (
	"context"
	"fmt"

	"github.com/vk/anvilgo/internal/events"
	"github.com/vk/anvilgo/internal/graph"
	"github.com/vk/anvilgo/internal/task"
)

// StepFailureError wraps a failure raised while a target's steps were
// running, attributing it to the failing target and step.
type StepFailureError struct {
	Target string
	Step   string
	Err    error
}

func (e *StepFailureError) Error() string {
	return fmt.Sprintf("step %q in target %q failed: %v", e.Step, e.Target, e.Err)
}

func (e *StepFailureError) Unwrap() error { return e.Err }

// ExecuteTargets runs one execution per requested name, in the given order.
// Each name is independently validated and sorted; there is no shared
// topological pass across the requested names. Build-started and
// build-finished notifications bracket the whole call.
func (p *Project) ExecuteTargets(ctx context.Context, names []string) (err error) {
	p.bus.FireBuildStarted(events.Event{Project: p.name})
	defer func() {
		p.bus.FireBuildFinished(events.Event{Project: p.name, Err: err})
	}()

	for _, name := range names {
		if err = p.Execute(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// Execute computes the execution order rooted at name and runs each target
// in sequence, stopping once name itself has completed. Any failure aborts
// the execution; there is no partial-success continuation.
func (p *Project) Execute(ctx context.Context, name string) error {
	order, err := p.targets.ComputeOrder(name, p.graphCheck)
	if err != nil {
		return err
	}

	for _, t := range order {
		if err := p.runTarget(ctx, t); err != nil {
			return err
		}
		if t.Name() == name {
			break
		}
	}
	return nil
}

func (p *Project) runTarget(ctx context.Context, t *graph.Target) (err error) {
	p.bus.FireTargetStarted(events.Event{Project: p.name, Target: t.Name()})
	defer func() {
		p.bus.FireTargetFinished(events.Event{Project: p.name, Target: t.Name(), Err: err})
	}()

	if !t.ShouldRun(p) {
		p.logger.Debug("Target skipped by its property condition.", "target", t.Name())
		return nil
	}

	for _, sc := range t.Steps() {
		if err = p.runStep(ctx, t, sc); err != nil {
			p.logger.Error("Target failed.", "target", t.Name(), "error", err)
			return err
		}
	}
	return nil
}

func (p *Project) runStep(ctx context.Context, t *graph.Target, sc *graph.StepConfig) (err error) {
	p.bus.FireStepStarted(events.Event{Project: p.name, Target: t.Name(), Step: sc.Kind})
	defer func() {
		p.bus.FireStepFinished(events.Event{Project: p.name, Target: t.Name(), Step: sc.Kind, Err: err})
	}()

	step, ok, err := p.reg.NewStep(sc.Kind)
	if err != nil {
		return &StepFailureError{Target: t.Name(), Step: sc.Kind, Err: err}
	}
	if !ok {
		return &StepFailureError{
			Target: t.Name(),
			Step:   sc.Kind,
			Err:    fmt.Errorf("step kind %q is not defined", sc.Kind),
		}
	}

	step.Bind(p)
	step.SetStepName(sc.Kind)
	if err := p.configureStep(step, sc); err != nil {
		return &StepFailureError{Target: t.Name(), Step: sc.Kind, Err: err}
	}

	if err := step.Run(ctx); err != nil {
		return &StepFailureError{Target: t.Name(), Step: sc.Kind, Err: err}
	}
	return nil
}

// configureStep applies the step's attributes in declaration order, with
// property placeholders expanded at configuration time.
func (p *Project) configureStep(step task.Step, sc *graph.StepConfig) error {
	if len(sc.Attributes) == 0 {
		return nil
	}
	cfg, ok := step.(task.Configurable)
	if !ok {
		return fmt.Errorf("step kind %q does not accept attributes", sc.Kind)
	}
	for _, attr := range sc.Attributes {
		value, err := p.ReplaceProperties(attr.Value)
		if err != nil {
			return fmt.Errorf("expanding attribute %q: %w", attr.Name, err)
		}
		if err := cfg.SetAttribute(attr.Name, value); err != nil {
			return fmt.Errorf("setting attribute %q: %w", attr.Name, err)
		}
	}
	return nil
}
