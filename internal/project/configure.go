package project

import (
	"fmt"

	"github.com/vk/anvilgo/internal/config"
	"github.com/vk/anvilgo/internal/graph"
)

// Configure applies a loaded build-file model to the project: project-wide
// settings, property writes, registry extensions, and targets, in that
// order. Registry extensions are resolved eagerly, so an unloadable
// implementation fails configuration here.
func (p *Project) Configure(m *config.Model) error {
	if m.Name != "" {
		p.SetName(m.Name)
	}
	if m.Description != "" {
		p.SetDescription(m.Description)
	}
	if m.RequiredVersion != "" {
		p.SetRequiredVersion(m.RequiredVersion)
	}
	if m.DefaultTarget != "" {
		p.SetDefaultTarget(m.DefaultTarget)
	}

	baseDir := m.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	if err := p.SetBaseDir(baseDir); err != nil {
		return err
	}

	for _, def := range m.StepKinds {
		if err := p.reg.DefineStep(def.Name, def.Descriptor, def.Hint); err != nil {
			return err
		}
	}
	for _, def := range m.DataTypes {
		if err := p.reg.DefineDataType(def.Name, def.Descriptor, def.Hint); err != nil {
			return err
		}
	}

	for _, prop := range m.Properties {
		p.SetProperty(prop.Name, prop.Value)
	}

	for _, td := range m.Targets {
		steps := make([]*graph.StepConfig, 0, len(td.Steps))
		for _, sd := range td.Steps {
			attrs := make([]graph.Attribute, 0, len(sd.Attributes))
			for _, a := range sd.Attributes {
				attrs = append(attrs, graph.Attribute{Name: a.Name, Value: a.Value})
			}
			steps = append(steps, &graph.StepConfig{Kind: sd.Kind, Attributes: attrs})
		}
		t := graph.NewTarget(td.Name, td.DependsOn, steps)
		t.SetDescription(td.Description)
		t.SetCondition(td.If, td.Unless)
		if err := p.AddTarget(t); err != nil {
			return fmt.Errorf("configuring targets: %w", err)
		}
	}
	return nil
}
