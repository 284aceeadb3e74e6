package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/anvilgo/internal/config"
	"github.com/vk/anvilgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translate converts the decoded HCL schema into the agnostic model.
func (l *Loader) translate(bf *schema.BuildFile) (*config.Model, error) {
	m := &config.Model{}

	if bf.Project != nil {
		m.Name = bf.Project.Name
		m.Description = bf.Project.Description
		m.BaseDir = bf.Project.BaseDir
		m.DefaultTarget = bf.Project.DefaultTarget
		m.RequiredVersion = bf.Project.RequiredVersion
	}
	for _, prop := range bf.Properties {
		m.Properties = append(m.Properties, config.Property{Name: prop.Name, Value: prop.Value})
	}
	for _, def := range bf.StepKinds {
		m.StepKinds = append(m.StepKinds, config.Definition{
			Name: def.Name, Descriptor: def.Implementation, Hint: def.Hint,
		})
	}
	for _, def := range bf.DataTypes {
		m.DataTypes = append(m.DataTypes, config.Definition{
			Name: def.Name, Descriptor: def.Implementation, Hint: def.Hint,
		})
	}

	for _, tb := range bf.Targets {
		target := &config.TargetDef{
			Name:        tb.Name,
			Description: tb.Description,
			DependsOn:   tb.DependsOn,
			If:          tb.If,
			Unless:      tb.Unless,
		}
		for _, sb := range tb.Steps {
			attrs, err := extractAttributes(sb.Body)
			if err != nil {
				return nil, fmt.Errorf("step %q in target %q: %w", sb.Kind, tb.Name, err)
			}
			target.Steps = append(target.Steps, &config.StepDef{Kind: sb.Kind, Attributes: attrs})
		}
		m.Targets = append(m.Targets, target)
	}
	return m, nil
}

// extractAttributes evaluates a step body's free-form attributes into
// strings, preserving source declaration order. Property placeholders are
// written as $${name} in build files so that HCL template evaluation leaves
// a literal ${name} for the engine to expand at run time.
func extractAttributes(body hcl.Body) ([]config.Attribute, error) {
	if body == nil {
		return nil, nil
	}
	attrMap, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading attributes: %w", diags)
	}

	attrs := make([]*hcl.Attribute, 0, len(attrMap))
	for _, attr := range attrMap {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		ri, rj := attrs[i].Range, attrs[j].Range
		if ri.Filename != rj.Filename {
			return ri.Filename < rj.Filename
		}
		return ri.Start.Byte < rj.Start.Byte
	})

	out := make([]config.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating attribute %q: %w", attr.Name, diags)
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("attribute %q is not convertible to string: %w", attr.Name, err)
		}
		if str.IsNull() {
			return nil, fmt.Errorf("attribute %q is null", attr.Name)
		}
		out = append(out, config.Attribute{Name: attr.Name, Value: str.AsString()})
	}
	return out, nil
}
