// Package schema defines the HCL shapes of a build file. It is the only
// place the concrete file syntax lives; everything downstream works on the
// format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// ProjectBlock carries the project-wide settings of a build file.
type ProjectBlock struct {
	Name            string `hcl:"name,optional"`
	Description     string `hcl:"description,optional"`
	BaseDir         string `hcl:"basedir,optional"`
	DefaultTarget   string `hcl:"default_target,optional"`
	RequiredVersion string `hcl:"required_version,optional"`
}

// PropertyBlock sets one project-origin property.
type PropertyBlock struct {
	Name  string `hcl:"name,label"`
	Value string `hcl:"value"`
}

// DefBlock declares a step-kind or data-type extension: a logical name bound
// to an implementation descriptor the loader can resolve.
type DefBlock struct {
	Name           string `hcl:"name,label"`
	Implementation string `hcl:"implementation"`
	Hint           string `hcl:"hint,optional"`
}

// StepBlock is one step inside a target. Its attributes are free-form and
// depend on the step kind, so the body is kept raw for extraction.
type StepBlock struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`
}

// TargetBlock is a named target with declared dependencies and steps.
type TargetBlock struct {
	Name        string       `hcl:"name,label"`
	Description string       `hcl:"description,optional"`
	DependsOn   []string     `hcl:"depends_on,optional"`
	If          string       `hcl:"if,optional"`
	Unless      string       `hcl:"unless,optional"`
	Steps       []*StepBlock `hcl:"step,block"`
}

// BuildFile is the top-level structure of a build file.
type BuildFile struct {
	Project    *ProjectBlock    `hcl:"project,block"`
	Properties []*PropertyBlock `hcl:"property,block"`
	StepKinds  []*DefBlock      `hcl:"taskdef,block"`
	DataTypes  []*DefBlock      `hcl:"typedef,block"`
	Targets    []*TargetBlock   `hcl:"target,block"`
}
