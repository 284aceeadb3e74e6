// Package config holds the format-agnostic representation of a build file.
// Format-specific loaders (see internal/hcl) translate their source into
// this model; the orchestrator is configured from the model alone.
package config

import "context"

// Model is the unified representation of one build file.
type Model struct {
	Name            string
	Description     string
	BaseDir         string
	DefaultTarget   string
	RequiredVersion string

	// Properties are project-origin property writes, in declaration order.
	Properties []Property
	// StepKinds and DataTypes are user-declared registry extensions.
	StepKinds []Definition
	DataTypes []Definition
	// Targets in declaration order.
	Targets []*TargetDef
}

// Property is one name/value pair from a property block.
type Property struct {
	Name  string
	Value string
}

// Definition declares a registry extension: a logical name bound to an
// implementation descriptor, with an optional load-path hint.
type Definition struct {
	Name       string
	Descriptor string
	Hint       string
}

// TargetDef is the agnostic representation of a target block.
type TargetDef struct {
	Name        string
	Description string
	DependsOn   []string
	If          string
	Unless      string
	Steps       []*StepDef
}

// StepDef is the agnostic representation of a step block: the step-kind name
// plus its attributes in declaration order. Attribute values keep their
// ${name} placeholders; expansion happens when the step runs.
type StepDef struct {
	Kind       string
	Attributes []Attribute
}

// Attribute is one named step-configuration value.
type Attribute struct {
	Name  string
	Value string
}

// Loader is the interface for a format-specific build-file loader.
type Loader interface {
	// Load reads the build file at path and translates it into the model.
	Load(ctx context.Context, path string) (*Model, error)
}
