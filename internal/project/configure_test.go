package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/anvilgo/internal/config"
)

func TestConfigureAppliesModel(t *testing.T) {
	j := &journal{}
	p := newTestProject(t, j)

	m := &config.Model{
		Name:            "warehouse",
		Description:     "nightly packaging",
		BaseDir:         t.TempDir(),
		DefaultTarget:   "dist",
		RequiredVersion: "Anvil 0.2",
		Properties: []config.Property{
			{Name: "stage", Value: "release"},
		},
		StepKinds: []config.Definition{
			{Name: "note", Descriptor: "Record"},
		},
		Targets: []*config.TargetDef{
			{
				Name:      "dist",
				DependsOn: []string{"init"},
				Steps: []*config.StepDef{
					{Kind: "note", Attributes: []config.Attribute{{Name: "entry", Value: "dist-${stage}"}}},
				},
			},
			{Name: "init", If: "stage"},
		},
	}
	require.NoError(t, p.Configure(m))

	assert.Equal(t, "warehouse", p.Name())
	assert.Equal(t, "nightly packaging", p.Description())
	assert.Equal(t, "dist", p.DefaultTarget())
	assert.Equal(t, "0.2", p.RequiredVersion())
	assert.Equal(t, m.BaseDir, p.BaseDir())

	require.NoError(t, p.Execute(context.Background(), "dist"))
	assert.Equal(t, []string{"dist-release"}, j.all())
}

func TestConfigureRejectsUnloadableDefinition(t *testing.T) {
	p := newTestProject(t, &journal{})

	m := &config.Model{
		StepKinds: []config.Definition{{Name: "ghost", Descriptor: "NoImpl"}},
	}
	assert.Error(t, p.Configure(m))
}

func TestConfigureRejectsDuplicateTargets(t *testing.T) {
	p := newTestProject(t, &journal{})

	m := &config.Model{
		Targets: []*config.TargetDef{{Name: "a"}, {Name: "a"}},
	}
	assert.Error(t, p.Configure(m))
}
