package integration_tests

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/anvilgo/internal/app"
	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/testutil"
)

// stampStep is a foreign-shaped step: it has no Run method, only the narrow
// configure/execute contracts, so the registry must adapt it.
type stampStep struct {
	mu     *sync.Mutex
	seen   *[]string
	marker string
}

func (s *stampStep) SetAttribute(name, value string) error {
	if name == "marker" {
		s.marker = value
	}
	return nil
}

func (s *stampStep) Execute() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.seen = append(*s.seen, s.marker)
	return nil
}

// stampModule registers the stamp implementation for taskdef tests.
type stampModule struct {
	mu   sync.Mutex
	seen []string
}

func (m *stampModule) Register(l *registry.BuiltinLoader) {
	l.Register("StampStep", func() any { return &stampStep{mu: &m.mu, seen: &m.seen} })
}

// TestBuild_TaskdefExtension verifies a build file can bind a new step kind
// to a compiled-in implementation and that a non-native implementation is
// adapted transparently.
func TestBuild_TaskdefExtension(t *testing.T) {
	// --- Arrange ---
	buildHCL := `
        taskdef "stamp" {
            implementation = "StampStep"
        }

        target "mark" {
            step "stamp" {
                marker = "adapted"
            }
        }
    `
	mod := &stampModule{}
	modules := append(app.CoreModules(), mod)

	// --- Act ---
	result := testutil.RunBuild(t, map[string]string{"build.hcl": buildHCL}, testutil.Options{
		Targets: []string{"mark"},
		Modules: modules,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"adapted"}, mod.seen)
}

// TestBuild_TaskdefUnknownImplementation verifies an unresolvable descriptor
// fails at configuration time, before anything runs.
func TestBuild_TaskdefUnknownImplementation(t *testing.T) {
	buildHCL := `
        taskdef "ghost" {
            implementation = "NoSuchImplementation"
        }

        target "mark" {
            step "echo" {
                message = "never reached"
            }
        }
    `
	result := testutil.RunBuild(t, map[string]string{"build.hcl": buildHCL},
		testutil.Options{Targets: []string{"mark"}})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "NoSuchImplementation")
	assert.NotContains(t, result.LogOutput, "never reached")
}

// TestBuild_ShellStep verifies the shell step runs a command in the project
// base directory and surfaces its output through the build log.
func TestBuild_ShellStep(t *testing.T) {
	buildHCL := `
        target "info" {
            step "shell" {
                command = "echo shell says hi"
            }
        }
    `
	result := testutil.RunBuild(t, map[string]string{"build.hcl": buildHCL},
		testutil.Options{Targets: []string{"info"}})

	require.NoError(t, result.Err)
	assert.Contains(t, result.LogOutput, "shell says hi")
}

// TestBuild_ShellStepFailure verifies a non-zero exit aborts the build.
func TestBuild_ShellStepFailure(t *testing.T) {
	buildHCL := `
        target "broken" {
            step "shell" {
                command = "exit 3"
            }
        }
    `
	result := testutil.RunBuild(t, map[string]string{"build.hcl": buildHCL},
		testutil.Options{Targets: []string{"broken"}})

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "exit")
}
