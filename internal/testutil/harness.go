// Package testutil provides the shared harness for end-to-end build tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/anvilgo/internal/app"
	"github.com/vk/anvilgo/internal/hcl"
	"github.com/vk/anvilgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements fmt.Stringer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Result holds the outcome of one harness run.
type Result struct {
	LogOutput string
	Err       error
	App       *app.App
}

// Options tweaks a harness run.
type Options struct {
	// Targets to execute; empty means the project default.
	Targets []string
	// UserProperties are -D style overrides.
	UserProperties map[string]string
	// Modules overrides the compiled-in module list when non-empty.
	Modules []registry.Module
	// ListTargets switches the run to target listing.
	ListTargets bool
}

// RunBuild writes the given build files into a temp directory, runs the
// requested targets through a full App, and captures log output. Startup
// panics are recovered into Result.Err so tests can assert on them.
func RunBuild(t *testing.T, files map[string]string, opts Options) *Result {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		BuildFile:      tmpDir,
		Targets:        opts.Targets,
		UserProperties: opts.UserProperties,
		LogFormat:      "text",
		LogLevel:       "debug",
		ListTargets:    opts.ListTargets,
	})
	require.NoError(t, err)

	var out SafeBuffer
	result := &Result{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup failure: %v", r)
			}
		}()
		result.App = app.NewApp(&out, cfg, hcl.NewLoader(), opts.Modules...)
		result.Err = result.App.Run(context.Background(), cfg)
	}()
	result.LogOutput = out.String()
	return result
}
