package graph

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph() *Graph {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func target(name string, deps ...string) *Target {
	return NewTarget(name, deps, nil)
}

func TestAdd(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, g.Add(target("a")))
	require.NoError(t, g.Add(target("b")))
	assert.Equal(t, 2, g.Len())

	got, ok := g.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name())
}

func TestAddRejectsDuplicates(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, g.Add(target("a")))

	err := g.Add(target("a"))
	require.Error(t, err)
	var dup *DuplicateTargetError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Name)
}

func TestAddOrReplace(t *testing.T) {
	g := newTestGraph()
	first := target("a")
	second := target("a", "b")

	g.AddOrReplace(first)
	g.AddOrReplace(second)

	got, ok := g.Get("a")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, g.Len())
}

func TestNamesKeepInsertionOrder(t *testing.T) {
	g := newTestGraph()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, g.Add(target(name)))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, g.Names())

	// Replacement keeps the original position.
	g.AddOrReplace(target("alpha", "zeta"))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, g.Names())
}

func TestTargetConditionGates(t *testing.T) {
	proj := &fakeProject{props: map[string]string{"set": "1"}}

	unconditional := target("a")
	assert.True(t, unconditional.ShouldRun(proj))

	gated := target("b")
	gated.SetCondition("set", "")
	assert.True(t, gated.ShouldRun(proj))

	gated.SetCondition("unset", "")
	assert.False(t, gated.ShouldRun(proj))

	gated.SetCondition("", "set")
	assert.False(t, gated.ShouldRun(proj))

	gated.SetCondition("", "unset")
	assert.True(t, gated.ShouldRun(proj))
}
