package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestComputeOrderProperties checks the sort invariants on arbitrary valid
// DAGs: dependencies always precede dependents and no target appears twice.
func TestComputeOrderProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 25).Draw(rt, "n")
		g := newTestGraph()

		deps := make(map[string][]string)
		for i := 0; i < n; i++ {
			name := fmt.Sprintf("t%d", i)
			var d []string
			if i > 0 {
				// Only edges towards earlier targets, so the graph is
				// acyclic by construction.
				for _, j := range rapid.SliceOfNDistinct(rapid.IntRange(0, i-1), 0, i, rapid.ID[int]).Draw(rt, "deps") {
					d = append(d, fmt.Sprintf("t%d", j))
				}
			}
			deps[name] = d
			require.NoError(t, g.Add(target(name, d...)))
		}

		root := fmt.Sprintf("t%d", rapid.IntRange(0, n-1).Draw(rt, "root"))
		order, err := g.ComputeOrder(root, true)
		require.NoError(t, err)
		require.NotEmpty(t, order)
		require.Equal(t, root, order[len(order)-1].Name())

		pos := make(map[string]int)
		for i, tgt := range order {
			_, seen := pos[tgt.Name()]
			require.False(rt, seen, "target %q appears twice", tgt.Name())
			pos[tgt.Name()] = i
		}
		for name, i := range pos {
			for _, dep := range deps[name] {
				j, ok := pos[dep]
				require.True(rt, ok, "dependency %q of %q missing from order", dep, name)
				require.Less(rt, j, i, "dependency %q must precede %q", dep, name)
			}
		}
	})
}

// TestComputeOrderDetectsArbitraryCycles checks that any graph containing a
// dependency cycle reachable from the root is rejected.
func TestComputeOrderDetectsArbitraryCycles(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(2, 10).Draw(rt, "cycle-length")
		noise := rapid.IntRange(0, 10).Draw(rt, "noise")

		g := newTestGraph()
		for i := 0; i < k; i++ {
			name := fmt.Sprintf("c%d", i)
			dep := fmt.Sprintf("c%d", (i+1)%k)
			require.NoError(t, g.Add(target(name, dep)))
		}
		for i := 0; i < noise; i++ {
			require.NoError(t, g.Add(target(fmt.Sprintf("n%d", i))))
		}

		root := fmt.Sprintf("c%d", rapid.IntRange(0, k-1).Draw(rt, "root"))
		_, err := g.ComputeOrder(root, true)
		var cyc *CircularDependencyError
		require.ErrorAs(rt, err, &cyc)
	})
}
