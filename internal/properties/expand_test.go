package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		s := newTestStore()
		got, err := s.Expand("no placeholders here")
		require.NoError(t, err)
		assert.Equal(t, "no placeholders here", got)
	})

	t.Run("substitutes a known key", func(t *testing.T) {
		s := newTestStore()
		s.Set("name", "world")
		got, err := s.Expand("hello ${name}!")
		require.NoError(t, err)
		assert.Equal(t, "hello world!", got)
	})

	t.Run("unresolved placeholder stays verbatim", func(t *testing.T) {
		s := newTestStore()
		got, err := s.Expand("${undefined}")
		require.NoError(t, err)
		assert.Equal(t, "${undefined}", got)
	})

	t.Run("unterminated placeholder is a syntax error", func(t *testing.T) {
		s := newTestStore()
		_, err := s.Expand("${unterminated")
		require.Error(t, err)
		var syntaxErr *SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("lone dollar is literal", func(t *testing.T) {
		s := newTestStore()
		got, err := s.Expand("costs $5 and ends with $")
		require.NoError(t, err)
		assert.Equal(t, "costs $5 and ends with $", got)
	})

	t.Run("values expand recursively", func(t *testing.T) {
		s := newTestStore()
		s.Set("a", "1")
		s.Set("b", "${a}2")
		got, ok, err := s.Get("b")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "12", got)
	})

	t.Run("deep chains resolve", func(t *testing.T) {
		s := newTestStore()
		s.Set("a", "bottom")
		s.Set("b", "${a}")
		s.Set("c", "${b}")
		got, _, err := s.Get("c")
		require.NoError(t, err)
		assert.Equal(t, "bottom", got)
	})

	t.Run("self-reference is left verbatim instead of recursing", func(t *testing.T) {
		s := newTestStore()
		s.Set("loop", "value of ${loop}")
		got, _, err := s.Get("loop")
		require.NoError(t, err)
		assert.Equal(t, "value of ${loop}", got)
	})

	t.Run("mutual reference terminates", func(t *testing.T) {
		s := newTestStore()
		s.Set("a", "A${b}")
		s.Set("b", "B${a}")
		got, _, err := s.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "AB${a}", got)
	})

	t.Run("syntax error inside a referenced value surfaces", func(t *testing.T) {
		s := newTestStore()
		s.Set("bad", "${oops")
		s.Set("x", "prefix ${bad}")
		_, _, err := s.Get("x")
		require.Error(t, err)
	})
}
