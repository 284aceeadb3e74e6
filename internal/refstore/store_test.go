package refstore

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddAndGet(t *testing.T) {
	s := newTestStore()
	s.Add("classpath", []string{"a", "b"})

	v, ok := s.Get("classpath")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestReAddingReplacesLastWriteWins(t *testing.T) {
	s := newTestStore()
	s.Add("id", "first")
	s.Add("id", "second")

	v, ok := s.Get("id")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, s.Len())
}
