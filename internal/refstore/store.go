// Package refstore implements the flat reference table mapping an identifier
// to an arbitrary owned object, used for cross-component lookup.
package refstore

import "log/slog"

// Store holds the references of one orchestrator instance. Unlike target and
// registry names, re-adding an existing identifier is allowed: the new value
// replaces the old one and the replacement is only logged.
type Store struct {
	logger *slog.Logger
	refs   map[string]any
}

// New returns an empty reference table.
func New(logger *slog.Logger) *Store {
	return &Store{
		logger: logger,
		refs:   make(map[string]any),
	}
}

// Add binds id to value, replacing any previous binding.
func (s *Store) Add(id string, value any) {
	if _, ok := s.refs[id]; ok {
		s.logger.Debug("Overriding previous definition of reference.", "id", id)
	}
	s.refs[id] = value
}

// Get resolves id, reporting whether a binding exists.
func (s *Store) Get(id string) (any, bool) {
	v, ok := s.refs[id]
	return v, ok
}

// Len returns the number of bindings.
func (s *Store) Len() int {
	return len(s.refs)
}
