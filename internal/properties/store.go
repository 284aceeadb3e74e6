// Package properties implements the layered build property store: system,
// project, user, and inherited origins with fixed precedence and lazy
// ${name} placeholder expansion.
package properties

import "log/slog"

// Origin identifies the layer a property value was written through.
type Origin int

const (
	// OriginSystem marks values seeded from the process environment and
	// built-in facts at orchestrator construction.
	OriginSystem Origin = iota
	// OriginProject marks values written by the build file or by steps.
	OriginProject
	// OriginUser marks values set by the build's caller. They are never
	// overwritten by project-origin writes.
	OriginUser
)

type entry struct {
	value  string
	origin Origin
	// inherited is a sub-marker of OriginUser used only by the cross-store
	// copy operations, never by precedence.
	inherited bool
}

// Store holds the properties of one orchestrator instance. A key has exactly
// one current value and origin at any time. The store is not safe for
// concurrent use; execution is single-threaded by design.
type Store struct {
	logger  *slog.Logger
	entries map[string]*entry
}

// New returns an empty store logging through the given logger.
func New(logger *slog.Logger) *Store {
	return &Store{
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Set writes a project-origin property and reports whether the write took
// effect. If a user-origin entry exists the write is ignored; build callers
// always win over the build file.
func (s *Store) Set(name, value string) bool {
	if e, ok := s.entries[name]; ok {
		if e.origin == OriginUser {
			s.logger.Debug("Override ignored for user property.", "name", name)
			return false
		}
		s.logger.Debug("Overriding previous definition of property.", "name", name)
	}
	s.entries[name] = &entry{value: value, origin: OriginProject}
	return true
}

// SetNew writes a project-origin property only if no entry of any origin
// exists for the key.
func (s *Store) SetNew(name, value string) {
	if _, ok := s.entries[name]; ok {
		s.logger.Debug("Property already set, skipping.", "name", name)
		return
	}
	s.entries[name] = &entry{value: value, origin: OriginProject}
}

// SetUser writes a user-origin property. It always wins, including over
// future project-origin writes.
func (s *Store) SetUser(name, value string) {
	s.entries[name] = &entry{value: value, origin: OriginUser}
}

// SetInherited writes a user-origin property flagged as inherited. The flag
// only matters to the cross-store copy operations.
func (s *Store) SetInherited(name, value string) {
	s.entries[name] = &entry{value: value, origin: OriginUser, inherited: true}
}

// Seed is the bootstrap write used for environment and built-in facts. It
// behaves like Set but with system origin and without logging.
func (s *Store) Seed(name, value string) {
	if e, ok := s.entries[name]; ok && e.origin == OriginUser {
		return
	}
	s.entries[name] = &entry{value: value, origin: OriginSystem}
}

// Get returns the value for name with all embedded ${other} placeholders
// recursively expanded against this store. The second result reports whether
// the key exists; the error reports an unterminated placeholder in any value
// on the expansion path.
func (s *Store) Get(name string) (string, bool, error) {
	e, ok := s.entries[name]
	if !ok {
		return "", false, nil
	}
	expanded, err := s.expand(e.value, map[string]bool{name: true})
	if err != nil {
		return "", true, err
	}
	return expanded, true, nil
}

// Raw returns the stored, unexpanded value for name.
func (s *Store) Raw(name string) (string, bool) {
	e, ok := s.entries[name]
	if !ok {
		return "", false
	}
	return e.value, true
}

// Origin reports the origin layer of an existing key.
func (s *Store) Origin(name string) (Origin, bool) {
	e, ok := s.entries[name]
	if !ok {
		return 0, false
	}
	return e.origin, true
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	return len(s.entries)
}

// CopyUserProperties copies every user-origin entry not flagged inherited
// into dst as a user property.
func (s *Store) CopyUserProperties(dst *Store) {
	for name, e := range s.entries {
		if e.origin != OriginUser || e.inherited {
			continue
		}
		dst.SetUser(name, e.value)
	}
}

// CopyInheritedProperties copies every user-origin entry into dst as an
// inherited property, skipping keys dst already holds as its own user
// property. Inherited values never clobber explicit user values.
func (s *Store) CopyInheritedProperties(dst *Store) {
	for name, e := range s.entries {
		if e.origin != OriginUser {
			continue
		}
		if d, ok := dst.entries[name]; ok && d.origin == OriginUser {
			continue
		}
		dst.SetInherited(name, e.value)
	}
}
