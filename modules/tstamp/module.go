// Package tstamp provides the tstamp step: it seeds the DSTAMP, TSTAMP, and
// TODAY properties from the current time, matching the conventional build
// timestamp format.
package tstamp

import (
	"context"
	"time"

	"github.com/vk/anvilgo/internal/registry"
	"github.com/vk/anvilgo/internal/task"
)

// Module registers this package's implementations.
type Module struct{}

// Register implements registry.Module.
func (m *Module) Register(l *registry.BuiltinLoader) {
	l.Register("TstampStep", func() any { return &Step{now: time.Now} })
}

// Step writes the timestamp properties when run. It takes no attributes.
type Step struct {
	project task.Project
	name    string
	now     func() time.Time
}

func (s *Step) Bind(p task.Project) { s.project = p }
func (s *Step) SetStepName(name string) { s.name = name }

// Run seeds DSTAMP (yyyymmdd), TSTAMP (hhmm), and TODAY (long form).
func (s *Step) Run(ctx context.Context) error {
	t := s.now()
	s.project.SetProperty("DSTAMP", t.Format("20060102"))
	s.project.SetProperty("TSTAMP", t.Format("1504"))
	s.project.SetProperty("TODAY", t.Format("January 2 2006"))
	return nil
}
