package graph

import (
	"github.com/vk/anvilgo/internal/events"
	"github.com/vk/anvilgo/internal/task"
)

// fakeProject is a minimal task.Project for target-gating tests.
type fakeProject struct {
	props map[string]string
}

var _ task.Project = (*fakeProject)(nil)

func (f *fakeProject) Name() string { return "fake" }
func (f *fakeProject) BaseDir() string { return "." }

func (f *fakeProject) Property(name string) (string, bool) {
	v, ok := f.props[name]
	return v, ok
}

func (f *fakeProject) SetProperty(name, value string) {
	f.props[name] = value
}

func (f *fakeProject) ReplaceProperties(text string) (string, error) {
	return text, nil
}

func (f *fakeProject) Reference(id string) (any, bool) { return nil, false }

func (f *fakeProject) Log(message string, severity events.Severity) {}
