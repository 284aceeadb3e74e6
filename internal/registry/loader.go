package registry

import "fmt"

// Factory constructs one fresh instance of a registered implementation.
type Factory func() any

// Module is implemented by compiled-in module packages; each registers its
// implementations with the built-in loader at startup.
type Module interface {
	Register(l *BuiltinLoader)
}

// Loader resolves an implementation descriptor to a constructible handle.
// The built-in loader is backed by compiled-in modules; alternative loaders
// can resolve descriptors from anywhere else.
type Loader interface {
	// Resolve returns the factory for the given descriptor. hint is an
	// optional load-path hint and may be empty.
	Resolve(descriptor, hint string) (Factory, error)
}

// BuiltinLoader resolves descriptors against implementations registered by
// the modules compiled into the binary.
type BuiltinLoader struct {
	factories map[string]Factory
}

// NewBuiltinLoader returns an empty loader.
func NewBuiltinLoader() *BuiltinLoader {
	return &BuiltinLoader{factories: make(map[string]Factory)}
}

// Register binds a descriptor to a factory. Registering the same descriptor
// twice is a programmer error.
func (l *BuiltinLoader) Register(descriptor string, factory Factory) {
	if _, ok := l.factories[descriptor]; ok {
		panic(fmt.Sprintf("implementation %q already registered", descriptor))
	}
	l.factories[descriptor] = factory
}

// Resolve implements Loader.
func (l *BuiltinLoader) Resolve(descriptor, hint string) (Factory, error) {
	f, ok := l.factories[descriptor]
	if !ok {
		return nil, fmt.Errorf("implementation %q not found", descriptor)
	}
	return f, nil
}
