package events

import "reflect"

// Bus is a synchronous multicast dispatcher for build-lifecycle
// notifications. It is owned by exactly one orchestrator and is not safe for
// concurrent use; the execution model is strictly single-threaded.
type Bus struct {
	listeners []Listener
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// AddListener registers a listener. Listeners are notified in registration
// order.
func (b *Bus) AddListener(l Listener) {
	b.listeners = append(b.listeners, l)
}

// RemoveListener removes a previously registered listener, matched by
// identity. Listeners are expected to be registered as pointers; a listener
// of a non-comparable dynamic type can never match and is ignored rather
// than letting the comparison panic. Removing a listener that was never
// registered is a no-op.
func (b *Bus) RemoveListener(l Listener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}
	for i, reg := range b.listeners {
		if reg == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the current registration count.
func (b *Bus) Listeners() int {
	return len(b.listeners)
}

// FireBuildStarted notifies all listeners that the build is starting.
func (b *Bus) FireBuildStarted(e Event) {
	for _, l := range b.listeners {
		l.BuildStarted(e)
	}
}

// FireBuildFinished notifies all listeners that the build ended; e.Err holds
// the failure, if any.
func (b *Bus) FireBuildFinished(e Event) {
	for _, l := range b.listeners {
		l.BuildFinished(e)
	}
}

// FireTargetStarted notifies all listeners that a target is about to run.
func (b *Bus) FireTargetStarted(e Event) {
	for _, l := range b.listeners {
		l.TargetStarted(e)
	}
}

// FireTargetFinished notifies all listeners that a target ended.
func (b *Bus) FireTargetFinished(e Event) {
	for _, l := range b.listeners {
		l.TargetFinished(e)
	}
}

// FireStepStarted notifies all listeners that a step is about to run.
func (b *Bus) FireStepStarted(e Event) {
	for _, l := range b.listeners {
		l.StepStarted(e)
	}
}

// FireStepFinished notifies all listeners that a step ended.
func (b *Bus) FireStepFinished(e Event) {
	for _, l := range b.listeners {
		l.StepFinished(e)
	}
}

// FireMessageLogged delivers a log message to all listeners.
func (b *Bus) FireMessageLogged(e Event) {
	for _, l := range b.listeners {
		l.MessageLogged(e)
	}
}
