// Package events implements the synchronous build-lifecycle notification
// mechanism. A Bus multicasts every notification to all registered listeners,
// in registration order, before the triggering operation proceeds.
package events

// Severity classifies a logged build message.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarn
	SeverityInfo
	SeverityVerbose
	SeverityDebug
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarn:
		return "warn"
	case SeverityInfo:
		return "info"
	case SeverityVerbose:
		return "verbose"
	case SeverityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Event is the bundle delivered to listeners for a single notification.
// It is constructed per notification and never stored by the bus.
type Event struct {
	// Project is the name of the project the event originated from.
	Project string
	// Target is the name of the target in scope, if any.
	Target string
	// Step is the logical name of the step in scope, if any.
	Step string
	// Message and Severity are set for message-logged notifications.
	Message  string
	Severity Severity
	// Err carries the failure for *-finished notifications, nil on success.
	Err error
}

// Listener receives build-lifecycle notifications. Implementations are
// invoked synchronously on the build goroutine; anything they raise
// propagates to the caller and aborts the run.
type Listener interface {
	BuildStarted(e Event)
	BuildFinished(e Event)
	TargetStarted(e Event)
	TargetFinished(e Event)
	StepStarted(e Event)
	StepFinished(e Event)
	MessageLogged(e Event)
}
