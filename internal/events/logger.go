package events

import "log/slog"

// LoggerListener forwards build-lifecycle notifications to a *slog.Logger.
// The application installs one of these on every orchestrator so that engine
// progress surfaces as ordinary structured logging.
type LoggerListener struct {
	logger *slog.Logger
}

// NewLoggerListener returns a listener writing to the given logger.
func NewLoggerListener(logger *slog.Logger) *LoggerListener {
	return &LoggerListener{logger: logger}
}

func (ll *LoggerListener) BuildStarted(e Event) {
	ll.logger.Info("Build started.", "project", e.Project)
}

func (ll *LoggerListener) BuildFinished(e Event) {
	if e.Err != nil {
		ll.logger.Error("Build failed.", "project", e.Project, "error", e.Err)
		return
	}
	ll.logger.Info("Build finished successfully.", "project", e.Project)
}

func (ll *LoggerListener) TargetStarted(e Event) {
	ll.logger.Info("Target started.", "target", e.Target)
}

func (ll *LoggerListener) TargetFinished(e Event) {
	if e.Err != nil {
		ll.logger.Error("Target failed.", "target", e.Target, "error", e.Err)
		return
	}
	ll.logger.Debug("Target finished.", "target", e.Target)
}

func (ll *LoggerListener) StepStarted(e Event) {
	ll.logger.Debug("Step started.", "target", e.Target, "step", e.Step)
}

func (ll *LoggerListener) StepFinished(e Event) {
	if e.Err != nil {
		ll.logger.Error("Step failed.", "target", e.Target, "step", e.Step, "error", e.Err)
		return
	}
	ll.logger.Debug("Step finished.", "target", e.Target, "step", e.Step)
}

func (ll *LoggerListener) MessageLogged(e Event) {
	attrs := []any{"target", e.Target, "step", e.Step}
	switch e.Severity {
	case SeverityError:
		ll.logger.Error(e.Message, attrs...)
	case SeverityWarn:
		ll.logger.Warn(e.Message, attrs...)
	case SeverityInfo:
		ll.logger.Info(e.Message, attrs...)
	default:
		ll.logger.Debug(e.Message, attrs...)
	}
}
