// Package telemetry provides a fire-and-forget usage event sink.
// Reporting never blocks the caller and never returns an error; when
// telemetry is not configured, events are silently dropped.
package telemetry

import "log/slog"

// Where a preview was opened.
const (
	WhereSideBySide = "sideBySide"
	WhereInPlace    = "inPlace"
)

// How a preview open was triggered.
const (
	HowAction  = "action"
	HowPalette = "palette"
)

// Reporter accepts usage events.
type Reporter interface {
	OpenPreview(where, how string)
}

// Noop discards all events.
type Noop struct{}

func (Noop) OpenPreview(_, _ string) {}

// Log reports events as structured log records.
type Log struct {
	Logger *slog.Logger
}

func (l Log) OpenPreview(where, how string) {
	l.Logger.Info("telemetry: openPreview",
		slog.String("where", where),
		slog.String("how", how))
}

// New returns a Log reporter when enabled, otherwise Noop.
func New(enabled bool, logger *slog.Logger) Reporter {
	if enabled && logger != nil {
		return Log{Logger: logger}
	}
	return Noop{}
}
