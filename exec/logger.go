package exec

import "log/slog"

// Logger receives the command lines and failure output a Runner logs.
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Error logs an error message.
	Error(msg string)
}

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Error(string) {}

// NopLogger returns a Logger that discards everything. It is the default.
func NopLogger() Logger {
	return nopLogger{}
}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger backed by logger. If logger is nil,
// slog.Default() is used.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

// Info logs msg at slog.LevelInfo.
func (l *SlogLogger) Info(msg string) {
	l.logger.Info(msg)
}

// Error logs msg at slog.LevelError.
func (l *SlogLogger) Error(msg string) {
	l.logger.Error(msg)
}
