package logging

// NullLogger discards all log messages. Useful in tests and for library
// callers that do not want any output.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

// Verbose discards the message.
func (l *NullLogger) Verbose(format string, args ...interface{}) {}

// Info discards the message.
func (l *NullLogger) Info(format string, args ...interface{}) {}

// Warn discards the message.
func (l *NullLogger) Warn(format string, args ...interface{}) {}

// Error discards the message.
func (l *NullLogger) Error(format string, args ...interface{}) {}
