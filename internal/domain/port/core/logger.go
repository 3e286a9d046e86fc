package core

// Logger defines the structured logging operations the domain relies on.
// Implementations decide encoding and destination; the minimum level is fixed
// at construction time from configuration.
type Logger interface {
	// Debug logs detailed diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs general operational messages
	Info(message string, fields map[string]any)
	// Warn logs recoverable problems
	Warn(message string, fields map[string]any)
	// Error logs failures
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
