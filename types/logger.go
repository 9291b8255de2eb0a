package types

// Logger defines methods for structured logging.
//
// The method set matches zap.SugaredLogger, and internal/logging adapts log/slog
// to it. Every method accepts alternating key-value pairs for structured fields,
// e.g. logger.Warn("subscription not found", "topic", topic).
type Logger interface {
	// Debug logs topic transitions and pruning details.
	Debug(msg string, keysAndValues ...any)

	// Info logs rare, operator-relevant events such as a bridge resuming upstream topics.
	Info(msg string, keysAndValues ...any)

	// Warn logs non-fatal diagnostics such as a Remove of an unregistered handle.
	Warn(msg string, keysAndValues ...any)

	// Error logs failures of external collaborators (upstream subscribe, KV writes).
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message and is expected to terminate the process.
	// Only the CLI calls it; library code never does.
	Fatal(msg string, keysAndValues ...any)
}
