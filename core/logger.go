package core

// Logger is the logging contract used across the app.
// Implementations may interpret trailing args as structured context
// (errors, maps, the acting portal identity).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
