package core

// Logger is any leveled logging service.
// Error and Fatal may receive extra args (errors, the acting user, context maps)
// that implementations are free to report however they see fit.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
