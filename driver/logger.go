package driver

import "log"

// Logger is the small logging seam RunIteration reports through. No
// structured-logging library appears anywhere in the retrieved pack, so
// this stays on the standard library: DefaultLogger wraps log.Logger, the
// same way gridroute's other packages prefer doc comments precise enough
// that callers need no external logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger adapts the standard library's log.Logger to Logger,
// prefixing each level so iteration output stays greppable.
type DefaultLogger struct {
	*log.Logger
}

// NewDefaultLogger returns a DefaultLogger writing through l.
func NewDefaultLogger(l *log.Logger) DefaultLogger {
	return DefaultLogger{Logger: l}
}

func (d DefaultLogger) Infof(format string, args ...interface{}) {
	d.Printf("INFO "+format, args...)
}

func (d DefaultLogger) Warnf(format string, args ...interface{}) {
	d.Printf("WARN "+format, args...)
}

func (d DefaultLogger) Errorf(format string, args ...interface{}) {
	d.Printf("ERROR "+format, args...)
}
