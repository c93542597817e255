package logging

import (
	"io"
	"log"
	"os"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger prints leveled messages, discarding anything below its threshold
type Logger struct {
	level int
	out   *log.Logger
}

// New returns a Logger which writes messages at or above level to w
func New(level int, w io.Writer) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// Logf prints a message at the given level
func (l *Logger) Logf(level int, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("["+LogLevelToString(level)+"] "+format, args...)
}

// Infof prints a message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(InfoLevel, format, args...)
}

// Warnf prints a message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(WarnLevel, format, args...)
}

var std = New(InfoLevel, os.Stderr)

// SetOutput redirects the package-level Logger to w
func SetOutput(w io.Writer) {
	std = New(std.level, w)
}

// SetLevel adjusts the threshold of the package-level Logger
func SetLevel(level int) {
	std.level = level
}

// Infof prints a message at InfoLevel via the package-level Logger
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warnf prints a message at WarnLevel via the package-level Logger
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}
