// Package logger provides structured logging backed by logrus, behind a
// small interface so components never depend on the backend directly.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the logging contract used across the application.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithComponent(component string) Logger
}

// Fields is a map of key-value pairs for structured logging.
type Fields map[string]interface{}

// Level represents a log level.
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// Format represents a log output format.
type Format string

const (
	JSONFormat Format = "json"
	TextFormat Format = "text"
)

// Config holds logger options.
type Config struct {
	Level  Level     `json:"level"`
	Format Format    `json:"format"`
	Output io.Writer `json:"-"`
}

// DefaultConfig returns the default logger configuration: info-level text
// on stderr.
func DefaultConfig() *Config {
	return &Config{
		Level:  InfoLevel,
		Format: TextFormat,
		Output: os.Stderr,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Level {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}
	switch c.Format {
	case JSONFormat, TextFormat:
	default:
		return fmt.Errorf("invalid log format: %s", c.Format)
	}
	return nil
}

// logrusLogger implements Logger on a logrus entry so chained fields stick.
type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger from the given configuration, falling back to
// defaults when nil.
func NewLogger(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger configuration: %w", err)
	}

	backend := logrus.New()
	level, err := logrus.ParseLevel(string(config.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	backend.SetLevel(level)

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	backend.SetOutput(out)

	switch config.Format {
	case JSONFormat:
		backend.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		backend.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &logrusLogger{entry: logrus.NewEntry(backend)}, nil
}

func (l *logrusLogger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logrusLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logrusLogger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logrusLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithField(key, value)}
}

func (l *logrusLogger) WithFields(fields Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logrusLogger) WithError(err error) Logger {
	return &logrusLogger{entry: l.entry.WithError(err)}
}

func (l *logrusLogger) WithComponent(component string) Logger {
	return l.WithField("component", component)
}

// Global logger instance, initialized with defaults so library code can log
// before main configures anything.
var globalLogger Logger

func init() {
	var err error
	globalLogger, err = NewLogger(DefaultConfig())
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize logger")
	}
}

// SetGlobalLogger replaces the global logger instance.
func SetGlobalLogger(logger Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance.
func GetGlobalLogger() Logger {
	return globalLogger
}

// Global logging helpers.

func Debug(args ...interface{})                 { globalLogger.Debug(args...) }
func Debugf(format string, args ...interface{}) { globalLogger.Debugf(format, args...) }
func Info(args ...interface{})                  { globalLogger.Info(args...) }
func Infof(format string, args ...interface{})  { globalLogger.Infof(format, args...) }
func Warn(args ...interface{})                  { globalLogger.Warn(args...) }
func Warnf(format string, args ...interface{})  { globalLogger.Warnf(format, args...) }
func Error(args ...interface{})                 { globalLogger.Error(args...) }
func Errorf(format string, args ...interface{}) { globalLogger.Errorf(format, args...) }

// WithField returns the global logger with one field attached.
func WithField(key string, value interface{}) Logger {
	return globalLogger.WithField(key, value)
}

// WithFields returns the global logger with fields attached.
func WithFields(fields Fields) Logger {
	return globalLogger.WithFields(fields)
}

// WithError returns the global logger with an error attached.
func WithError(err error) Logger {
	return globalLogger.WithError(err)
}

// WithComponent returns the global logger tagged with a component name.
func WithComponent(component string) Logger {
	return globalLogger.WithComponent(component)
}
