// Package logger provides the colored, component-prefixed logger used
// across the application, backed by logrus.
package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

// ErrEmptyPrefix indicates a logger was requested without a component name.
var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes component-prefixed log lines through logrus.
type Logger struct {
	log    *logrus.Logger
	prefix string
}

// New creates a logger whose lines carry the given component prefix in the
// given ANSI color, writing to out.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &Logger{
		log:    log,
		prefix: fmt.Sprintf("%s[%s]%s", color, prefix, colorReset),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Infof("%s %s", l.prefix, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.log.Warnf("%s %s", l.prefix, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.log.Errorf("%s %s", l.prefix, msg)
}
