// Package logger provides a prefixed, colored, leveled logger for the application edges.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-mazegen/config"
)

// Logger writes lines of the form "<color>[PREFIX]<reset> [LEVEL] message".
type Logger struct {
	out *log.Logger
}

// New creates a Logger tagging every line with prefix in the given color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{out: log.New(w, tag, log.LstdFlags|log.Lmsgprefix)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Print("[INFO] " + msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Print("[WARNING] " + msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Print(config.ColorRed + "[ERROR]" + config.ColorReset + " " + msg)
}
