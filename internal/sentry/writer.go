package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level is the severity a Writer forwards at.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "info"
}

// Writer tees log lines to an inner writer and to Sentry: errors become
// events, anything lower becomes a breadcrumb on the current scope.
type Writer struct {
	inner io.Writer
	level Level
}

// NewWriter wraps inner.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	if !enabled {
		return n, err
	}

	msg := strings.TrimSpace(string(p))
	if msg == "" {
		return n, err
	}

	if w.level == LevelError {
		gosentry.CaptureMessage(msg)
		return n, err
	}
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Level:    breadcrumbLevel(w.level),
		Category: "tablist",
		Message:  msg,
	})
	return n, err
}

func breadcrumbLevel(l Level) gosentry.Level {
	if l == LevelWarning {
		return gosentry.LevelWarning
	}
	return gosentry.LevelInfo
}
