package sentry

import (
	"bytes"
	"testing"

	gosentry "github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
)

func TestWriter_PassthroughToInner(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, LevelError)

	msg := []byte("tablist mounted on #tabs\n")
	n, err := w.Write(msg)

	assert.NoError(t, err)
	assert.Equal(t, len(msg), n)
	assert.Equal(t, string(msg), buf.String())
}

func TestWriter_BlankLinesWhileEnabled(t *testing.T) {
	enabled = true
	defer func() { enabled = false }()

	var buf bytes.Buffer
	w := NewWriter(&buf, LevelWarning)

	n, err := w.Write([]byte("   \n"))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}

func TestBreadcrumbLevel(t *testing.T) {
	assert.Equal(t, gosentry.LevelWarning, breadcrumbLevel(LevelWarning))
	assert.Equal(t, gosentry.LevelInfo, breadcrumbLevel(LevelInfo))
}
