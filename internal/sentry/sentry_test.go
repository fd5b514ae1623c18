package sentry

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_Disabled(t *testing.T) {
	err := Init("0.1.0", false)
	assert.NoError(t, err)
	assert.False(t, IsEnabled())

	// Every other entry point is a safe no-op.
	Flush()
	SetContext("sample.html", "accordion", 3)
	WidgetEvent("opened General")
	CaptureError(errors.New("boom"), "sample")
	func() {
		defer RecoverPanic()
	}()
}

func TestInit_EmptyDSN(t *testing.T) {
	origDSN := dsn
	dsn = ""
	defer func() { dsn = origDSN }()

	err := Init("0.1.0", true)
	assert.NoError(t, err)
	assert.False(t, IsEnabled())
}

func TestClientOptions(t *testing.T) {
	t.Setenv(EnvironmentEnv, "")
	opts := clientOptions("1.2.3")
	assert.Equal(t, "tablist@1.2.3", opts.Release)
	assert.Equal(t, "production", opts.Environment)
	assert.True(t, opts.AttachStacktrace)

	t.Setenv(EnvironmentEnv, "dev")
	assert.Equal(t, "dev", clientOptions("1.2.3").Environment)
}

func TestScopeTags(t *testing.T) {
	tags := scopeTags("1.2.3")
	assert.Equal(t, "1.2.3", tags["version"])
	assert.Equal(t, runtime.GOOS, tags["os"])
	assert.Equal(t, runtime.GOARCH, tags["arch"])
}
