package sentry

import (
	"os"
	"runtime"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

const (
	// DSNEnv names the environment variable holding the Sentry DSN. Without it
	// crash reporting stays off.
	DSNEnv = "TABLIST_SENTRY_DSN"
	// EnvironmentEnv optionally names the deployment environment.
	EnvironmentEnv = "TABLIST_ENV"

	flushTimeout = 2 * time.Second
)

// dsn is a package-level var so tests can override it.
var dsn = os.Getenv(DSNEnv)

// enabled tracks whether sentry was successfully initialized.
var enabled bool

func environment() string {
	if env := os.Getenv(EnvironmentEnv); env != "" {
		return env
	}
	return "production"
}

func clientOptions(version string) gosentry.ClientOptions {
	return gosentry.ClientOptions{
		Dsn:              dsn,
		Release:          "tablist@" + version,
		Environment:      environment(),
		AttachStacktrace: true,
		SampleRate:       1.0,
		MaxBreadcrumbs:   50,
	}
}

func scopeTags(version string) map[string]string {
	return map[string]string{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"go_version": runtime.Version(),
		"version":    version,
	}
}

// Init initializes the Sentry SDK. When telemetryEnabled is false or dsn is
// empty, it no-ops silently and every other function here stays a no-op.
func Init(version string, telemetryEnabled bool) error {
	enabled = false
	if !telemetryEnabled || dsn == "" {
		return nil
	}
	if err := gosentry.Init(clientOptions(version)); err != nil {
		return err
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTags(scopeTags(version))
	})
	enabled = true
	return nil
}

// IsEnabled returns whether sentry is active.
func IsEnabled() bool {
	return enabled
}

// Flush waits for buffered events to be sent.
func Flush() {
	if !enabled {
		return
	}
	gosentry.Flush(flushTimeout)
}

// RecoverPanic captures a panic to Sentry, flushes, then re-panics.
// Usage: defer sentry.RecoverPanic()
func RecoverPanic() {
	if !enabled {
		return
	}
	if err := recover(); err != nil {
		gosentry.CurrentHub().Recover(err)
		gosentry.Flush(flushTimeout)
		panic(err)
	}
}

// SetContext records which markup and widget the session is driving.
func SetContext(source string, mode string, items int) {
	if !enabled {
		return
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("mode", mode)
		scope.SetContext("tablist", map[string]interface{}{
			"source": source,
			"mode":   mode,
			"items":  items,
		})
	})
}

// WidgetEvent leaves a breadcrumb for an open or close so a later crash shows
// how the user got there.
func WidgetEvent(message string) {
	if !enabled {
		return
	}
	gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
		Type:     "user",
		Category: "tablist.widget",
		Message:  message,
		Level:    gosentry.LevelInfo,
	})
}

// CaptureError reports a startup failure such as markup that does not mount.
func CaptureError(err error, source string) {
	if !enabled || err == nil {
		return
	}
	gosentry.WithScope(func(scope *gosentry.Scope) {
		scope.SetTag("source", source)
		gosentry.CaptureException(err)
	})
}
