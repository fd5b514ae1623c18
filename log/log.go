package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kastheco/tablist/internal/sentry"
)

const logFileName = "tablist.log"

var (
	// InfoLog, WarningLog and ErrorLog discard output until Initialize runs,
	// so library code can log unconditionally.
	InfoLog    = log.New(io.Discard, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(io.Discard, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog   = log.New(io.Discard, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
)

var logFile *os.File

// LogPath is where Initialize writes.
func LogPath() string {
	return filepath.Join(os.TempDir(), logFileName)
}

// Initialize opens the log file and points the loggers at it. Every line is
// also offered to sentry (a no-op unless sentry.Init enabled it).
func Initialize() {
	f, err := os.OpenFile(LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
		return
	}
	logFile = f
	Attach(f)
}

// Attach points the loggers at w. Tests use it to capture output.
func Attach(w io.Writer) {
	InfoLog = log.New(sentry.NewWriter(w, sentry.LevelInfo), "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(sentry.NewWriter(w, sentry.LevelWarning), "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(sentry.NewWriter(w, sentry.LevelError), "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
}

// Close flushes the log file and reverts the loggers to discarding.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	InfoLog.SetOutput(io.Discard)
	WarningLog.SetOutput(io.Discard)
	ErrorLog.SetOutput(io.Discard)
}
