package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttach_WritesLevelPrefixes(t *testing.T) {
	var buf bytes.Buffer
	Attach(&buf)
	defer Close()

	InfoLog.Printf("mounted %d items", 3)
	WarningLog.Printf("refused")
	ErrorLog.Printf("broken")

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "mounted 3 items")
	assert.Contains(t, out, "WARNING:")
	assert.Contains(t, out, "ERROR:")
}

func TestClose_DiscardsAfterwards(t *testing.T) {
	var buf bytes.Buffer
	Attach(&buf)
	Close()

	InfoLog.Printf("dropped")
	assert.Empty(t, buf.String())
}
