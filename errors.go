package tablist

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("tablist configuration error")

// ConfigurationError reports malformed markup found at mount. It is fatal:
// the mount is abandoned before any attribute is written.
type ConfigurationError struct {
	// Element identifies the offending node (id, or position when it has none).
	Element string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Element == "" {
		return fmt.Sprintf("%v: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConfiguration, e.Element, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
