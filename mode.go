package tablist

// Mode is the behavior captured from aria-multiselectable at mount.
type Mode int

const (
	// LegacyTabOnly applies when aria-multiselectable is absent: one panel
	// is open and it can only be replaced, never collapsed.
	LegacyTabOnly Mode = iota
	// SingleSelect applies for aria-multiselectable="false".
	SingleSelect
	// Accordion applies for aria-multiselectable="true".
	Accordion
)

func (m Mode) String() string {
	switch m {
	case LegacyTabOnly:
		return "legacy-tab-only"
	case SingleSelect:
		return "single-select"
	case Accordion:
		return "accordion"
	}
	return "unknown"
}

// multiselectable reports whether several panels may be open at once.
func (m Mode) multiselectable() bool {
	return m == Accordion
}

// collapsible reports whether an open panel may be closed without opening
// another one.
func (m Mode) collapsible() bool {
	return m != LegacyTabOnly
}

func modeOf(c Container) Mode {
	v, ok := c.Attr(AttrMultiselectable)
	if !ok {
		return LegacyTabOnly
	}
	if v == "true" {
		return Accordion
	}
	return SingleSelect
}
