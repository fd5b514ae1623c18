package ui

import "fmt"

// Zone IDs for bubblezone hit detection. The same IDs are used in render
// paths (zone.Mark) and input paths (zone.Get().InBounds).

// HeaderZoneID returns the zone ID for the header at index idx.
func HeaderZoneID(idx int) string {
	return fmt.Sprintf("zone-header-%d", idx)
}

// PanelZoneID returns the zone ID for the panel at index idx.
func PanelZoneID(idx int) string {
	return fmt.Sprintf("zone-panel-%d", idx)
}
