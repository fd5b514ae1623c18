package tablist

import "fmt"

// focusStatus is the router's coarse state; the tracked index lives beside it.
type focusStatus string

const (
	statusUnfocused focusStatus = "unfocused"
	statusTracking  focusStatus = "tracking"
)

// focusEvent triggers a router transition.
type focusEvent string

const (
	eventHeaderFocused focusEvent = "header_focused"
	eventPanelFocused  focusEvent = "panel_focused"
	eventNavigated     focusEvent = "navigated"
	eventReset         focusEvent = "reset"
)

// focusTransitions defines all valid router transitions.
// Key: current status → event → new status.
var focusTransitions = map[focusStatus]map[focusEvent]focusStatus{
	statusUnfocused: {
		eventHeaderFocused: statusTracking,
		eventPanelFocused:  statusTracking,
		eventNavigated:     statusTracking,
		eventReset:         statusUnfocused,
	},
	statusTracking: {
		eventHeaderFocused: statusTracking,
		eventPanelFocused:  statusTracking,
		eventNavigated:     statusTracking,
		eventReset:         statusUnfocused,
	},
}

func applyFocusTransition(current focusStatus, event focusEvent) (focusStatus, error) {
	events, ok := focusTransitions[current]
	if !ok {
		return "", fmt.Errorf("no transitions defined for status %q", current)
	}
	next, ok := events[event]
	if !ok {
		return "", fmt.Errorf("invalid transition: %q + %q", current, event)
	}
	return next, nil
}

// routerState is {unfocused} or {tracking(current)}.
type routerState struct {
	status  focusStatus
	current int
}

func newRouterState() routerState {
	return routerState{status: statusUnfocused, current: -1}
}

func (r *routerState) track(event focusEvent, index int) error {
	next, err := applyFocusTransition(r.status, event)
	if err != nil {
		return err
	}
	r.status = next
	r.current = index
	return nil
}

func (r *routerState) reset() {
	r.status = statusUnfocused
	r.current = -1
}

func (r routerState) tracking() bool {
	return r.status == statusTracking
}
