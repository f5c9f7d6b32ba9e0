package debugs

import "fmt"

// RunState is the session's position in the pause/run/halt/error state
// machine. A session starts in StatePausedByStep, stopped before the
// first instruction, so state can be inspected before anything executes.
type RunState uint8

const (
	StatePausedByStep RunState = iota
	StatePausedAtBreakpoint
	StateRunning
	StateHalted
	StateErrored
)

func (s RunState) String() string {
	switch s {
	case StatePausedByStep:
		return "paused"
	case StatePausedAtBreakpoint:
		return "paused at breakpoint"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	case StateErrored:
		return "errored"
	}
	return fmt.Sprintf("RunState(%d)", uint8(s))
}

// Paused reports whether execution commands are accepted in this state.
func (s RunState) Paused() bool {
	return s == StatePausedByStep || s == StatePausedAtBreakpoint
}

// Terminal reports whether the machine can run any further.
func (s RunState) Terminal() bool {
	return s == StateHalted || s == StateErrored
}
