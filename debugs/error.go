package debugs

import (
	"errors"
	"fmt"
)

// ErrSessionOver rejects execution commands once the session is halted,
// errored, or quit. Inspection stays valid against the last-known state.
var ErrSessionOver = errors.New("session is over")

// NameError reports a breakpoint reference to a unit that does not exist.
// It never changes the session's run-state.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("no such unit: %q", e.Name)
}
