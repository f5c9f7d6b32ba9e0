package stormvm

import (
	"errors"
	"fmt"
)

// ErrInputExhausted is returned by a read instruction under EofFatal.
var ErrInputExhausted = errors.New("input exhausted")

// BoundaryError reports a pointer move past the tape bounds under
// PolicyError. Ptr is the cell the program tried to address.
type BoundaryError struct {
	Ptr int
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("pointer moved outside of tape: %d", e.Ptr)
}

// RunError is any fatal execution error, annotated with the index of the
// offending instruction. The VM that produced it stays inspectable.
type RunError struct {
	IP  int
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("instruction %d: %v", e.IP, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
