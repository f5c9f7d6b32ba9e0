package stormvm

import "fmt"

// BoundaryPolicy decides what a pointer move past either end of the tape
// does.
type BoundaryPolicy uint8

const (
	PolicyError BoundaryPolicy = iota // moving past the boundary is fatal
	PolicyWrap                        // pointer wraps to the opposite end
	PolicyClamp                       // pointer saturates at the boundary
)

func (p BoundaryPolicy) String() string {
	switch p {
	case PolicyError:
		return "error"
	case PolicyWrap:
		return "wrap"
	case PolicyClamp:
		return "clamp"
	}
	return fmt.Sprintf("BoundaryPolicy(%d)", uint8(p))
}

func ParseBoundaryPolicy(str string) (BoundaryPolicy, error) {
	switch str {
	case "error":
		return PolicyError, nil
	case "wrap":
		return PolicyWrap, nil
	case "clamp":
		return PolicyClamp, nil
	}
	return 0, fmt.Errorf("unknown pointer boundary policy: %q", str)
}

// EofBehavior decides what a read instruction does once input is
// exhausted. Only EofFatal treats end of input as an error.
type EofBehavior uint8

const (
	EofLeaveUnchanged EofBehavior = iota
	EofWriteZero
	EofWriteMinusOne // 255 under wrapping
	EofFatal
)

func (b EofBehavior) String() string {
	switch b {
	case EofLeaveUnchanged:
		return "keep"
	case EofWriteZero:
		return "zero"
	case EofWriteMinusOne:
		return "minus-one"
	case EofFatal:
		return "fatal"
	}
	return fmt.Sprintf("EofBehavior(%d)", uint8(b))
}

func ParseEofBehavior(str string) (EofBehavior, error) {
	switch str {
	case "keep":
		return EofLeaveUnchanged, nil
	case "zero":
		return EofWriteZero, nil
	case "minus-one":
		return EofWriteMinusOne, nil
	case "fatal":
		return EofFatal, nil
	}
	return 0, fmt.Errorf("unknown eof behavior: %q", str)
}

const DefaultTapeSize = 64 * 1024

type Config struct {
	TapeSize   int
	Eof        EofBehavior
	Policy     BoundaryPolicy
	StateDumps bool
}

func DefaultConfig() Config {
	return Config{
		TapeSize: DefaultTapeSize,
		Eof:      EofLeaveUnchanged,
		Policy:   PolicyError,
	}
}
