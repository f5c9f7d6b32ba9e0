package stormvm

import (
	"fmt"
	"io"
)

// VM executes one optimized program against one tape. A VM belongs to a
// single driver (plain run or one debugger session) and is not safe for
// concurrent use; the Program it points at may be shared freely.
type VM struct {
	Program *Program
	IP      int
	Tape    *Tape

	Input      io.Reader
	Output     io.Writer
	DumpWriter io.Writer

	Eof    EofBehavior
	Halted bool
	Err    error

	currentUnit int
}

func NewVM(prog *Program, config Config, input io.Reader, output io.Writer) *VM {
	return &VM{
		Program:    prog,
		Tape:       NewTape(config.TapeSize, config.Policy),
		Input:      input,
		Output:     output,
		DumpWriter: io.Discard,
		Eof:        config.Eof,
	}
}

// Step executes exactly one instruction. It returns InterruptDump when the
// program requested a state dump, and a *RunError on fatal errors. A fatal
// error freezes the VM: the tape and IP stay inspectable, and further Step
// calls return the same error.
func (v *VM) Step() (*Interrupt, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	if v.Halted {
		return nil, nil
	}
	if v.IP < 0 || v.IP >= len(v.Program.Code) {
		v.Halted = true
		return nil, nil
	}

	inst := v.Program.Code[v.IP]
	var interrupt *Interrupt

	switch op, arg := inst.Op(), inst.Arg(); op {

	case OpAdjust:
		v.Tape.Adjust(arg)
		v.IP++

	case OpMove:
		if err := v.Tape.Move(arg); err != nil {
			return nil, v.fail(err)
		}
		v.IP++

	case OpLoopOpen:
		if v.Tape.Read() == 0 {
			v.IP = arg + 1
		} else {
			v.IP++
		}

	case OpLoopClose:
		if v.Tape.Read() != 0 {
			v.IP = arg + 1
		} else {
			v.IP++
		}

	case OpRead:
		if err := v.readByte(); err != nil {
			return nil, v.fail(err)
		}
		v.IP++

	case OpWrite:
		if _, err := v.Output.Write([]byte{v.Tape.Read()}); err != nil {
			return nil, v.fail(fmt.Errorf("write output: %w", err))
		}
		v.IP++

	case OpDump:
		interrupt = InterruptDump
		v.IP++

	default:
		return nil, v.fail(fmt.Errorf("bad instruction: %v", inst))
	}

	if v.IP >= len(v.Program.Code) {
		v.Halted = true
	}
	v.syncUnit()

	return interrupt, nil
}

func (v *VM) readByte() error {
	var buf [1]byte
	for {
		n, err := v.Input.Read(buf[:])
		if n > 0 {
			if buf[0] == '\r' {
				// Skip carriage returns from line-buffered terminals.
				continue
			}
			v.Tape.Write(buf[0])
			return nil
		}
		if err == nil {
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}

		switch v.Eof {
		case EofWriteZero:
			v.Tape.Write(0)
		case EofWriteMinusOne:
			v.Tape.Write(255)
		case EofFatal:
			return ErrInputExhausted
		}
		return nil
	}
}

func (v *VM) fail(err error) error {
	v.Err = &RunError{
		IP:  v.IP,
		Err: err,
	}
	return v.Err
}

func (v *VM) syncUnit() {
	units := v.Program.Units
	for v.currentUnit+1 < len(units) && v.IP >= units[v.currentUnit+1].Start {
		v.currentUnit++
	}
	for v.currentUnit > 0 && v.IP < units[v.currentUnit].Start {
		v.currentUnit--
	}
}

// CurrentUnit returns the unit containing the instruction pointer, or nil
// when the program has no units.
func (v *VM) CurrentUnit() (int, string) {
	units := v.Program.Units
	if len(units) == 0 {
		return -1, ""
	}
	return v.currentUnit, units[v.currentUnit].Name
}
