package stormvm

import "io"

// Execute is the plain-run entry point: it builds a fresh VM over prog,
// runs it to completion, and returns the final tape. On a fatal error the
// tape is still returned so the failure state can be inspected.
func Execute(prog *Program, config Config, input io.Reader, output io.Writer) (*Tape, error) {
	vm := NewVM(prog, config, input, output)
	var runErr error
	vm.Run(func(interrupt *Interrupt, err error) bool {
		if err != nil {
			runErr = err
			return false
		}
		if interrupt.Dump {
			io.WriteString(vm.DumpWriter, DumpState(vm))
		}
		return true
	})
	return vm.Tape, runErr
}
