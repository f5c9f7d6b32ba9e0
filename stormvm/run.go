package stormvm

// Interrupt is a non-error condition surfaced to the caller mid-run.
type Interrupt struct {
	Dump bool
}

var InterruptDump = &Interrupt{
	Dump: true,
}

// Run steps the VM until it halts. Interrupts and fatal errors are pushed
// through yield; returning false from yield stops the loop. A fatal error
// always stops it. Usable as `for _, err := range vm.Run`.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for !v.Halted {
		interrupt, err := v.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if interrupt != nil {
			if !yield(interrupt, nil) {
				return
			}
		}
	}
}
