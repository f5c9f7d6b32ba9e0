package stormvm

// Tape is the machine memory: fixed-size wrapping byte cells and a pointer.
// The pointer always addresses a valid cell; Move enforces the boundary
// policy before committing.
type Tape struct {
	cells  []byte
	ptr    int
	policy BoundaryPolicy
}

func NewTape(size int, policy BoundaryPolicy) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	return &Tape{
		cells:  make([]byte, size),
		policy: policy,
	}
}

// Adjust adds delta to the current cell, wrapping mod 256.
func (t *Tape) Adjust(delta int) {
	t.cells[t.ptr] = byte(int(t.cells[t.ptr]) + delta)
}

// Move shifts the pointer by delta under the boundary policy. Under
// PolicyError the pointer is left untouched and a *BoundaryError carrying
// the attempted position is returned.
func (t *Tape) Move(delta int) error {
	next := t.ptr + delta
	if next >= 0 && next < len(t.cells) {
		t.ptr = next
		return nil
	}

	switch t.policy {
	case PolicyWrap:
		next %= len(t.cells)
		if next < 0 {
			next += len(t.cells)
		}
		t.ptr = next

	case PolicyClamp:
		if next < 0 {
			t.ptr = 0
		} else {
			t.ptr = len(t.cells) - 1
		}

	default:
		return &BoundaryError{
			Ptr: next,
		}
	}
	return nil
}

func (t *Tape) Read() byte {
	return t.cells[t.ptr]
}

func (t *Tape) Write(b byte) {
	t.cells[t.ptr] = b
}

func (t *Tape) Ptr() int {
	return t.ptr
}

func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells returns a copy of the tape contents.
func (t *Tape) Cells() []byte {
	snapshot := make([]byte, len(t.cells))
	copy(snapshot, t.cells)
	return snapshot
}
