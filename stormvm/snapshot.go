package stormvm

import (
	"encoding/gob"
	"io"
)

// Snapshot is the serializable execution state of a VM: enough to restore
// a paused or failed run over the same program for post-mortem inspection.
type Snapshot struct {
	IP     int
	Ptr    int
	Cells  []byte
	Halted bool
}

func (v *VM) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(Snapshot{
		IP:     v.IP,
		Ptr:    v.Tape.ptr,
		Cells:  v.Tape.Cells(),
		Halted: v.Halted,
	})
}

func (v *VM) Restore(r io.Reader) error {
	var s Snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return err
	}
	v.IP = s.IP
	v.Halted = s.Halted
	v.Err = nil
	v.Tape.cells = s.Cells
	v.Tape.ptr = s.Ptr
	v.syncUnit()
	return nil
}
