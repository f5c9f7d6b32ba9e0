package stormvm

import (
	"bytes"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	prog := compile(t, "++>+")
	vm := NewVM(prog, testConfig(), strings.NewReader(""), &bytes.Buffer{})
	for range 2 {
		if _, err := vm.Step(); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := vm.Snapshot(&buf); err != nil {
		t.Fatal(err)
	}

	restored := NewVM(prog, testConfig(), strings.NewReader(""), &bytes.Buffer{})
	if err := restored.Restore(&buf); err != nil {
		t.Fatal(err)
	}

	if restored.IP != vm.IP {
		t.Fatalf("got IP %d, want %d", restored.IP, vm.IP)
	}
	if restored.Tape.Ptr() != vm.Tape.Ptr() {
		t.Fatalf("got ptr %d, want %d", restored.Tape.Ptr(), vm.Tape.Ptr())
	}
	if !bytes.Equal(restored.Tape.Cells(), vm.Tape.Cells()) {
		t.Fatal("cells mismatch")
	}

	// the restored VM runs to the same final state
	restored.Run(func(interrupt *Interrupt, err error) bool {
		if err != nil {
			t.Fatal(err)
		}
		return true
	})
	if !restored.Halted {
		t.Fatal()
	}
	if restored.Tape.Cells()[0] != 2 || restored.Tape.Cells()[1] != 1 {
		t.Fatalf("got %v", restored.Tape.Cells()[:2])
	}
}
