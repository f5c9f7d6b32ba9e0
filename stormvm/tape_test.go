package stormvm

import (
	"errors"
	"testing"
)

func TestCellWrap(t *testing.T) {
	for _, policy := range []BoundaryPolicy{PolicyError, PolicyWrap, PolicyClamp} {
		tape := NewTape(8, policy)
		tape.Adjust(255)
		if tape.Read() != 255 {
			t.Fatalf("got %d", tape.Read())
		}
		tape.Adjust(1)
		if tape.Read() != 0 {
			t.Fatalf("%v: 255+1 should wrap to 0", policy)
		}
		tape.Adjust(-1)
		if tape.Read() != 255 {
			t.Fatalf("%v: 0-1 should wrap to 255", policy)
		}
	}
}

func TestMoveWithinBounds(t *testing.T) {
	tape := NewTape(8, PolicyError)
	if err := tape.Move(7); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 7 {
		t.Fatalf("got %d", tape.Ptr())
	}
	if err := tape.Move(-7); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 0 {
		t.Fatalf("got %d", tape.Ptr())
	}
}

func TestMovePolicyError(t *testing.T) {
	tape := NewTape(8, PolicyError)
	err := tape.Move(-1)
	var boundaryErr *BoundaryError
	if !errors.As(err, &boundaryErr) {
		t.Fatalf("got %v", err)
	}
	if boundaryErr.Ptr != -1 {
		t.Fatalf("got %d", boundaryErr.Ptr)
	}
	// pointer untouched
	if tape.Ptr() != 0 {
		t.Fatalf("got %d", tape.Ptr())
	}

	err = tape.Move(8)
	if !errors.As(err, &boundaryErr) {
		t.Fatalf("got %v", err)
	}
	if boundaryErr.Ptr != 8 {
		t.Fatalf("got %d", boundaryErr.Ptr)
	}
}

func TestMovePolicyWrap(t *testing.T) {
	tape := NewTape(8, PolicyWrap)
	if err := tape.Move(-1); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 7 {
		t.Fatalf("got %d", tape.Ptr())
	}
	if err := tape.Move(3); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 2 {
		t.Fatalf("got %d", tape.Ptr())
	}
	if err := tape.Move(17); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 3 {
		t.Fatalf("got %d", tape.Ptr())
	}
}

func TestMovePolicyClamp(t *testing.T) {
	tape := NewTape(8, PolicyClamp)
	if err := tape.Move(-5); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 0 {
		t.Fatalf("got %d", tape.Ptr())
	}
	if err := tape.Move(100); err != nil {
		t.Fatal(err)
	}
	if tape.Ptr() != 7 {
		t.Fatalf("got %d", tape.Ptr())
	}
}

func TestCellsSnapshot(t *testing.T) {
	tape := NewTape(4, PolicyError)
	tape.Write(42)
	cells := tape.Cells()
	cells[0] = 99
	if tape.Read() != 42 {
		t.Fatal("snapshot must not alias tape memory")
	}
}
