package stormlang

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("+-><[],."))
	if err != nil {
		t.Fatal(err)
	}
	want := []Command{
		CmdInc, CmdDec, CmdRight, CmdLeft,
		CmdLoopOpen, CmdLoopClose, CmdRead, CmdWrite,
	}
	if len(prog.Commands) != len(want) {
		t.Fatalf("got %d commands", len(prog.Commands))
	}
	for i, cmd := range want {
		if prog.Commands[i] != cmd {
			t.Fatalf("command %d: got %v, want %v", i, prog.Commands[i], cmd)
		}
	}
	if len(prog.Units) != 1 || prog.Units[0].Name != "" || prog.Units[0].Start != 0 {
		t.Fatalf("got units %+v", prog.Units)
	}
}

func TestParseIgnoresComments(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("hello + world - # not a dump\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Commands) != 2 {
		t.Fatalf("got %v", prog.Commands)
	}
}

func TestParseStateDumps(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("+#+"), WithStateDumps())
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Commands) != 3 || prog.Commands[1] != CmdDump {
		t.Fatalf("got %v", prog.Commands)
	}
}

func TestParseUnits(t *testing.T) {
	src := `; init
+++
; loop
[-]
; done
`
	prog, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Units) != 3 {
		t.Fatalf("got units %+v", prog.Units)
	}
	if prog.Units[0].Name != "init" || prog.Units[0].Start != 0 {
		t.Fatalf("got %+v", prog.Units[0])
	}
	if prog.Units[1].Name != "loop" || prog.Units[1].Start != 3 {
		t.Fatalf("got %+v", prog.Units[1])
	}
	if prog.Units[2].Name != "done" || prog.Units[2].Start != 6 {
		t.Fatalf("got %+v", prog.Units[2])
	}

	if unit := prog.UnitAt(4); unit.Name != "loop" {
		t.Fatalf("got %+v", unit)
	}
}

func TestParseImplicitUnit(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("++\n; named\n--"))
	if err != nil {
		t.Fatal(err)
	}
	if len(prog.Units) != 2 {
		t.Fatalf("got units %+v", prog.Units)
	}
	if prog.Units[0].Name != "" || prog.Units[0].Start != 0 {
		t.Fatalf("got %+v", prog.Units[0])
	}
	if prog.Units[1].Name != "named" || prog.Units[1].Start != 2 {
		t.Fatalf("got %+v", prog.Units[1])
	}
}

func TestParseUnbalancedOpen(t *testing.T) {
	_, err := Parse("test", strings.NewReader("["))
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("got %v", err)
	}
	if structErr.Pos.Line != 1 || structErr.Pos.Col != 1 {
		t.Fatalf("got %+v", structErr.Pos)
	}
}

func TestParseUnbalancedClose(t *testing.T) {
	_, err := Parse("test", strings.NewReader("+\n+]"))
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("got %v", err)
	}
	if structErr.Pos.Line != 2 || structErr.Pos.Col != 2 {
		t.Fatalf("got %+v", structErr.Pos)
	}
}

func TestParsePositions(t *testing.T) {
	prog, err := Parse("test", strings.NewReader("ab+\n>"))
	if err != nil {
		t.Fatal(err)
	}
	if prog.Pos[0] != (Pos{Line: 1, Col: 3}) {
		t.Fatalf("got %v", prog.Pos[0])
	}
	if prog.Pos[1] != (Pos{Line: 2, Col: 1}) {
		t.Fatalf("got %v", prog.Pos[1])
	}
}
