package stormvm

import (
	"fmt"
	"strings"
)

// DumpProgram renders the whole instruction stream grouped by unit, with
// loop-nesting indentation and jump-target annotations. It also returns
// the index of the output line holding the instruction at ip. Instructions
// in breakpoints are marked with '*', the current one with '>'.
func DumpProgram(prog *Program, ip int, breakpoints map[int]struct{}) (string, int) {
	var sb strings.Builder
	width := len(fmt.Sprintf("%#x", max(len(prog.Code)-1, 0)))

	currentLine := 0
	line := 0
	indent := 0

	writeLine := func(i int) {
		sb.WriteByte('\n')
		line++
		fmt.Fprintf(&sb, "%#0*x    %s", width, i, strings.Repeat(" ", indent))
	}

	units := prog.Units
	nextUnit := 0
	onNewLine := true
	sinceNewLine := 0

	for i, inst := range prog.Code {
		for nextUnit < len(units) && units[nextUnit].Start == i {
			if i > 0 || nextUnit > 0 {
				sb.WriteByte('\n')
				line++
			}
			name := units[nextUnit].Name
			if name == "" {
				name = "(no unit)"
			}
			fmt.Fprintf(&sb, "%#0*x  %s", width, i, name)
			nextUnit++
			onNewLine = true
			sinceNewLine = 0
		}
		if len(units) == 0 && i == 0 {
			fmt.Fprintf(&sb, "%#0*x  (no unit)", width, 0)
		}

		op := inst.Op()
		if op == OpLoopClose {
			indent -= 2
			onNewLine = true
		}
		if op == OpLoopOpen {
			onNewLine = true
		}

		if onNewLine || sinceNewLine >= 5 {
			writeLine(i)
			onNewLine = false
			sinceNewLine = 0
		}

		switch {
		case i == ip:
			sb.WriteByte('>')
		case breakpoints != nil && mapHas(breakpoints, i):
			sb.WriteByte('*')
		default:
			sb.WriteByte(' ')
		}
		if i == ip {
			currentLine = line
		}
		sb.WriteString(inst.String())

		switch op {
		case OpLoopOpen:
			indent += 2
			fmt.Fprintf(&sb, " -> %#x", inst.Arg())
			onNewLine = true
		case OpLoopClose:
			fmt.Fprintf(&sb, " -> %#x", inst.Arg())
			onNewLine = true
		}

		sinceNewLine++
	}
	sb.WriteByte('\n')

	return sb.String(), currentLine
}

func mapHas(m map[int]struct{}, k int) bool {
	_, ok := m[k]
	return ok
}

// DumpTape renders a hexdump of the tape, collapsing runs of all-zero
// lines. The pointed-at cell is flagged with '>' in place of its leading
// space.
func DumpTape(t *Tape) string {
	var sb strings.Builder
	width := len(fmt.Sprintf("%#x", t.Len()))

	inZeroes := false
	elided := false

	for start := 0; start < t.Len(); start += 16 {
		end := min(start+16, t.Len())
		allZero := true
		for i := start; i < end; i++ {
			if t.cells[i] != 0 {
				allZero = false
				break
			}
		}
		ptrHere := t.ptr >= start && t.ptr < end

		if allZero && !ptrHere {
			if !inZeroes {
				dumpTapeLine(&sb, t, start, end, width)
				inZeroes = true
			} else if !elided {
				fmt.Fprintf(&sb, "%*s   ....\n", width, "")
				elided = true
			}
			continue
		}
		inZeroes = false
		elided = false
		dumpTapeLine(&sb, t, start, end, width)
	}

	return sb.String()
}

func dumpTapeLine(sb *strings.Builder, t *Tape, start, end, width int) {
	fmt.Fprintf(sb, "%#0*x ", width, start)
	for i := start; i < start+16; i++ {
		if i == t.ptr {
			sb.WriteByte('>')
		} else {
			sb.WriteByte(' ')
		}
		if i < end {
			fmt.Fprintf(sb, "%02X", t.cells[i])
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("   ")
	for i := start; i < end; i++ {
		c := t.cells[i]
		if c >= 32 && c < 127 {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('\n')
}

// DumpState renders the full machine context: tape, the program lines
// around the instruction pointer, and the registers.
func DumpState(v *VM) string {
	var sb strings.Builder

	sb.WriteString("=== ctx ===\n")
	sb.WriteString("tape:\n")
	sb.WriteString(DumpTape(v.Tape))

	sb.WriteString("program:\n")
	sb.WriteString(DumpContext(v, 5, 5, nil))

	sb.WriteString("registers:\n")
	fmt.Fprintf(&sb, "  IP: %#x\n", v.IP)
	fmt.Fprintf(&sb, "  TP: %#x\n", v.Tape.ptr)
	if _, name := v.CurrentUnit(); name != "" {
		fmt.Fprintf(&sb, "  unit: %s\n", name)
	}
	sb.WriteString("=== end ctx ===\n")

	return sb.String()
}

// DumpContext renders the program lines around the current instruction.
func DumpContext(v *VM, before, after int, breakpoints map[int]struct{}) string {
	text, current := DumpProgram(v.Program, v.IP, breakpoints)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	start := max(current-before, 0)
	end := min(current+after+1, len(lines))

	var sb strings.Builder
	for _, line := range lines[start:end] {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
