package stormlang

import (
	"bufio"
	"io"
	"strings"
)

const unitMarker = ';'

type Option func(*parser)

// WithStateDumps makes '#' parse as a dump-state command instead of a
// comment character.
func WithStateDumps() Option {
	return func(p *parser) {
		p.stateDumps = true
	}
}

type parser struct {
	prog       *Program
	openStack  []Pos
	stateDumps bool
}

// Parse reads the whole source and produces the primitive command list and
// the unit table. A line whose first non-space rune is ';' opens a new unit
// named by the rest of the line. All runes other than the command set are
// ignored. Unbalanced loop markers fail with *StructureError.
func Parse(name string, r io.Reader, options ...Option) (*Program, error) {
	p := &parser{
		prog: &Program{
			Name: name,
		},
	}
	for _, opt := range options {
		opt(p)
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := p.parseLine(line, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(p.openStack) > 0 {
		return nil, &StructureError{
			Pos: p.openStack[len(p.openStack)-1],
			Msg: "[ has no matching ]",
		}
	}

	if len(p.prog.Units) == 0 {
		// No markers at all: the whole program is one unnamed unit.
		p.prog.Units = append(p.prog.Units, Unit{
			Name:  "",
			Start: 0,
		})
	}

	return p.prog, nil
}

func (p *parser) parseLine(line int, text string) error {
	if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, string(unitMarker)) {
		p.openUnit(strings.TrimSpace(trimmed[1:]))
		return nil
	}

	for col, r := range text {
		pos := Pos{Line: line, Col: col + 1}
		switch r {
		case '+':
			p.push(CmdInc, pos)
		case '-':
			p.push(CmdDec, pos)
		case '>':
			p.push(CmdRight, pos)
		case '<':
			p.push(CmdLeft, pos)
		case '[':
			p.push(CmdLoopOpen, pos)
			p.openStack = append(p.openStack, pos)
		case ']':
			if len(p.openStack) == 0 {
				return &StructureError{
					Pos: pos,
					Msg: "] has no matching [",
				}
			}
			p.openStack = p.openStack[:len(p.openStack)-1]
			p.push(CmdLoopClose, pos)
		case ',':
			p.push(CmdRead, pos)
		case '.':
			p.push(CmdWrite, pos)
		case '#':
			if p.stateDumps {
				p.push(CmdDump, pos)
			}
		}
	}
	return nil
}

func (p *parser) push(cmd Command, pos Pos) {
	p.prog.Commands = append(p.prog.Commands, cmd)
	p.prog.Pos = append(p.prog.Pos, pos)
}

func (p *parser) openUnit(name string) {
	start := len(p.prog.Commands)
	if len(p.prog.Units) == 0 && start > 0 {
		// Commands before the first marker belong to an implicit unnamed unit.
		p.prog.Units = append(p.prog.Units, Unit{
			Name:  "",
			Start: 0,
		})
	}
	p.prog.Units = append(p.prog.Units, Unit{
		Name:  name,
		Start: start,
	})
}
