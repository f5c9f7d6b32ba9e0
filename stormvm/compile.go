package stormvm

import (
	"github.com/storm-lang/storm/stormlang"
)

type openLoop struct {
	inst int
	pos  stormlang.Pos
}

type compiler struct {
	code []OpCode

	pendingOp    OpCode // OpAdjust, OpMove, or zero
	pendingDelta int

	openStack []openLoop
	units     []stormlang.Unit
}

// Compile rewrites the primitive command list into the optimized
// instruction stream: maximal runs of cell or pointer commands become one
// counted instruction, net-zero runs are elided, every loop instruction is
// annotated with the index of its match, and unit starts are remapped from
// command indices to instruction indices.
//
// The parser already rejects unbalanced loops, but Compile checks again so
// it stays safe when invoked on a hand-built command list.
func Compile(prog *stormlang.Program) (*Program, error) {
	c := &compiler{}

	pos := func(i int) stormlang.Pos {
		if i < len(prog.Pos) {
			return prog.Pos[i]
		}
		return stormlang.Pos{}
	}

	nextUnit := 0
	for i, cmd := range prog.Commands {
		// Runs never cross a unit boundary, so a unit start always maps
		// to a real instruction index.
		for nextUnit < len(prog.Units) && prog.Units[nextUnit].Start == i {
			c.flush()
			c.units = append(c.units, stormlang.Unit{
				Name:  prog.Units[nextUnit].Name,
				Start: len(c.code),
			})
			nextUnit++
		}

		switch cmd {
		case stormlang.CmdInc:
			c.accumulate(OpAdjust, 1)
		case stormlang.CmdDec:
			c.accumulate(OpAdjust, -1)
		case stormlang.CmdRight:
			c.accumulate(OpMove, 1)
		case stormlang.CmdLeft:
			c.accumulate(OpMove, -1)

		case stormlang.CmdLoopOpen:
			c.flush()
			c.openStack = append(c.openStack, openLoop{
				inst: len(c.code),
				pos:  pos(i),
			})
			c.code = append(c.code, OpLoopOpen)

		case stormlang.CmdLoopClose:
			c.flush()
			if len(c.openStack) == 0 {
				return nil, &stormlang.StructureError{
					Pos: pos(i),
					Msg: "] has no matching [",
				}
			}
			open := c.openStack[len(c.openStack)-1]
			c.openStack = c.openStack[:len(c.openStack)-1]
			c.code[open.inst] = OpLoopOpen.With(len(c.code))
			c.code = append(c.code, OpLoopClose.With(open.inst))

		case stormlang.CmdRead:
			c.flush()
			c.code = append(c.code, OpRead)
		case stormlang.CmdWrite:
			c.flush()
			c.code = append(c.code, OpWrite)
		case stormlang.CmdDump:
			c.flush()
			c.code = append(c.code, OpDump)
		}
	}
	c.flush()

	if len(c.openStack) > 0 {
		return nil, &stormlang.StructureError{
			Pos: c.openStack[len(c.openStack)-1].pos,
			Msg: "[ has no matching ]",
		}
	}

	// Units starting at the very end of the command list map to one past
	// the last instruction.
	for nextUnit < len(prog.Units) {
		c.units = append(c.units, stormlang.Unit{
			Name:  prog.Units[nextUnit].Name,
			Start: len(c.code),
		})
		nextUnit++
	}

	return &Program{
		Name:  prog.Name,
		Code:  c.code,
		Units: c.units,
	}, nil
}

func (c *compiler) accumulate(op OpCode, delta int) {
	if c.pendingOp != op {
		c.flush()
		c.pendingOp = op
	}
	c.pendingDelta += delta
}

func (c *compiler) flush() {
	if c.pendingOp == 0 {
		return
	}
	delta := c.pendingDelta
	if c.pendingOp == OpAdjust {
		// Cell arithmetic wraps, so only the residue matters.
		delta %= 256
	}
	if delta != 0 {
		c.code = append(c.code, c.pendingOp.With(delta))
	}
	c.pendingOp = 0
	c.pendingDelta = 0
}
