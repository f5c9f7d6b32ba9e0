package stormlang

import "fmt"

// Command is one primitive source command, before optimization.
type Command uint8

const (
	CmdInc Command = iota + 1
	CmdDec
	CmdRight
	CmdLeft
	CmdLoopOpen
	CmdLoopClose
	CmdRead
	CmdWrite
	CmdDump
)

func (c Command) String() string {
	switch c {
	case CmdInc:
		return "+"
	case CmdDec:
		return "-"
	case CmdRight:
		return ">"
	case CmdLeft:
		return "<"
	case CmdLoopOpen:
		return "["
	case CmdLoopClose:
		return "]"
	case CmdRead:
		return ","
	case CmdWrite:
		return "."
	case CmdDump:
		return "#"
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Pos locates a command in the source text. Lines and columns are 1-based.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
