package stormlang

// Unit is a named contiguous region of commands, introduced in source by a
// line starting with ';'. Units exist for debugger navigation only.
type Unit struct {
	Name  string
	Start int // index of the first command in the unit
}

// Program is the parsed but not yet optimized form of a source file:
// a flat command list plus the unit table, both in source order.
type Program struct {
	Name     string
	Commands []Command
	Pos      []Pos // Pos[i] locates Commands[i]
	Units    []Unit
}

// UnitAt returns the unit containing command index i.
func (p *Program) UnitAt(i int) *Unit {
	for u := len(p.Units) - 1; u >= 0; u-- {
		if p.Units[u].Start <= i {
			return &p.Units[u]
		}
	}
	return nil
}
