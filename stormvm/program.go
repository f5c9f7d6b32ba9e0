package stormvm

import "github.com/storm-lang/storm/stormlang"

// Program is the optimized instruction stream plus the unit table remapped
// to instruction indices. It is immutable after Compile and may be shared
// read-only across concurrent executions.
type Program struct {
	Name  string
	Code  []OpCode
	Units []stormlang.Unit
}

// UnitAt returns the unit containing instruction index i, or nil when the
// program has no units.
func (p *Program) UnitAt(i int) *stormlang.Unit {
	for u := len(p.Units) - 1; u >= 0; u-- {
		if p.Units[u].Start <= i {
			return &p.Units[u]
		}
	}
	if len(p.Units) > 0 {
		return &p.Units[0]
	}
	return nil
}

// UnitStart resolves a unit name to its starting instruction index.
func (p *Program) UnitStart(name string) (int, bool) {
	for i := range p.Units {
		if p.Units[i].Name == name {
			return p.Units[i].Start, true
		}
	}
	return 0, false
}
