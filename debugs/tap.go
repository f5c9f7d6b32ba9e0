package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/storm-lang/storm/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap drops a set of named values into an interactive starlark shell, for
// scripted inspection of a paused machine.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}

// tapGlobals snapshots the machine state for the starlark shell.
func (s *Session) tapGlobals() map[string]any {
	index, inst := s.CurrentInstruction()
	return map[string]any{
		"state":       s.state.String(),
		"ip":          index,
		"instruction": inst,
		"pointer":     s.Pointer(),
		"tape":        s.vm.Tape.Cells(),
		"unit":        s.CurrentUnitName(),
		"breaks":      s.Breakpoints(),
		"cell": func(i int) int {
			cells := s.vm.Tape.Cells()
			if i < 0 || i >= len(cells) {
				return 0
			}
			return int(cells[i])
		},
	}
}
