package debugs

import (
	"fmt"
	"os"
	"strings"

	"github.com/storm-lang/storm/cmds"
	"github.com/storm-lang/storm/vars"
)

// Response is the structured result of one debugger command.
type Response struct {
	State  RunState
	Output string
	Err    error
}

// commandExecutor adapts the cmds registry into the debugger's command
// protocol. Output produced while a command runs is collected into the
// Response instead of being written anywhere.
type commandExecutor struct {
	executor *cmds.Executor
	out      strings.Builder
}

// Exec parses and runs one textual command line against the session.
// An unknown command or a usage error never changes the run-state.
func (s *Session) Exec(line string) Response {
	if s.quit {
		return Response{
			State: s.state,
			Err:   ErrSessionOver,
		}
	}
	e := s.executor
	e.out.Reset()
	err := e.executor.Execute(strings.Fields(line))
	return Response{
		State:  s.state,
		Output: e.out.String(),
		Err:    err,
	}
}

func newCommandExecutor(s *Session) *commandExecutor {
	e := &commandExecutor{
		executor: cmds.NewExecutor(),
	}

	printf := func(format string, args ...any) {
		fmt.Fprintf(&e.out, format, args...)
	}

	define := func(name string, command *cmds.Command) {
		e.executor.Define(name, command)
	}

	reportRun := func(state RunState, err error) error {
		if err != nil {
			return err
		}
		printf("%s\n", state)
		if state == StateErrored {
			printf("%v\n", s.err)
		}
		return nil
	}

	define("continue", cmds.Func(func() error {
		state, err := s.Continue()
		return reportRun(state, err)
	}).Desc("run until breakpoint, halt, or error").Alias("run", "c"))

	define("step", cmds.Func(func() error {
		state, err := s.Step()
		return reportRun(state, err)
	}).Desc("execute one instruction").Alias("s"))

	define("next", cmds.Func(func() error {
		state, err := s.StepUnit()
		return reportRun(state, err)
	}).Desc("execute until the current unit is left").Alias("n"))

	define("break", cmds.Func(func(ref string) error {
		index, err := s.SetBreak(ref)
		if err != nil {
			return err
		}
		printf("breakpoint set at %#x\n", index)
		return nil
	}).Desc("set a breakpoint at a unit name or instruction index").Alias("b"))

	define("clear", cmds.Func(func(ref string) error {
		existed, err := s.ClearBreak(ref)
		if err != nil {
			return err
		}
		if existed {
			printf("breakpoint cleared\n")
		} else {
			printf("no such breakpoint\n")
		}
		return nil
	}).Desc("clear a breakpoint").Alias("cl"))

	define("print", cmds.Sub(map[string]*cmds.Command{
		"tape": cmds.Func(func() {
			printf("%s", s.TapeDump())
		}).Desc("hexdump of the tape"),
		"pointer": cmds.Func(func() {
			printf("%#x\n", s.Pointer())
		}).Desc("tape pointer"),
		"unit": cmds.Func(func() {
			name := s.CurrentUnitName()
			if name == "" {
				name = "(no unit)"
			}
			printf("%s\n", name)
		}).Desc("unit containing the current instruction"),
		"program": cmds.Func(func() {
			printf("%s", s.ProgramDump())
		}).Desc("full program disassembly"),
		"breaks": cmds.Func(func() {
			for _, index := range s.Breakpoints() {
				printf("%#x\n", index)
			}
		}).Desc("breakpoint list"),
	}).Desc("inspect machine state").Alias("p"))

	define("ctx", cmds.Func(func() {
		printf("state: %s\n", s.state)
		index, inst := s.CurrentInstruction()
		if inst != "" {
			printf("at %#x: %s\n", index, inst)
		}
		printf("%s", s.ContextDump())
	}).Desc("program window around the current instruction").Alias("context"))

	define("save", cmds.Func(func(path string) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := s.Save(f); err != nil {
			return err
		}
		printf("saved to %s\n", path)
		return nil
	}).Desc("write a machine snapshot to a file"))

	define("tap", cmds.Func(func(what *string) {
		s.tap(s.ctx, vars.FirstNonZero(vars.DerefOrZero(what), "session"), s.tapGlobals())
	}).Desc("drop into a starlark shell over the machine state"))

	define("quit", cmds.Func(func() {
		s.Quit()
		printf("bye\n")
	}).Desc("end the session").Alias("q"))

	define("help", cmds.Func(func() {
		e.out.WriteString(e.executor.Usage())
	}).Desc("print this message").Alias("h"))

	return e
}
