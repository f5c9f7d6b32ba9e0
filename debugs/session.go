package debugs

import (
	"context"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/storm-lang/storm/logs"
	"github.com/storm-lang/storm/stormvm"
)

// Session wraps one VM with breakpoints and the run/pause/step protocol.
// It owns the VM exclusively; the program behind it may be shared with
// other sessions.
type Session struct {
	ctx    context.Context
	vm     *stormvm.VM
	logger logs.Logger
	tap    Tap

	state       RunState
	err         error
	quit        bool
	breakpoints map[int]struct{}

	executor *commandExecutor
}

// NewSession builds a debugging session over prog. Provided by Module.
type NewSession func(
	prog *stormvm.Program,
	config stormvm.Config,
	input io.Reader,
	output io.Writer,
) *Session

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap Tap,
) NewSession {
	return func(
		prog *stormvm.Program,
		config stormvm.Config,
		input io.Reader,
		output io.Writer,
	) *Session {
		ctx, _ := newSpan(context.Background(), "")
		session := &Session{
			ctx:         ctx,
			vm:          stormvm.NewVM(prog, config, input, output),
			logger:      logger,
			tap:         tap,
			state:       StatePausedByStep,
			breakpoints: make(map[int]struct{}),
		}
		session.executor = newCommandExecutor(session)
		logger.InfoContext(ctx, "session start",
			"program", prog.Name,
			"instructions", len(prog.Code),
		)
		return session
	}
}

func (s *Session) State() RunState {
	return s.state
}

// Err returns the fatal error a StateErrored session stopped on.
func (s *Session) Err() error {
	return s.err
}

// Continue executes until a breakpoint, halt, or fatal error.
func (s *Session) Continue() (RunState, error) {
	if err := s.needPaused(); err != nil {
		return s.state, err
	}
	s.state = StateRunning
	for {
		if done := s.stepOnce(); done {
			return s.state, nil
		}
		if _, ok := s.breakpoints[s.vm.IP]; ok {
			s.state = StatePausedAtBreakpoint
			s.logger.InfoContext(s.ctx, "breakpoint hit", "ip", s.vm.IP)
			return s.state, nil
		}
	}
}

// Step executes exactly one instruction. Breakpoints are not checked:
// the user already chose to stop here.
func (s *Session) Step() (RunState, error) {
	if err := s.needPaused(); err != nil {
		return s.state, err
	}
	if done := s.stepOnce(); !done {
		s.state = StatePausedByStep
	}
	return s.state, nil
}

// StepUnit executes until control leaves the current unit.
func (s *Session) StepUnit() (RunState, error) {
	if err := s.needPaused(); err != nil {
		return s.state, err
	}
	startUnit, _ := s.vm.CurrentUnit()
	for {
		if done := s.stepOnce(); done {
			return s.state, nil
		}
		if unit, _ := s.vm.CurrentUnit(); unit != startUnit {
			s.state = StatePausedByStep
			return s.state, nil
		}
	}
}

// stepOnce advances the VM one instruction, moving the session to
// StateHalted or StateErrored when execution cannot proceed. It reports
// whether the session reached a terminal state.
func (s *Session) stepOnce() bool {
	interrupt, err := s.vm.Step()
	if err != nil {
		s.state = StateErrored
		s.err = logs.WrapSpan(s.ctx, err)
		s.logger.ErrorContext(s.ctx, "execution failed", "error", err)
		return true
	}
	if interrupt != nil && interrupt.Dump {
		io.WriteString(s.vm.DumpWriter, stormvm.DumpState(s.vm))
	}
	if s.vm.Halted {
		s.state = StateHalted
		s.logger.InfoContext(s.ctx, "program halted", "ip", s.vm.IP)
		return true
	}
	return false
}

func (s *Session) needPaused() error {
	if s.quit || s.state.Terminal() {
		return ErrSessionOver
	}
	return nil
}

// resolveBreak turns a unit name or a decimal/hex instruction index into
// an instruction index, using the optimizer's remapped unit table.
func (s *Session) resolveBreak(ref string) (int, error) {
	if hex, ok := strings.CutPrefix(ref, "0x"); ok {
		if n, err := strconv.ParseInt(hex, 16, 64); err == nil {
			return int(n), nil
		}
	} else if n, err := strconv.Atoi(ref); err == nil {
		return n, nil
	}
	if start, ok := s.vm.Program.UnitStart(ref); ok {
		return start, nil
	}
	return 0, &NameError{
		Name: ref,
	}
}

func (s *Session) SetBreak(ref string) (int, error) {
	if err := s.needPaused(); err != nil {
		return 0, err
	}
	index, err := s.resolveBreak(ref)
	if err != nil {
		return 0, err
	}
	s.breakpoints[index] = struct{}{}
	s.logger.InfoContext(s.ctx, "breakpoint set", "ip", index)
	return index, nil
}

// ClearBreak removes a breakpoint, reporting whether one existed.
func (s *Session) ClearBreak(ref string) (bool, error) {
	if err := s.needPaused(); err != nil {
		return false, err
	}
	index, err := s.resolveBreak(ref)
	if err != nil {
		return false, err
	}
	_, existed := s.breakpoints[index]
	delete(s.breakpoints, index)
	return existed, nil
}

func (s *Session) Breakpoints() []int {
	indexes := make([]int, 0, len(s.breakpoints))
	for index := range s.breakpoints {
		indexes = append(indexes, index)
	}
	slices.Sort(indexes)
	return indexes
}

// Quit ends the session. Every command after this is rejected.
func (s *Session) Quit() {
	if s.quit {
		return
	}
	s.quit = true
	s.logger.InfoContext(s.ctx, "session end", "state", s.state.String())
}

func (s *Session) Quitted() bool {
	return s.quit
}

// Inspection. Pure reads, valid in any state including Halted and
// Errored, so failure state stays queryable post-mortem.

func (s *Session) Pointer() int {
	return s.vm.Tape.Ptr()
}

func (s *Session) Cursor() int {
	return s.vm.IP
}

// CurrentInstruction returns the cursor and the rendering of the
// instruction under it ("" once halted).
func (s *Session) CurrentInstruction() (int, string) {
	if s.vm.IP >= len(s.vm.Program.Code) {
		return s.vm.IP, ""
	}
	return s.vm.IP, s.vm.Program.Code[s.vm.IP].String()
}

func (s *Session) CurrentUnitName() string {
	_, name := s.vm.CurrentUnit()
	return name
}

func (s *Session) TapeDump() string {
	return stormvm.DumpTape(s.vm.Tape)
}

func (s *Session) ProgramDump() string {
	text, _ := stormvm.DumpProgram(s.vm.Program, s.vm.IP, s.breakpoints)
	return text
}

func (s *Session) ContextDump() string {
	return stormvm.DumpContext(s.vm, 5, 5, s.breakpoints)
}

// Save writes a snapshot of the machine state for later post-mortem
// inspection.
func (s *Session) Save(w io.Writer) error {
	return s.vm.Snapshot(w)
}
