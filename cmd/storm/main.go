package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/storm-lang/storm/cmds"
	"github.com/storm-lang/storm/configs"
	"github.com/storm-lang/storm/debugs"
	"github.com/storm-lang/storm/logs"
	"github.com/storm-lang/storm/modes"
	"github.com/storm-lang/storm/stormlang"
	"github.com/storm-lang/storm/stormvm"
	"github.com/storm-lang/storm/vars"
)

var (
	programFile = cmds.Var[string]("-file")
	tapeSize    = cmds.Var[int]("-tape-size")
	eofBehavior = cmds.Var[string]("-eof")
	policy      = cmds.Var[string]("-policy")
	stateDumps  = cmds.Switch("-state-dumps")
	debug       = cmds.Switch("-debug")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *programFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(logs.Module),
		new(configs.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		config stormvm.Config,
		newSession debugs.NewSession,
	) {
		// flags override config files
		config.TapeSize = vars.FirstNonZero(*tapeSize, config.TapeSize)
		if *eofBehavior != "" {
			eof, err := stormvm.ParseEofBehavior(*eofBehavior)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Eof = eof
		}
		if *policy != "" {
			p, err := stormvm.ParseBoundaryPolicy(*policy)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Policy = p
		}
		if *stateDumps {
			config.StateDumps = true
		}

		f, err := os.Open(*programFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		var options []stormlang.Option
		if config.StateDumps {
			options = append(options, stormlang.WithStateDumps())
		}
		parsed, err := stormlang.Parse(*programFile, f, options...)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
			os.Exit(1)
		}
		prog, err := stormvm.Compile(parsed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("program loaded",
			"file", *programFile,
			"instructions", len(prog.Code),
			"units", len(prog.Units),
		)

		if *debug {
			runDebugger(newSession(prog, config, os.Stdin, os.Stdout))
			return
		}

		vm := stormvm.NewVM(prog, config, os.Stdin, os.Stdout)
		vm.DumpWriter = os.Stderr
		vm.Run(func(interrupt *stormvm.Interrupt, err error) bool {
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if interrupt.Dump {
				io.WriteString(vm.DumpWriter, stormvm.DumpState(vm))
			}
			return true
		})
	})
}

func runDebugger(session *debugs.Session) {
	fmt.Println("storm debugger")
	fmt.Println("use `help` for available commands")

	scanner := bufio.NewScanner(os.Stdin)
	var lastLine string
	for !session.Quitted() {
		fmt.Print("> ")
		if !scanner.Scan() {
			session.Quit()
			break
		}
		line := scanner.Text()
		if line == "" {
			// empty input repeats the last command
			line = lastLine
		}
		if line == "" {
			continue
		}
		lastLine = line

		resp := session.Exec(line)
		if resp.Output != "" {
			fmt.Print(resp.Output)
		}
		if resp.Err != nil {
			fmt.Printf("error: %v\n", resp.Err)
		}
	}
}
