package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor backs the package-level Define / Var / Switch helpers and
// holds the process-wide command line vocabulary.
var GlobalExecutor = NewExecutor()

func init() {
	Define("-h", Func(func() {
		GlobalExecutor.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("-help", "--help"))
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the global executor over args, printing usage and exiting
// on bad input.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
}
