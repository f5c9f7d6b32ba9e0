package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/storm-lang/storm/stormvm"
)

type Module struct {
	dscope.Module
}

// Schema constrains the recognized options. Loading fails on unknown
// fields or out-of-range values.
const Schema = `
tapeSize?: int & >0
eofBehavior?: "keep" | "zero" | "minus-one" | "fatal"
pointerPolicy?: "error" | "wrap" | "clamp"
stateDumps?: bool
`

// ConfigPaths lists the files consulted, nearest first.
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths []string
	candidates := []string{
		"storm.cue",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".config", "storm", "storm.cue"),
		)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

func (Module) Loader(paths ConfigPaths) Loader {
	return NewLoader(paths, Schema)
}

// MachineConfig decodes the loaded files into the VM configuration,
// falling back to defaults for anything unset.
func (Module) MachineConfig(loader Loader) stormvm.Config {
	config := stormvm.DefaultConfig()

	if n := First[int](loader, "tapeSize"); n > 0 {
		config.TapeSize = n
	}
	if str := First[string](loader, "eofBehavior"); str != "" {
		eof, err := stormvm.ParseEofBehavior(str)
		if err != nil {
			panic(err)
		}
		config.Eof = eof
	}
	if str := First[string](loader, "pointerPolicy"); str != "" {
		policy, err := stormvm.ParseBoundaryPolicy(str)
		if err != nil {
			panic(err)
		}
		config.Policy = policy
	}
	config.StateDumps = First[bool](loader, "stateDumps")

	return config
}
