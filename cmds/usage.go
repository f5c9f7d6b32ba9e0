package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// Usage renders the defined commands, one per line, sub-commands indented
// under their parent. Aliased names render once with all spellings.
func (p *Executor) Usage() string {
	var sb strings.Builder
	writeCommands(&sb, p.commands, 0)
	return sb.String()
}

func (p *Executor) PrintUsage() {
	os.Stdout.WriteString(p.Usage())
}

func writeCommands(sb *strings.Builder, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	names := slices.Sorted(maps.Keys(commands))
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true

		spellings := name
		if len(command.Aliases) > 0 {
			spellings += " / " + strings.Join(command.Aliases, " / ")
		}
		fmt.Fprintf(sb, "%s%s", strings.Repeat("  ", depth+1), spellings)
		if command.Description != "" {
			fmt.Fprintf(sb, " - %s", command.Description)
		}
		sb.WriteByte('\n')

		if len(command.Subs) > 0 {
			writeCommands(sb, command.Subs, depth+1)
		}
	}
}
