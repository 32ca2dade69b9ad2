package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	seen := make(map[*Command]bool)
	printCommands(p.commands, seen, 0)
}

func printCommands(commands map[string]*Command, seen map[*Command]bool, indent int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true

		line := strings.Repeat("  ", indent) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\n" + strings.Repeat("  ", indent+2) + command.Description
		}
		fmt.Fprintln(os.Stderr, line)

		if len(command.Subs) > 0 {
			printCommands(command.Subs, seen, indent+1)
		}
	}
}
