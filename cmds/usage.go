package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		// aliases are listed with their command
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		label := name
		if len(command.Aliases) > 0 {
			label += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			fnType := command.Func.Type()
			for i := range fnType.NumIn() {
				label += " <" + fnType.In(i).String() + ">"
			}
		}
		fmt.Fprintf(w, "%s%-32s %s\n", strings.Repeat("  ", depth), label, command.Description)
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
