package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func init() {
	GlobalExecutor.OnUsage(func() {
		os.Exit(0)
	})
}

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the global commands, exiting the process on bad arguments.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
