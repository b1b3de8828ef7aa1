package jackconfigs

import (
	"runtime"

	"github.com/reusee/jackc/cmds"
	"github.com/reusee/jackc/configs"
	"github.com/reusee/jackc/vars"
)

// Jobs bounds the number of units compiled at the same time.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	configured, _ := configs.First[int](loader, "jobs")
	n := vars.FirstNonZero(
		*jobsFlag,
		configured,
		runtime.NumCPU(),
	)
	return Jobs(max(n, 1))
}

// Output is the address compiled units are written to.
// See sinks for the accepted forms.
type Output string

var outputFlag = cmds.Var[string]("-out")

func (Module) Output(
	loader configs.Loader,
) Output {
	configured, _ := configs.First[string](loader, "output")
	return Output(vars.FirstNonZero(
		*outputFlag,
		configured,
	))
}
