package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/logs"
)

type Module struct {
	dscope.Module
	JackConfigs jackconfigs.Module
	Logs        logs.Module
}
