package jackconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jackc/configs"
	"github.com/reusee/jackc/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
