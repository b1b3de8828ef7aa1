package sinks

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/logs"
	"github.com/reusee/jackc/nets"
)

type Module struct {
	dscope.Module
	JackConfigs jackconfigs.Module
	Nets        nets.Module
	Logs        logs.Module
}
