package builds

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jackc/jackc"
	"github.com/reusee/jackc/logs"
	"github.com/reusee/jackc/sinks"
)

type Module struct {
	dscope.Module
	Jackc jackc.Module
	Sinks sinks.Module
	Logs  logs.Module
}
