package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/jackc/builds"
	"github.com/reusee/jackc/debugs"
)

type Module struct {
	dscope.Module
	Builds builds.Module
	Debugs debugs.Module
}
