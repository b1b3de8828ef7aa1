package jackc

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/logs"
)

type Module struct {
	dscope.Module
	JackConfigs jackconfigs.Module
	Logs        logs.Module
}

func (Module) Options(
	allocator jackconfigs.Allocator,
	multiply jackconfigs.Multiply,
	divide jackconfigs.Divide,
	stringNew jackconfigs.StringNew,
	stringAppend jackconfigs.StringAppend,
	compat jackconfigs.ReferenceCompat,
	allOnesTrue jackconfigs.AllOnesTrue,
) Options {
	return Options{
		Allocator:       string(allocator),
		Multiply:        string(multiply),
		Divide:          string(divide),
		StringNew:       string(stringNew),
		StringAppend:    string(stringAppend),
		ReferenceCompat: bool(compat),
		AllOnesTrue:     bool(allOnesTrue),
	}.withDefaults()
}

type CompileFunc func(ctx context.Context, source string, r io.Reader) (*Unit, error)

func (Module) Compile(
	logger logs.Logger,
	options Options,
) CompileFunc {
	return func(ctx context.Context, source string, r io.Reader) (*Unit, error) {
		return compile(ctx, logger, source, r, options)
	}
}
