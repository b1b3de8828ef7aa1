package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/jackc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func Globals(values map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(values))
	for name, value := range values {
		ret[name] = toStarlarkValue(value)
	}
	ret.Freeze()
	return ret
}

// Tap opens an interactive session on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, Globals(globals))
	}
}

// Eval evaluates one expression and returns its printed form.
type Eval func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (string, error) {
		thread := &starlark.Thread{
			Name: "eval",
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg)
			},
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<eval>", expr, Globals(globals))
		if err != nil {
			return "", err
		}
		if s, ok := value.(starlark.String); ok {
			return s.GoString(), nil
		}
		return value.String(), nil
	}
}
