package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/builds"
	"github.com/reusee/jackc/cmds"
	"github.com/reusee/jackc/debugs"
	"github.com/reusee/jackc/jackc"
	"github.com/reusee/jackc/modes"
)

var (
	paths []string
	exprs []string
)

func init() {
	cmds.Define("compile", cmds.Func(func(path string) {
		paths = append(paths, path)
	}).Desc("compile a .jack file, or every .jack file in a directory"))
	cmds.Define("eval", cmds.Func(func(expr string) {
		exprs = append(exprs, expr)
	}).Desc("evaluate a starlark expression over the compiled units"))
}

var doRepl = cmds.Switch("repl")

func main() {
	cmds.Execute(os.Args[1:])
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "nothing to compile\n\n")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	exitCode := 0

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		build builds.Build,
		compile jackc.CompileFunc,
		eval debugs.Eval,
		tap debugs.Tap,
	) {

		units, err := build(ctx, paths)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitCode = 1
		}

		if len(exprs) == 0 && !*doRepl {
			return
		}
		globals := unitGlobals(ctx, units, compile)

		for _, expr := range exprs {
			out, err := eval(ctx, expr, globals)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				exitCode = 1
				continue
			}
			fmt.Println(out)
		}

		if *doRepl {
			tap(ctx, "repl", globals)
		}
	})

	os.Exit(exitCode)
}

func unitGlobals(ctx context.Context, units []*jackc.Unit, compile jackc.CompileFunc) map[string]any {
	byName := make(map[string]any, len(units))
	for _, unit := range units {
		byName[unit.Name] = unit
	}

	return map[string]any{
		"units": byName,

		// listing("Main") renders the instructions of a compiled unit
		"listing": func(name string) (string, error) {
			for _, unit := range units {
				if unit.Name != name {
					continue
				}
				buf := new(bytes.Buffer)
				if _, err := unit.WriteTo(buf); err != nil {
					return "", err
				}
				return buf.String(), nil
			}
			return "", fmt.Errorf("no such unit: %s", name)
		},

		// compile("class A { ... }") compiles source text in place
		"compile": func(src string) (string, error) {
			unit, err := compile(ctx, "", bytes.NewReader([]byte(src)))
			if err != nil {
				return "", err
			}
			buf := new(bytes.Buffer)
			if _, err := unit.WriteTo(buf); err != nil {
				return "", err
			}
			return buf.String(), nil
		},
	}
}
