package builds

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/reusee/jackc/configs"
	"github.com/reusee/jackc/jackc"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/logs"
	"github.com/reusee/jackc/sinks"
	"github.com/reusee/jackc/syncs"
	"golang.org/x/sync/errgroup"
)

// Build compiles every unit found under paths and writes the successful ones.
// Units that fail produce no output, their errors are joined.
type Build func(ctx context.Context, paths []string) ([]*jackc.Unit, error)

func (Module) Build(
	loader configs.Loader,
	compile jackc.CompileFunc,
	open sinks.Open,
	jobs jackconfigs.Jobs,
	tokensXML jackconfigs.TokensXML,
	logger logs.Logger,
) Build {
	return func(ctx context.Context, paths []string) ([]*jackc.Unit, error) {
		if err := loader.Err(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		files, err := Collect(paths)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "build",
			"files", len(files),
			"jobs", int(jobs),
		)

		units := make([]*jackc.Unit, len(files))
		errs := make([]error, len(files))
		sem := syncs.NewSemaphore(int(jobs))
		var wg sync.WaitGroup

		for i, file := range files {
			if err := sem.AcquireContext(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Go(func() {
				defer sem.Release()
				unit, err := buildFile(ctx, file, compile, open, bool(tokensXML))
				if err != nil {
					errs[i] = err
					logger.ErrorContext(ctx, "unit failed",
						"file", file,
						"error", err,
					)
					return
				}
				units[i] = unit
				logger.InfoContext(logs.WithUnit(ctx, logs.Unit(unit.Name)), "unit written",
					"file", file,
					"instructions", len(unit.Instructions),
				)
			})
		}
		wg.Wait()

		var ret []*jackc.Unit
		for _, unit := range units {
			if unit != nil {
				ret = append(ret, unit)
			}
		}
		return ret, errors.Join(errs...)
	}
}

func buildFile(
	ctx context.Context,
	file string,
	compile jackc.CompileFunc,
	open sinks.Open,
	tokensXML bool,
) (*jackc.Unit, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	unit, err := compile(ctx, file, f)
	if err != nil {
		return nil, err
	}
	ctx = logs.WithUnit(ctx, logs.Unit(unit.Name))

	// render and write the token listing first, the sink only sees complete units
	listing := new(bytes.Buffer)
	xmlPath := filepath.Join(filepath.Dir(file), unit.Name+"T.xml")
	var g errgroup.Group
	g.Go(func() error {
		_, err := unit.WriteTo(listing)
		return err
	})
	if tokensXML {
		g.Go(func() error {
			return writeTokens(xmlPath, unit.Tokens)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, logs.WrapUnit(ctx, err)
	}

	if err := writeListing(ctx, open, unit, listing); err != nil {
		if tokensXML {
			os.Remove(xmlPath)
		}
		return nil, logs.WrapUnit(ctx, err)
	}

	return unit, nil
}

func writeListing(ctx context.Context, open sinks.Open, unit *jackc.Unit, listing *bytes.Buffer) error {
	w, err := open(ctx, unit)
	if err != nil {
		return err
	}
	if _, err := listing.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func writeTokens(path string, tokens []jacklex.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = jacklex.WriteXML(f, tokens)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
	}
	return err
}
