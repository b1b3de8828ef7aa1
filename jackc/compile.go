package jackc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/symbols"
	"github.com/reusee/jackc/vmcode"
)

// Unit is the compiled form of one class.
type Unit struct {
	Name         string
	Source       string
	Instructions []vmcode.Instruction
	Statics      []symbols.Symbol
	Fields       []symbols.Symbol
	Subroutines  []Subroutine
	Tokens       []jacklex.Token
}

type Subroutine struct {
	// qualified, <Unit>.<name>
	Name      string
	Kind      string
	Return    string
	Arguments []symbols.Symbol
	Locals    []symbols.Symbol
}

func (u *Unit) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := vmcode.Render(cw, u.Instructions)
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Compile translates the class read from r. source names r in errors and logs.
func Compile(ctx context.Context, source string, r io.Reader, options Options) (*Unit, error) {
	return compile(ctx, slog.New(slog.DiscardHandler), source, r, options)
}

func compile(ctx context.Context, logger *slog.Logger, source string, r io.Reader, options Options) (*Unit, error) {
	lexer, err := jacklex.Read(r)
	if err != nil {
		if source != "" {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return nil, err
	}

	c := newCompiler(ctx, logger, source, lexer, options)
	if err := c.compileClass(); err != nil {
		return nil, err
	}
	if err := c.emitter.Err(); err != nil {
		return nil, err
	}

	unit := &Unit{
		Name:         c.unit,
		Source:       source,
		Instructions: c.emitter.Instructions(),
		Subroutines:  c.subroutines,
		Tokens:       lexer.Tokens(),
	}
	for symbol := range c.table.All() {
		switch symbol.Class {
		case symbols.Static:
			unit.Statics = append(unit.Statics, symbol)
		case symbols.Field:
			unit.Fields = append(unit.Fields, symbol)
		}
	}

	if source != "" {
		base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
		if base != unit.Name {
			logger.WarnContext(c.ctx, "class name differs from file name",
				"file", source,
			)
		}
	}
	logger.DebugContext(c.ctx, "unit compiled",
		"instructions", len(unit.Instructions),
		"subroutines", len(unit.Subroutines),
	)

	return unit, nil
}
