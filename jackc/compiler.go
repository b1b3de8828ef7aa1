package jackc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/symbols"
	"github.com/reusee/jackc/vmcode"
)

// compiler holds the state of one unit. Each grammar rule is a method
// that consumes tokens from lexer and appends instructions to emitter.
type compiler struct {
	ctx     context.Context
	logger  *slog.Logger
	options Options
	source  string

	lexer   *jacklex.Lexer
	table   *symbols.Table
	emitter *vmcode.Emitter

	// set when the cursor stepped past the final token
	done bool

	unit        string
	labels      int
	subroutine  Subroutine
	subroutines []Subroutine
}

func newCompiler(
	ctx context.Context,
	logger *slog.Logger,
	source string,
	lexer *jacklex.Lexer,
	options Options,
) *compiler {
	return &compiler{
		ctx:     ctx,
		logger:  logger,
		options: options.withDefaults(),
		source:  source,
		lexer:   lexer,
		table:   symbols.NewTable(),
		emitter: vmcode.NewEmitter(nil),
	}
}

func (c *compiler) current() (jacklex.Token, error) {
	if c.done {
		return jacklex.Token{}, c.exhausted()
	}
	tok, err := c.lexer.Current()
	if err != nil {
		return tok, c.exhausted()
	}
	return tok, nil
}

func (c *compiler) advance() {
	if c.lexer.HasMoreTokens() {
		_ = c.lexer.Advance()
	} else {
		c.done = true
	}
}

func (c *compiler) peek() jacklex.Token {
	if c.done {
		return jacklex.Token{}
	}
	tok, err := c.lexer.PeekNext()
	if err != nil {
		return jacklex.Token{}
	}
	return tok
}

// at reports whether the current token is of kind and, when texts are given, one of them.
func (c *compiler) at(kind jacklex.Kind, texts ...string) bool {
	if c.done {
		return false
	}
	tok, err := c.lexer.Current()
	if err != nil {
		return false
	}
	if tok.Kind != kind {
		return false
	}
	return len(texts) == 0 || slices.Contains(texts, tok.Text)
}

func (c *compiler) expectKeyword(values ...string) (string, error) {
	tok, err := c.current()
	if err != nil {
		return "", err
	}
	if tok.Kind != jacklex.Keyword {
		return "", c.syntaxError(ErrKeywordExpected, tok, values...)
	}
	if len(values) > 0 && !slices.Contains(values, tok.Text) {
		return "", c.syntaxError(ErrSpecificKeywordExpected, tok, values...)
	}
	c.advance()
	return tok.Text, nil
}

func (c *compiler) expectSymbol(values ...string) error {
	tok, err := c.current()
	if err != nil {
		return err
	}
	if tok.Kind != jacklex.Symbol {
		return c.syntaxError(ErrSymbolExpected, tok, values...)
	}
	if len(values) > 0 && !slices.Contains(values, tok.Text) {
		return c.syntaxError(ErrSpecificSymbolExpected, tok, values...)
	}
	c.advance()
	return nil
}

func (c *compiler) expectIdentifier() (jacklex.Token, error) {
	tok, err := c.current()
	if err != nil {
		return tok, err
	}
	if tok.Kind != jacklex.Identifier {
		return tok, c.syntaxError(ErrIdentifierExpected, tok)
	}
	c.advance()
	return tok, nil
}

func (c *compiler) syntaxError(err error, got jacklex.Token, expected ...string) error {
	ret := &SyntaxError{
		Err:      err,
		Source:   c.source,
		Expected: expected,
		Got:      got,
	}
	if line, ok := c.lexer.SourceLine(got.Line); ok {
		ret.Line = line
	}
	return ret
}

func (c *compiler) exhausted() error {
	ret := &SyntaxError{
		Err:    ErrTokensExhausted,
		Source: c.source,
	}
	// point at the last token seen
	if tok, err := c.lexer.Current(); err == nil {
		ret.Got = jacklex.Token{
			Line:   tok.Line,
			Column: tok.Column + len(tok.Text),
		}
		if line, ok := c.lexer.SourceLine(tok.Line); ok {
			ret.Line = line
		}
	}
	return ret
}

func (c *compiler) declare(tok jacklex.Token, class symbols.Class, typ string) error {
	if _, err := c.table.Add(tok.Text, class, typ); err != nil {
		if errors.Is(err, symbols.ErrDuplicate) {
			return c.syntaxError(ErrDuplicateSymbol, tok)
		}
		return err
	}
	return nil
}

func (c *compiler) resolve(tok jacklex.Token) (symbols.Symbol, error) {
	symbol, ok := c.table.Resolve(tok.Text)
	if !ok {
		return symbol, c.syntaxError(ErrUnresolved, tok)
	}
	return symbol, nil
}

var segments = map[symbols.Class]vmcode.Segment{
	symbols.Static:   vmcode.Static,
	symbols.Field:    vmcode.This,
	symbols.Argument: vmcode.Argument,
	symbols.Local:    vmcode.Local,
}

func (c *compiler) push(symbol symbols.Symbol) {
	c.emitter.Push(segments[symbol.Class], symbol.Index)
}

func (c *compiler) pop(symbol symbols.Symbol) {
	c.emitter.Pop(segments[symbol.Class], symbol.Index)
}

// nextLabel reserves a counter value for one if or while construct.
func (c *compiler) nextLabel() int {
	n := c.labels
	c.labels++
	return n
}

func (c *compiler) label(name string, n int) string {
	return fmt.Sprintf("%s$%s$%d", c.unit, name, n)
}
