package jackc

import (
	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/logs"
	"github.com/reusee/jackc/symbols"
	"github.com/reusee/jackc/vmcode"
)

func (c *compiler) compileClass() error {
	if _, err := c.expectKeyword("class"); err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	c.unit = name.Text
	c.ctx = logs.WithUnit(c.ctx, logs.Unit(name.Text))
	if err := c.expectSymbol("{"); err != nil {
		return err
	}

	for c.at(jacklex.Keyword, "static", "field") {
		if err := c.compileClassVarDec(); err != nil {
			return err
		}
	}
	for c.at(jacklex.Keyword, "constructor", "function", "method") {
		if err := c.compileSubroutine(); err != nil {
			return err
		}
	}

	if err := c.expectSymbol("}"); err != nil {
		return err
	}
	if !c.done {
		tok, _ := c.lexer.Current()
		return c.syntaxError(ErrTrailingTokens, tok)
	}
	return nil
}

func (c *compiler) compileClassVarDec() error {
	qualifier, err := c.expectKeyword("static", "field")
	if err != nil {
		return err
	}
	class := symbols.Static
	if qualifier == "field" {
		class = symbols.Field
	}
	typ, err := c.compileType(false)
	if err != nil {
		return err
	}
	if err := c.compileNames(class, typ); err != nil {
		return err
	}
	return c.expectSymbol(";")
}

func (c *compiler) compileVarDec() error {
	if _, err := c.expectKeyword("var"); err != nil {
		return err
	}
	typ, err := c.compileType(false)
	if err != nil {
		return err
	}
	if err := c.compileNames(symbols.Local, typ); err != nil {
		return err
	}
	return c.expectSymbol(";")
}

// compileNames declares name (, name)*
func (c *compiler) compileNames(class symbols.Class, typ string) error {
	for {
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if err := c.declare(name, class, typ); err != nil {
			return err
		}
		if !c.at(jacklex.Symbol, ",") {
			return nil
		}
		c.advance()
	}
}

func (c *compiler) compileType(allowVoid bool) (string, error) {
	tok, err := c.current()
	if err != nil {
		return "", err
	}
	if tok.Kind == jacklex.Identifier {
		c.advance()
		return tok.Text, nil
	}
	allowed := []string{"int", "char", "boolean"}
	if allowVoid {
		allowed = append(allowed, "void")
	}
	return c.expectKeyword(allowed...)
}

func (c *compiler) compileSubroutine() error {
	kind, err := c.expectKeyword("constructor", "function", "method")
	if err != nil {
		return err
	}
	ret, err := c.compileType(true)
	if err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	c.subroutine = Subroutine{
		Name:   c.unit + "." + name.Text,
		Kind:   kind,
		Return: ret,
	}

	c.table.ResetSubroutineScope(kind == "method")
	if err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileParameterList(); err != nil {
		return err
	}
	if err := c.expectSymbol(")"); err != nil {
		return err
	}

	return c.compileSubroutineBody()
}

func (c *compiler) compileParameterList() error {
	if c.at(jacklex.Symbol, ")") {
		return nil
	}
	for {
		typ, err := c.compileType(false)
		if err != nil {
			return err
		}
		name, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if err := c.declare(name, symbols.Argument, typ); err != nil {
			return err
		}
		if !c.at(jacklex.Symbol, ",") {
			return nil
		}
		c.advance()
	}
}

func (c *compiler) compileSubroutineBody() error {
	if err := c.expectSymbol("{"); err != nil {
		return err
	}
	for c.at(jacklex.Keyword, "var") {
		if err := c.compileVarDec(); err != nil {
			return err
		}
	}

	c.emitter.Function(c.subroutine.Name, c.table.LocalCount())
	for symbol := range c.table.All() {
		switch symbol.Class {
		case symbols.Argument:
			c.subroutine.Arguments = append(c.subroutine.Arguments, symbol)
		case symbols.Local:
			c.subroutine.Locals = append(c.subroutine.Locals, symbol)
		}
	}

	switch c.subroutine.Kind {
	case "method":
		c.emitter.Push(vmcode.Argument, 0)
		c.emitter.Pop(vmcode.Pointer, 0)
	case "constructor":
		c.emitter.Push(vmcode.Constant, c.table.FieldCount())
		c.emitter.Call(c.options.Allocator, 1)
		c.emitter.Pop(vmcode.Pointer, 0)
	}

	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.expectSymbol("}"); err != nil {
		return err
	}

	if !c.options.ReferenceCompat {
		c.table.ResetSubroutineScope(false)
	}
	c.subroutines = append(c.subroutines, c.subroutine)
	c.logger.DebugContext(c.ctx, "subroutine compiled",
		"name", c.subroutine.Name,
		"kind", c.subroutine.Kind,
		"locals", len(c.subroutine.Locals),
	)
	return nil
}
