package jackc

import (
	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/vmcode"
)

func (c *compiler) compileStatements() error {
	for {
		tok, err := c.current()
		if err != nil {
			return err
		}
		if tok.Kind != jacklex.Keyword {
			return nil
		}
		switch tok.Text {
		case "let":
			err = c.compileLet()
		case "if":
			err = c.compileIf()
		case "while":
			err = c.compileWhile()
		case "do":
			err = c.compileDo()
		case "return":
			err = c.compileReturn()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *compiler) compileLet() error {
	if _, err := c.expectKeyword("let"); err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	target, err := c.resolve(name)
	if err != nil {
		return err
	}

	if c.at(jacklex.Symbol, "[") {
		c.advance()
		c.push(target)
		if err := c.compileExpression(); err != nil {
			return err
		}
		if err := c.expectSymbol("]"); err != nil {
			return err
		}
		c.emitter.Arithmetic(vmcode.Add)
		if err := c.expectSymbol("="); err != nil {
			return err
		}
		if err := c.compileExpression(); err != nil {
			return err
		}
		if err := c.expectSymbol(";"); err != nil {
			return err
		}
		c.emitter.Pop(vmcode.Temp, 0)
		c.emitter.Pop(vmcode.Pointer, 1)
		c.emitter.Push(vmcode.Temp, 0)
		c.emitter.Pop(vmcode.That, 0)
		return nil
	}

	if err := c.expectSymbol("[", "="); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.pop(target)
	return nil
}

// compileCondition compiles ( expression ) followed by not and if-goto exit
func (c *compiler) compileCondition(exit string) error {
	if err := c.expectSymbol("("); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(")"); err != nil {
		return err
	}
	c.emitter.Arithmetic(vmcode.Not)
	c.emitter.IfGoto(exit)
	return nil
}

func (c *compiler) compileBlock() error {
	if err := c.expectSymbol("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	return c.expectSymbol("}")
}

func (c *compiler) compileWhile() error {
	if _, err := c.expectKeyword("while"); err != nil {
		return err
	}
	// while uses the two templates the other way round from if
	n := c.nextLabel()
	top := c.label("not_true", n)
	exit := c.label("secondLabel", n)

	c.emitter.Label(top)
	if err := c.compileCondition(exit); err != nil {
		return err
	}
	if err := c.compileBlock(); err != nil {
		return err
	}
	c.emitter.Goto(top)
	c.emitter.Label(exit)
	return nil
}

func (c *compiler) compileIf() error {
	if _, err := c.expectKeyword("if"); err != nil {
		return err
	}
	n := c.nextLabel()
	skip := c.label("not_true", n)
	end := c.label("secondLabel", n)

	if err := c.compileCondition(skip); err != nil {
		return err
	}
	if err := c.compileBlock(); err != nil {
		return err
	}
	c.emitter.Goto(end)
	c.emitter.Label(skip)
	if c.at(jacklex.Keyword, "else") {
		c.advance()
		if err := c.compileBlock(); err != nil {
			return err
		}
	}
	c.emitter.Label(end)
	return nil
}

func (c *compiler) compileDo() error {
	if _, err := c.expectKeyword("do"); err != nil {
		return err
	}
	name, err := c.expectIdentifier()
	if err != nil {
		return err
	}
	if err := c.compileCall(name); err != nil {
		return err
	}
	if err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.emitter.Pop(vmcode.Temp, 0)
	return nil
}

func (c *compiler) compileReturn() error {
	if _, err := c.expectKeyword("return"); err != nil {
		return err
	}
	if c.at(jacklex.Symbol, ";") {
		if c.subroutine.Kind == "constructor" {
			c.emitter.Push(vmcode.Pointer, 0)
		} else {
			c.emitter.Push(vmcode.Constant, 0)
		}
	} else if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.expectSymbol(";"); err != nil {
		return err
	}
	c.emitter.Return()
	if c.options.ReferenceCompat {
		c.table.ResetSubroutineScope(false)
	}
	return nil
}
