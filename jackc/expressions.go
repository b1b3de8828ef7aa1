package jackc

import (
	"strconv"

	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/vmcode"
)

const maxInteger = 32767

var binaryOps = map[string]vmcode.Op{
	"+": vmcode.Add,
	"-": vmcode.Sub,
	"&": vmcode.And,
	"|": vmcode.Or,
	"<": vmcode.Lt,
	">": vmcode.Gt,
	"=": vmcode.Eq,
}

func isBinaryOp(tok jacklex.Token) bool {
	if tok.Kind != jacklex.Symbol {
		return false
	}
	if _, ok := binaryOps[tok.Text]; ok {
		return true
	}
	return tok.Text == "*" || tok.Text == "/"
}

// compileExpression compiles term (op expression)?. Operators have no precedence,
// the right operand is the rest of the chain and the op follows it, so
// 1 + 2 * 3 emits 1 2 3 multiply add.
func (c *compiler) compileExpression() error {
	if err := c.compileTerm(); err != nil {
		return err
	}
	tok, err := c.current()
	if err != nil || !isBinaryOp(tok) {
		return nil
	}
	c.advance()
	if err := c.compileExpression(); err != nil {
		return err
	}
	c.emitOp(tok.Text)
	return nil
}

func (c *compiler) emitOp(op string) {
	switch op {
	case "*":
		c.emitter.Call(c.options.Multiply, 2)
	case "/":
		c.emitter.Call(c.options.Divide, 2)
	default:
		c.emitter.Arithmetic(binaryOps[op])
	}
}

func (c *compiler) compileTerm() error {
	tok, err := c.current()
	if err != nil {
		return err
	}

	switch tok.Kind {

	case jacklex.IntegerConstant:
		n, err := strconv.Atoi(tok.Text)
		if err != nil || n > maxInteger {
			return c.syntaxError(ErrIntegerRange, tok)
		}
		c.emitter.Push(vmcode.Constant, n)
		c.advance()
		return nil

	case jacklex.StringConstant:
		c.compileString(tok.Text)
		c.advance()
		return nil

	case jacklex.Keyword:
		switch tok.Text {
		case "true":
			if c.options.AllOnesTrue {
				c.emitter.Push(vmcode.Constant, 0)
			} else {
				c.emitter.Push(vmcode.Constant, 1)
			}
			c.emitter.Arithmetic(vmcode.Not)
		case "false", "null":
			c.emitter.Push(vmcode.Constant, 0)
		case "this":
			c.emitter.Push(vmcode.Pointer, 0)
		default:
			return c.syntaxError(ErrSpecificKeywordExpected, tok, "true", "false", "null", "this")
		}
		c.advance()
		return nil

	case jacklex.Symbol:
		switch tok.Text {
		case "(":
			c.advance()
			if err := c.compileExpression(); err != nil {
				return err
			}
			return c.expectSymbol(")")
		case "-":
			c.advance()
			if err := c.compileTerm(); err != nil {
				return err
			}
			if c.options.ReferenceCompat {
				c.emitter.Arithmetic(vmcode.Sub)
			} else {
				c.emitter.Arithmetic(vmcode.Neg)
			}
			return nil
		case "~":
			c.advance()
			if err := c.compileTerm(); err != nil {
				return err
			}
			c.emitter.Arithmetic(vmcode.Not)
			return nil
		}
		return c.syntaxError(ErrSpecificSymbolExpected, tok, "(", "-", "~")

	case jacklex.Identifier:
		next := c.peek()
		switch {
		case next.Is(jacklex.Symbol, "["):
			base, err := c.resolve(tok)
			if err != nil {
				return err
			}
			c.advance()
			c.advance()
			c.push(base)
			if err := c.compileExpression(); err != nil {
				return err
			}
			if err := c.expectSymbol("]"); err != nil {
				return err
			}
			c.emitter.Arithmetic(vmcode.Add)
			c.emitter.Pop(vmcode.Pointer, 1)
			c.emitter.Push(vmcode.That, 0)
			return nil
		case next.Is(jacklex.Symbol, "("), next.Is(jacklex.Symbol, "."):
			c.advance()
			return c.compileCall(tok)
		}
		symbol, err := c.resolve(tok)
		if err != nil {
			return err
		}
		c.push(symbol)
		c.advance()
		return nil

	}

	return c.syntaxError(ErrIdentifierExpected, tok)
}

func (c *compiler) compileString(s string) {
	chars := []rune(s)
	c.emitter.Push(vmcode.Constant, len(chars))
	c.emitter.Call(c.options.StringNew, 1)
	for _, char := range chars {
		c.emitter.Push(vmcode.Constant, int(char))
		c.emitter.Call(c.options.StringAppend, 2)
	}
}

// compileCall compiles a subroutine call whose leading identifier is already consumed
func (c *compiler) compileCall(first jacklex.Token) error {
	var (
		target string
		nArgs  int
	)

	if c.at(jacklex.Symbol, ".") {
		c.advance()
		member, err := c.expectIdentifier()
		if err != nil {
			return err
		}
		if receiver, ok := c.table.Resolve(first.Text); ok {
			c.push(receiver)
			nArgs = 1
			target = receiver.Type + "." + member.Text
		} else {
			target = first.Text + "." + member.Text
		}
	} else {
		target = c.unit + "." + first.Text
		if first.Text != "new" {
			c.emitter.Push(vmcode.Pointer, 0)
			nArgs = 1
		}
	}

	if err := c.expectSymbol("("); err != nil {
		return err
	}
	n, err := c.compileExpressionList()
	if err != nil {
		return err
	}
	if err := c.expectSymbol(")"); err != nil {
		return err
	}
	c.emitter.Call(target, nArgs+n)
	return nil
}

func (c *compiler) compileExpressionList() (int, error) {
	if c.at(jacklex.Symbol, ")") {
		return 0, nil
	}
	n := 0
	for {
		if err := c.compileExpression(); err != nil {
			return n, err
		}
		n++
		if !c.at(jacklex.Symbol, ",") {
			return n, nil
		}
		c.advance()
	}
}
