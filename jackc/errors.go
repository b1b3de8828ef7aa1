package jackc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/jackc/jacklex"
	"github.com/reusee/jackc/symbols"
)

var (
	ErrKeywordExpected         = errors.New("keyword expected")
	ErrSymbolExpected          = errors.New("symbol expected")
	ErrSpecificKeywordExpected = errors.New("unexpected keyword")
	ErrSpecificSymbolExpected  = errors.New("unexpected symbol")
	ErrIdentifierExpected      = errors.New("identifier expected")
	ErrTokensExhausted         = jacklex.ErrExhausted
	ErrUnresolved              = errors.New("unresolved identifier")
	ErrIntegerRange            = errors.New("integer constant out of range")
	ErrTrailingTokens          = errors.New("tokens after end of class")
	ErrDuplicateSymbol         = symbols.ErrDuplicate
)

// SyntaxError reports the token a grammar rule could not accept.
type SyntaxError struct {
	Err      error
	Source   string
	Expected []string
	Got      jacklex.Token
	// original text of the offending line, empty if unknown
	Line string
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	if e.Source != "" {
		sb.WriteString(e.Source)
		sb.WriteString(":")
	}
	if e.Got.Line > 0 {
		fmt.Fprintf(&sb, "%d:%d:", e.Got.Line, e.Got.Column)
	}
	if sb.Len() > 0 {
		sb.WriteString(" ")
	}
	sb.WriteString(e.Err.Error())
	if len(e.Expected) > 0 {
		fmt.Fprintf(&sb, ", expected %s", strings.Join(quoteAll(e.Expected), " or "))
	}
	if e.Got.Kind != 0 {
		fmt.Fprintf(&sb, ", got %s %q", e.Got.Kind, e.Got.Text)
	}

	if e.Line != "" && e.Got.Column > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.Line)
		sb.WriteString("\n")
		for i := 0; i < e.Got.Column-1 && i < len(e.Line); i++ {
			if e.Line[i] == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^")
	}

	return sb.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func quoteAll(strs []string) []string {
	ret := make([]string, len(strs))
	for i, s := range strs {
		ret[i] = fmt.Sprintf("%q", s)
	}
	return ret
}
