package jacklex

import "strings"

type Kind uint8

const (
	Keyword Kind = iota + 1
	Symbol
	IntegerConstant
	StringConstant
	Identifier
)

// String returns the tag name used by the token XML listing.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Symbol:
		return "symbol"
	case IntegerConstant:
		return "integerConstant"
	case StringConstant:
		return "stringConstant"
	case Identifier:
		return "identifier"
	}
	return "invalid"
}

type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

var keywords = map[string]bool{
	"class":       true,
	"constructor": true,
	"function":    true,
	"method":      true,
	"field":       true,
	"static":      true,
	"var":         true,
	"int":         true,
	"char":        true,
	"boolean":     true,
	"void":        true,
	"true":        true,
	"false":       true,
	"null":        true,
	"this":        true,
	"let":         true,
	"do":          true,
	"if":          true,
	"else":        true,
	"while":       true,
	"return":      true,
}

const symbolChars = "{}()[].,;+-*/&|<>=~"

func IsKeyword(s string) bool {
	return keywords[s]
}

func IsSymbol(s string) bool {
	return len(s) == 1 && isSymbolChar(s[0])
}

func isSymbolChar(c byte) bool {
	return strings.IndexByte(symbolChars, c) >= 0
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Classify returns the kind of a raw token and its payload.
// Fixed keyword and symbol sets win over literal syntax, identifiers are the fallback.
func Classify(raw string) (Kind, string) {
	switch {
	case IsKeyword(raw):
		return Keyword, raw
	case IsSymbol(raw):
		return Symbol, raw
	case isInteger(raw):
		return IntegerConstant, raw
	case isQuoted(raw):
		return StringConstant, raw[1 : len(raw)-1]
	}
	return Identifier, raw
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	return isQuote(q) && s[len(s)-1] == q
}
