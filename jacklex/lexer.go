package jacklex

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrExhausted          = errors.New("tokens exhausted")
	ErrUnterminatedString = errors.New("unterminated string constant")
)

// Lexer is a cursor over the tokens of one compilation unit.
// The cursor stops on the final token, it never moves past it.
type Lexer struct {
	tokens []Token
	pos    int
	source []string
}

func New(src string) (*Lexer, error) {
	lines, err := stripLines(src)
	if err != nil {
		return nil, err
	}
	tokens, err := tokenize(lines)
	if err != nil {
		return nil, err
	}
	return &Lexer{
		tokens: tokens,
		source: strings.Split(src, "\n"),
	}, nil
}

func Read(r io.Reader) (*Lexer, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(content))
}

func tokenize(lines []line) ([]Token, error) {
	var tokens []Token

	for _, l := range lines {
		var (
			pending strings.Builder
			start   int
			quote   byte
		)

		flush := func() {
			if pending.Len() == 0 {
				return
			}
			kind, text := Classify(pending.String())
			tokens = append(tokens, Token{
				Kind:   kind,
				Text:   text,
				Line:   l.no,
				Column: start + 1,
			})
			pending.Reset()
		}

		for i := 0; i < len(l.text); i++ {
			c := l.text[i]

			if quote != 0 {
				if c == quote {
					tokens = append(tokens, Token{
						Kind:   StringConstant,
						Text:   pending.String(),
						Line:   l.no,
						Column: start + 1,
					})
					pending.Reset()
					quote = 0
					continue
				}
				pending.WriteByte(c)
				continue
			}

			switch {
			case isQuote(c):
				flush()
				quote = c
				start = i
			case isSymbolChar(c):
				flush()
				tokens = append(tokens, Token{
					Kind:   Symbol,
					Text:   string(c),
					Line:   l.no,
					Column: i + 1,
				})
			case isSpace(c):
				flush()
			default:
				if pending.Len() == 0 {
					start = i
				}
				pending.WriteByte(c)
			}
		}

		if quote != 0 {
			return nil, fmt.Errorf("%w at line %d column %d", ErrUnterminatedString, l.no, start+1)
		}
		flush()
	}

	return tokens, nil
}

func (l *Lexer) Tokens() []Token {
	return l.tokens
}

func (l *Lexer) Current() (Token, error) {
	if len(l.tokens) == 0 {
		return Token{}, ErrExhausted
	}
	return l.tokens[l.pos], nil
}

func (l *Lexer) Advance() error {
	if !l.HasMoreTokens() {
		return ErrExhausted
	}
	l.pos++
	return nil
}

func (l *Lexer) HasMoreTokens() bool {
	return l.pos < len(l.tokens)-1
}

func (l *Lexer) PeekNext() (Token, error) {
	if !l.HasMoreTokens() {
		return Token{}, ErrExhausted
	}
	return l.tokens[l.pos+1], nil
}

// SourceLine returns the original text of a 1-based line, comments included.
func (l *Lexer) SourceLine(no int) (string, bool) {
	if no < 1 || no > len(l.source) {
		return "", false
	}
	return strings.TrimRight(l.source[no-1], "\r"), true
}
