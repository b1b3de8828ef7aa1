package jacklex

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnterminatedComment = errors.New("unterminated block comment")

type line struct {
	no   int
	text string
}

// Strip removes comments and blank lines.
// Comment bytes on kept lines become spaces, so columns match the input.
func Strip(src string) (string, error) {
	lines, err := stripLines(src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.text)
	}
	return sb.String(), nil
}

func stripLines(src string) ([]line, error) {
	var (
		ret        []line
		inBlock    bool
		blockStart int
	)

	for i, text := range strings.Split(src, "\n") {
		no := i + 1
		out := make([]byte, 0, len(text))
		// open string delimiter, 0 outside strings
		var quote byte

		for j := 0; j < len(text); {
			if inBlock {
				if strings.HasPrefix(text[j:], "*/") {
					inBlock = false
					out = append(out, ' ', ' ')
					j += 2
					continue
				}
				out = append(out, ' ')
				j++
				continue
			}

			c := text[j]
			if quote != 0 {
				if c == quote {
					quote = 0
				}
				out = append(out, c)
				j++
				continue
			}

			if isQuote(c) {
				quote = c
			} else if strings.HasPrefix(text[j:], "//") {
				break
			} else if strings.HasPrefix(text[j:], "/*") {
				inBlock = true
				blockStart = no
				out = append(out, ' ', ' ')
				j += 2
				continue
			}
			out = append(out, c)
			j++
		}

		kept := strings.TrimRight(string(out), " \t\r\v\f")
		if strings.TrimSpace(kept) == "" {
			continue
		}
		ret = append(ret, line{
			no:   no,
			text: kept,
		})
	}

	if inBlock {
		return nil, fmt.Errorf("%w: opened at line %d", ErrUnterminatedComment, blockStart)
	}
	return ret, nil
}
