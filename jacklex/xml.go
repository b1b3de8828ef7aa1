package jacklex

import (
	"bufio"
	"encoding/xml"
	"io"
)

// WriteXML writes the token listing of the syntax analyzer stage.
func WriteXML(w io.Writer, tokens []Token) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<tokens>\n")
	for _, token := range tokens {
		tag := token.Kind.String()
		bw.WriteString("<" + tag + "> ")
		if err := xml.EscapeText(bw, []byte(token.Text)); err != nil {
			return err
		}
		bw.WriteString(" </" + tag + ">\n")
	}
	bw.WriteString("</tokens>\n")
	return bw.Flush()
}
