package parser

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

var (
	utf8BOM   = []byte("\xef\xbb\xbf")
	xmlProlog = []byte("<?xml")
)

// voidElements never take content, so <br/> and <br> mean the same thing.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// hasXMLProlog reports whether data starts with an XML declaration.
func hasXMLProlog(data []byte) bool {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(data, xmlProlog)
}

// expandSelfClosing rewrites every self-closing non-void tag, such as
// <a id="top"/>, into an explicit start and end tag. The HTML5 parser
// ignores the trailing slash, which would leave the element open and
// swallow its following siblings.
func expandSelfClosing(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data))

	z := html.NewTokenizer(bytes.NewReader(data))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, errors.Wrap(err, "failed to tokenize xhtml")
			}
			return buf.Bytes(), nil

		case html.SelfClosingTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			if voidElements[tok.Data] {
				buf.WriteString(raw)
				continue
			}
			tok.Type = html.StartTagToken
			buf.WriteString(tok.String())
			buf.WriteString("</" + tok.Data + ">")

		default:
			buf.Write(z.Raw())
		}
	}
}
