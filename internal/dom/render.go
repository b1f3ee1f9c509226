package dom

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Render serializes root to w without an XML prolog. JavaHelp viewers
// reject documents that start with <?xml ...?>.
func Render(w io.Writer, root *html.Node) error {
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return errors.Wrap(err, "failed to render document")
	}
	if _, err := w.Write(StripProlog(buf.Bytes())); err != nil {
		return errors.Wrap(err, "failed to write document")
	}
	return nil
}

// StripProlog removes a leading XML declaration. The HTML parser keeps a
// declaration as a bogus comment, so both "<?xml ...?>" and
// "<!--?xml ...?-->" are recognised. One line break after it is dropped too.
func StripProlog(data []byte) []byte {
	var end []byte
	switch {
	case bytes.HasPrefix(data, []byte("<?xml")):
		end = []byte("?>")
	case bytes.HasPrefix(data, []byte("<!--?xml")):
		end = []byte("-->")
	default:
		return data
	}

	i := bytes.Index(data, end)
	if i < 0 {
		return data
	}
	rest := data[i+len(end):]
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	rest = bytes.TrimPrefix(rest, []byte("\n"))
	return rest
}
