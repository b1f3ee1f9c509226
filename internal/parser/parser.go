// Package parser reads HTML manuals into a document tree.
package parser

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Format represents an input document format.
type Format int

const (
	FormatUnknown Format = iota
	FormatHTML
	FormatXHTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatXHTML:
		return "xhtml"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".html", ".htm":
		return FormatHTML
	case ".xhtml", ".xht":
		return FormatXHTML
	default:
		return FormatUnknown
	}
}

// Parse reads the whole input and returns the document root.
// Input that is not valid UTF-8 is decoded using the charset the document
// declares in its meta tags (windows-1252 when it declares none).
// Input starting with an XML declaration is read as XHTML.
func Parse(r io.Reader) (*html.Node, error) {
	return parse(r, false)
}

// ParseFile opens and parses the document at path. Files with an XHTML
// extension are read as XHTML even without an XML declaration.
func ParseFile(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	doc, err := parse(f, DetectFormat(path) == FormatXHTML)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return doc, nil
}

func parse(r io.Reader, xhtml bool) (*html.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	if !utf8.Valid(data) {
		enc, _, _ := charset.DetermineEncoding(data, "")
		data, err = io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(data)))
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode document")
		}
	}

	if xhtml || hasXMLProlog(data) {
		if data, err = expandSelfClosing(data); err != nil {
			return nil, err
		}
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html")
	}
	return doc, nil
}
