package parser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{
			name:     "html extension",
			path:     "manual.html",
			expected: FormatHTML,
		},
		{
			name:     "HTML uppercase",
			path:     "MANUAL.HTML",
			expected: FormatHTML,
		},
		{
			name:     "htm extension",
			path:     "manual.htm",
			expected: FormatHTML,
		},
		{
			name:     "xhtml extension",
			path:     "manual.xhtml",
			expected: FormatXHTML,
		},
		{
			name:     "unknown extension",
			path:     "manual.rst",
			expected: FormatUnknown,
		},
		{
			name:     "no extension",
			path:     "manual",
			expected: FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFormat(tt.path)
			if got != tt.expected {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatHTML, "html"},
		{FormatXHTML, "xhtml"},
		{FormatUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.expected)
		}
	}
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		return n.FirstChild.Data
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func TestParse(t *testing.T) {
	input := `<?xml version="1.0" encoding="utf-8" ?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml"><head><title>Größe</title></head>
<body><div class="section" id="intro"><h1>Intro</h1></div></body></html>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := findTitle(doc); got != "Größe" {
		t.Errorf("expected title 'Größe', got %q", got)
	}
}

func TestParse_Latin1(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=iso-8859-1"><title>Gr`)
	buf.WriteByte(0xf6) // ö in latin-1
	buf.WriteString(`&szlig;e</title></head><body></body></html>`)

	doc, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := findTitle(doc); got != "Größe" {
		t.Errorf("expected title 'Größe', got %q", got)
	}
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manual.html")
	if err := os.WriteFile(path, []byte("<html><head><title>Manual</title></head></html>"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if got := findTitle(doc); got != "Manual" {
		t.Errorf("expected title 'Manual', got %q", got)
	}

	_, err = ParseFile(filepath.Join(tmpDir, "missing.html"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.html") {
		t.Errorf("expected error to mention the path, got %v", err)
	}
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func TestParse_XHTMLSelfClosingTags(t *testing.T) {
	input := `<?xml version="1.0" encoding="utf-8" ?>
<html xmlns="http://www.w3.org/1999/xhtml"><head><title>Manual</title></head><body>
<div class="section" id="intro"><a id="top"/><h1>Introduction</h1><p>one<br/>two</p><span id="x"/></div>
<div class="section" id="usage"><h1>Usage</h1></div>
</body></html>`

	doc, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	intro := findByID(doc, "intro")
	if intro == nil {
		t.Fatal("expected section 'intro'")
	}

	top := findByID(doc, "top")
	if top == nil || top.FirstChild != nil {
		t.Fatalf("expected empty anchor 'top', got %+v", top)
	}
	if top.Parent != intro {
		t.Errorf("expected anchor to be a child of the section, got parent %q", top.Parent.Data)
	}

	heading := top.NextSibling
	if heading == nil || heading.Data != "h1" || heading.Parent != intro {
		t.Errorf("expected h1 to follow the anchor inside the section")
	}

	if span := findByID(doc, "x"); span == nil || span.Parent != intro || span.FirstChild != nil {
		t.Errorf("expected empty span to stay inside the section")
	}

	if usage := findByID(doc, "usage"); usage == nil || usage.Parent != intro.Parent {
		t.Errorf("expected 'usage' to be a sibling of 'intro'")
	}

	var brs int
	var count func(*html.Node)
	count = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "br" {
			brs++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			count(c)
		}
	}
	count(doc)
	if brs != 1 {
		t.Errorf("expected one br element, got %d", brs)
	}
}

func TestParse_HTMLKeepsHTML5Rules(t *testing.T) {
	// Without an XML declaration the trailing slash is ignored as in HTML5.
	doc, err := Parse(strings.NewReader(`<div id="outer"><span id="x"/><p id="p">text</p></div>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p := findByID(doc, "p"); p == nil || p.Parent.Data != "span" {
		t.Errorf("expected paragraph inside the unclosed span")
	}
}

func TestParseFile_XHTMLExtension(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manual.xhtml")
	input := `<html><body><div id="s"><a id="top"/><h1>Title</h1></div></body></html>`
	if err := os.WriteFile(path, []byte(input), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	top := findByID(doc, "top")
	if top == nil || top.NextSibling == nil || top.NextSibling.Data != "h1" {
		t.Errorf("expected h1 to be the anchor's next sibling")
	}
}

func TestHasXMLProlog(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{`<?xml version="1.0"?><html/>`, true},
		{"\xef\xbb\xbf\n  <?xml version=\"1.0\"?>", true},
		{`<!DOCTYPE html><html></html>`, false},
		{``, false},
	}

	for _, tt := range tests {
		if got := hasXMLProlog([]byte(tt.input)); got != tt.expected {
			t.Errorf("hasXMLProlog(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
