package javahelp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roboco-io/jhsplit/internal/dom"
	"github.com/roboco-io/jhsplit/internal/parser"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// scenarioHTML has a contents node and two sibling sections with one
// fragment each.
const scenarioHTML = `<html><head><title>Manual</title></head><body>
<div id="contents"><ul><li><a class="reference" href="#ex1">Example</a></li><li><a class="reference" href="#usage">Usage</a></li></ul></div>
<div class="section" id="intro"><h1>Introduction</h1><p id="ex1">one</p></div>
<div class="section" id="usage"><h1>Usage</h1><p id="ex2">two</p></div>
</body></html>`

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := parser.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func loadManual(t *testing.T) *html.Node {
	t.Helper()
	doc, err := parser.ParseFile(filepath.Join("testdata", "manual.html"))
	require.NoError(t, err)
	return doc
}

func renderHTML(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, dom.Render(&buf, n))
	return buf.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func href(t *testing.T, root *html.Node, text string) string {
	t.Helper()
	var found *html.Node
	dom.Walk(root, func(n *html.Node) bool {
		if found == nil && n.Type == html.ElementNode && n.Data == "a" && dom.TextContent(n) == text {
			found = n
		}
		return found == nil
	})
	require.NotNil(t, found, "no anchor with text %q", text)
	v, _ := dom.Attr(found, "href")
	return v
}
