package javahelp

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/roboco-io/jhsplit/internal/dom"
	"github.com/roboco-io/jhsplit/internal/ir"
	"golang.org/x/net/html"
)

const tocHeader = `<!DOCTYPE toc
  PUBLIC "-//Sun Microsystems Inc.//DTD JavaHelp TOC Version 2.0//EN"
         "http://java.sun.com/products/javahelp/toc_2_0.dtd">
<toc version="2.0">
`

// BuildTOC builds the table of contents of doc. The root entry carries the
// document title; below it every section element becomes an entry labelled
// with its first direct heading child, nested the way the sections nest.
func BuildTOC(doc *html.Node, m SectionMatcher, defaultTitle string) *ir.TOCItem {
	root := ir.NewTOC(DocumentTitle(doc, defaultTitle))
	buildTOC(doc, m, root)
	return root
}

func buildTOC(n *html.Node, m SectionMatcher, parent *ir.TOCItem) {
	if m.IsSection(n) {
		var text string
		if h := dom.FirstHeadingChild(n); h != nil {
			text = dom.TextContent(h)
		}
		id, _ := dom.Attr(n, "id")
		parent = parent.AddChild(text, id)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		buildTOC(c, m, parent)
	}
}

// WriteTOC writes toc as a JavaHelp TOC file. Opening tags are indented
// two spaces per nesting level below the top-level entries; closing tags
// always start at column 0, as in the cl1 help sets.
func WriteTOC(w io.Writer, toc *ir.TOCItem) error {
	var sb strings.Builder
	sb.WriteString(tocHeader)
	sb.WriteString(fmt.Sprintf("<tocitem text=\"%s\">\n", html.EscapeString(toc.Text)))
	for i := range toc.Children {
		writeTOCItem(&sb, &toc.Children[i], 0)
	}
	sb.WriteString("</tocitem>\n")
	sb.WriteString("</toc>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write toc")
	}
	return nil
}

func writeTOCItem(sb *strings.Builder, item *ir.TOCItem, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(fmt.Sprintf("%s<tocitem text=\"%s\" target=\"%s\">\n",
		indent, html.EscapeString(item.Text), html.EscapeString(item.Target)))
	for i := range item.Children {
		writeTOCItem(sb, &item.Children[i], depth+1)
	}
	sb.WriteString("</tocitem>\n")
}
