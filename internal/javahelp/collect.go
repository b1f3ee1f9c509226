package javahelp

import (
	"github.com/roboco-io/jhsplit/internal/dom"
	"github.com/roboco-io/jhsplit/internal/ir"
	"golang.org/x/net/html"
)

// Collect walks the tree in pre-order and records which section every
// id-bearing element belongs to. Each section contributes a self record
// (id, id); any other element with an id inside a section contributes
// (section, id). Ids outside every section are dropped.
//
// The current section travels down the recursion by value: a nested
// section overrides it for its own subtree and the enclosing section is
// back in effect for the siblings that follow.
func Collect(root *html.Node, m SectionMatcher) []ir.Record {
	var records []ir.Record
	collect(root, m, "", &records)
	return records
}

func collect(n *html.Node, m SectionMatcher, section string, records *[]ir.Record) {
	if n.Type == html.ElementNode {
		if id, ok := m.SectionID(n); ok {
			section = id
			*records = append(*records, ir.Record{Section: id, Fragment: id})
		} else if section != "" {
			if id, ok := dom.Attr(n, "id"); ok && id != "" {
				*records = append(*records, ir.Record{Section: section, Fragment: id})
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, m, section, records)
	}
}

// DocumentTitle returns the text of the first <title> element, or fallback
// when the document has none or it is empty.
func DocumentTitle(root *html.Node, fallback string) string {
	if t := dom.FindFirst(root, "title"); t != nil {
		if text := dom.TextContent(t); text != "" {
			return text
		}
	}
	return fallback
}
