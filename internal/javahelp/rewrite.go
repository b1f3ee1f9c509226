package javahelp

import (
	"github.com/roboco-io/jhsplit/internal/dom"
	"github.com/roboco-io/jhsplit/internal/ir"
	"golang.org/x/net/html"
)

// RemapHref sets href to newHref on every <a> whose href is exactly oldHref.
// The class attribute is dropped from every <a> visited, matching or not.
func RemapHref(root *html.Node, oldHref, newHref string) {
	remap(root, func(href string) (string, bool) {
		if href == oldHref {
			return newHref, true
		}
		return "", false
	})
}

// Rewrite turns in-document anchors into links across the split files:
// "#section" becomes "section.html" and "#fragment" becomes
// "section.html#fragment" for every collected record.
//
// The result equals running RemapHref once per section and then once per
// record, in that order. A rewritten href never starts with "#", so the
// first mapping registered for an anchor is the one that applies.
func Rewrite(root *html.Node, hs *ir.HelpSet) {
	table := RemapTable(hs)
	remap(root, func(href string) (string, bool) {
		v, ok := table[href]
		return v, ok
	})
}

// RemapTable returns the href rewrites Rewrite applies, keyed by old href.
func RemapTable(hs *ir.HelpSet) map[string]string {
	table := make(map[string]string, len(hs.Sections)+len(hs.Records))
	add := func(oldHref, newHref string) {
		if _, ok := table[oldHref]; !ok {
			table[oldHref] = newHref
		}
	}

	for _, id := range hs.SectionIDs() {
		add("#"+id, SectionFile(id))
	}
	for _, r := range hs.Records {
		add("#"+r.Fragment, SectionFile(r.Section)+"#"+r.Fragment)
	}
	return table
}

// SectionFile returns the output file name of a section.
func SectionFile(id string) string {
	return id + ".html"
}

func remap(root *html.Node, lookup func(href string) (string, bool)) {
	dom.Walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "a" {
			return true
		}
		if href, ok := dom.Attr(n, "href"); ok {
			if v, ok := lookup(href); ok {
				dom.SetAttr(n, "href", v)
			}
		}
		dom.RemoveAttr(n, "class")
		return true
	})
}
