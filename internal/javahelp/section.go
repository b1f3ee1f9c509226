// Package javahelp splits a single HTML manual into a JavaHelp help set:
// one HTML file per section, a map file and a table of contents.
package javahelp

import (
	"github.com/roboco-io/jhsplit/internal/dom"
	"golang.org/x/net/html"
)

// SectionMatcher decides which elements are section boundaries.
type SectionMatcher struct {
	Tag        string // element name of a section, e.g. "div"
	Class      string // exact class attribute of a section
	ContentsID string // id of the table of contents element
	IndexID    string // virtual section id the contents element is filed under
}

// DefaultMatcher matches docutils output: <div class="section" id="...">
// plus the <div id="contents"> table of contents.
func DefaultMatcher() SectionMatcher {
	return SectionMatcher{
		Tag:        "div",
		Class:      "section",
		ContentsID: "contents",
		IndexID:    "index",
	}
}

// IsSection reports whether n is a section element. The class must match
// exactly; "section topic" is not a section.
func (m SectionMatcher) IsSection(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == m.Tag && dom.AttrIs(n, "class", m.Class)
}

// IsContents reports whether n is the table of contents element.
func (m SectionMatcher) IsContents(n *html.Node) bool {
	return n.Type == html.ElementNode && dom.AttrIs(n, "id", m.ContentsID)
}

// SectionID returns the section id n opens, if any.
func (m SectionMatcher) SectionID(n *html.Node) (string, bool) {
	if m.IsContents(n) {
		return m.IndexID, true
	}
	if m.IsSection(n) {
		id, _ := dom.Attr(n, "id")
		return id, id != ""
	}
	return "", false
}
