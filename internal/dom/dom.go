// Package dom provides traversal and mutation helpers over the html.Node tree.
package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of the attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrIs reports whether n carries the attribute key with exactly val.
func AttrIs(n *html.Node, key, val string) bool {
	v, ok := Attr(n, key)
	return ok && v == val
}

// SetAttr sets key to val, keeping the attribute's position when it exists.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes every occurrence of key from n.
func RemoveAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}

// Walk calls fn for n and every descendant in pre-order. Returning false
// from fn skips the node's children.
func Walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// FindByID returns the first element in pre-order whose id equals id.
// Ids are not required to be unique; later duplicates are never reached.
func FindByID(root *html.Node, id string) *html.Node {
	if AttrIs(root, "id", id) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindFirst returns the first element in pre-order with the given tag.
func FindFirst(root *html.Node, tag string) *html.Node {
	if root.Type == html.ElementNode && root.Data == tag {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// TextContent returns the concatenated text below n, trimmed.
func TextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

// HeadingLevel returns N for an hN tag name and 0 for anything else.
func HeadingLevel(tag string) int {
	if len(tag) < 2 || tag[0] != 'h' {
		return 0
	}
	level, err := strconv.Atoi(tag[1:])
	if err != nil || level <= 0 {
		return 0
	}
	return level
}

// FirstHeadingChild returns the first direct child element that is a heading.
func FirstHeadingChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && HeadingLevel(c.Data) > 0 {
			return c
		}
	}
	return nil
}

// RemovePrevSiblings detaches every sibling before n.
func RemovePrevSiblings(n *html.Node) {
	for n.PrevSibling != nil {
		n.Parent.RemoveChild(n.PrevSibling)
	}
}

// RemoveNextSiblings detaches every sibling after n.
func RemoveNextSiblings(n *html.Node) {
	for n.NextSibling != nil {
		n.Parent.RemoveChild(n.NextSibling)
	}
}
