package dom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, n))
	return buf.String()
}

func TestAttrHelpers(t *testing.T) {
	doc := parse(t, `<a class="ref" href="#x" title="t">link</a>`)
	a := FindFirst(doc, "a")
	require.NotNil(t, a)

	v, ok := Attr(a, "href")
	assert.True(t, ok)
	assert.Equal(t, "#x", v)
	assert.True(t, AttrIs(a, "class", "ref"))
	assert.False(t, AttrIs(a, "class", "other"))

	SetAttr(a, "href", "intro.html#x")
	assert.Equal(t, "href", a.Attr[1].Key, "set must keep attribute position")
	assert.Equal(t, "intro.html#x", a.Attr[1].Val)

	SetAttr(a, "target", "_top")
	assert.Equal(t, "target", a.Attr[len(a.Attr)-1].Key)

	RemoveAttr(a, "class")
	_, ok = Attr(a, "class")
	assert.False(t, ok)
	assert.Len(t, a.Attr, 3)

	_, ok = Attr(nil, "id")
	assert.False(t, ok)
}

func TestFindByID_FirstPreOrderMatchWins(t *testing.T) {
	doc := parse(t, `<body>
<div id="outer"><p id="dup">first</p></div>
<p id="dup">second</p>
</body>`)

	found := FindByID(doc, "dup")
	require.NotNil(t, found)
	assert.Equal(t, "first", TextContent(found))
	assert.Nil(t, FindByID(doc, "missing"))
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"h1", 1},
		{"h3", 3},
		{"h6", 6},
		{"h10", 10},
		{"h", 0},
		{"h0", 0},
		{"hr", 0},
		{"head", 0},
		{"html", 0},
		{"p", 0},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, HeadingLevel(tt.tag))
		})
	}
}

func TestFirstHeadingChild_DirectChildrenOnly(t *testing.T) {
	doc := parse(t, `<div id="s"><div><h2>nested</h2></div><h3>direct</h3><h1>later</h1></div>`)
	s := FindByID(doc, "s")
	require.NotNil(t, s)

	h := FirstHeadingChild(s)
	require.NotNil(t, h)
	assert.Equal(t, "direct", TextContent(h))

	empty := parse(t, `<div id="s"><p>no heading</p></div>`)
	assert.Nil(t, FirstHeadingChild(FindByID(empty, "s")))
}

func TestClone_Independent(t *testing.T) {
	doc := parse(t, `<body><div id="a" class="x"><p id="b">text</p></div><div id="c"></div></body>`)
	before := render(t, doc)

	c := Clone(doc)
	assert.Equal(t, before, render(t, c))

	a := FindByID(c, "a")
	require.NotNil(t, a)
	SetAttr(a, "class", "changed")
	RemoveNextSiblings(a)
	FindByID(c, "b").FirstChild.Data = "mutated"

	assert.Equal(t, before, render(t, doc), "original must not change")
	assert.NotNil(t, FindByID(doc, "c"))
	assert.True(t, AttrIs(FindByID(doc, "a"), "class", "x"))
}

func TestRemoveSiblings(t *testing.T) {
	doc := parse(t, `<body><p id="one"></p><p id="two"></p><p id="three"></p></body>`)
	two := FindByID(doc, "two")
	require.NotNil(t, two)

	RemovePrevSiblings(two)
	RemoveNextSiblings(two)

	body := FindFirst(doc, "body")
	assert.Equal(t, two, body.FirstChild)
	assert.Equal(t, two, body.LastChild)

	// no siblings left: both calls are no-ops
	RemovePrevSiblings(two)
	RemoveNextSiblings(two)
	assert.Equal(t, two, body.FirstChild)
}

func TestStripProlog(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"xml declaration", "<?xml version=\"1.0\" encoding=\"utf-8\" ?>\n<html></html>", "<html></html>"},
		{"bogus comment", "<!--?xml version=\"1.0\" ?--><!DOCTYPE html><html></html>", "<!DOCTYPE html><html></html>"},
		{"crlf", "<?xml version=\"1.0\"?>\r\n<html></html>", "<html></html>"},
		{"no prolog", "<!DOCTYPE html><html></html>", "<!DOCTYPE html><html></html>"},
		{"other comment", "<!-- note --><html></html>", "<!-- note --><html></html>"},
		{"unterminated", "<?xml version", "<?xml version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripProlog([]byte(tt.in))))
		})
	}
}

func TestRender_StripsParsedProlog(t *testing.T) {
	doc := parse(t, "<?xml version=\"1.0\" encoding=\"utf-8\" ?>\n<!DOCTYPE html>\n<html><head></head><body><p>x</p></body></html>")

	out := render(t, doc)
	assert.False(t, strings.Contains(out, "?xml"), out)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), out)
}

func TestWalk_SkipChildren(t *testing.T) {
	doc := parse(t, `<body><div id="skip"><p id="inner"></p></div><p id="after"></p></body>`)

	var seen []string
	Walk(doc, func(n *html.Node) bool {
		if id, ok := Attr(n, "id"); ok {
			seen = append(seen, id)
			return id != "skip"
		}
		return true
	})
	assert.Equal(t, []string{"skip", "after"}, seen)
}
