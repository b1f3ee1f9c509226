package ir

// TOCItem is one entry of the table of contents.
type TOCItem struct {
	Text     string    `json:"text"`
	Target   string    `json:"target,omitempty"` // empty for the root entry
	Children []TOCItem `json:"children,omitempty"`
}

// NewTOC creates the root entry that wraps the whole tree.
func NewTOC(title string) *TOCItem {
	return &TOCItem{Text: title}
}

// AddChild appends an entry and returns a pointer to it so callers can
// keep nesting below it.
func (t *TOCItem) AddChild(text, target string) *TOCItem {
	t.Children = append(t.Children, TOCItem{Text: text, Target: target})
	return &t.Children[len(t.Children)-1]
}

// Count returns the number of entries below t.
func (t *TOCItem) Count() int {
	n := 0
	for i := range t.Children {
		n += 1 + t.Children[i].Count()
	}
	return n
}
