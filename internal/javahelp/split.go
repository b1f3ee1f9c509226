package javahelp

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/roboco-io/jhsplit/internal/dom"
	"golang.org/x/net/html"
)

// Splitter cuts single sections out of a document.
type Splitter struct {
	Sections SectionMatcher
}

// Extract returns a copy of doc cut down to the element with the given id:
// its following siblings are removed, and with removePrev its preceding
// siblings too. Everything else (head, wrapper elements) is kept.
//
// Unlike a plain sibling trim, Extract also trims the siblings of every
// enclosing section element the same way. This is deliberate: a nested
// section's file must not carry its parent's sibling sections. For a
// top-level section there is no enclosing section and the result is the
// plain sibling trim.
//
// The first element in pre-order carrying the id is used. nil is returned
// when no element has it.
func (s Splitter) Extract(doc *html.Node, id string, removePrev bool) *html.Node {
	clone := dom.Clone(doc)

	sec := dom.FindByID(clone, id)
	if sec == nil {
		return nil
	}

	trim(sec, removePrev)
	for a := sec.Parent; a != nil; a = a.Parent {
		if s.Sections.IsSection(a) {
			trim(a, removePrev)
		}
	}

	return clone
}

// Split writes the section with the given id to path, replacing any
// existing file. A section that cannot be found is skipped without error
// and reported as not written.
func (s Splitter) Split(doc *html.Node, id string, removePrev bool, path string) (bool, error) {
	out := s.Extract(doc, id, removePrev)
	if out == nil {
		return false, nil
	}

	err := writeFile(path, func(w io.Writer) error {
		return dom.Render(w, out)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func trim(n *html.Node, removePrev bool) {
	if removePrev {
		dom.RemovePrevSiblings(n)
	}
	dom.RemoveNextSiblings(n)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}
