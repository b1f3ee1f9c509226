// Package ir defines the intermediate representation of a JavaHelp help set.
// IR is the output of ID collection and the input for map and TOC generation.
package ir

import (
	"maps"
	"slices"
)

// Record ties a fragment id to the section whose output file will hold it.
type Record struct {
	Section  string `json:"section"`
	Fragment string `json:"fragment"`
}

// IsSelf reports whether the record is the self reference of a section.
func (r Record) IsSelf() bool {
	return r.Section == r.Fragment
}

// SectionSet is the deduplicated set of section ids.
type SectionSet map[string]struct{}

// NewSectionSet creates a set holding the given ids.
func NewSectionSet(ids ...string) SectionSet {
	s := make(SectionSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set.
func (s SectionSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s SectionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order. Every consumer iterates in this
// order so repeated runs produce identical output.
func (s SectionSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// HelpSet is everything collected from a parsed manual.
type HelpSet struct {
	Title    string     `json:"title"`
	Records  []Record   `json:"records"`
	Sections SectionSet `json:"-"`
}

// NewHelpSet creates a help set from collected records.
func NewHelpSet(title string, records []Record) *HelpSet {
	hs := &HelpSet{
		Title:    title,
		Records:  records,
		Sections: make(SectionSet),
	}
	for _, r := range records {
		hs.Sections.Add(r.Section)
	}
	return hs
}

// SectionIDs returns the sorted section ids.
func (h *HelpSet) SectionIDs() []string {
	return h.Sections.Sorted()
}

// FragmentsOf returns the fragment ids owned by section, in document order,
// excluding the section's self reference.
func (h *HelpSet) FragmentsOf(section string) []string {
	var out []string
	for _, r := range h.Records {
		if r.Section == section && !r.IsSelf() {
			out = append(out, r.Fragment)
		}
	}
	return out
}
