package javahelp

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/roboco-io/jhsplit/internal/ir"
	"golang.org/x/net/html"
)

const mapHeader = `<!DOCTYPE map
  PUBLIC "-//Sun Microsystems Inc.//DTD JavaHelp Map Version 1.0//EN"
  "http://java.sun.com/products/javahelp/map_1_0.dtd">

<map version="1.0">
`

// WriteMap writes the JavaHelp map file: one mapID per section pointing
// at the section's HTML file, in sorted order.
func WriteMap(w io.Writer, sections ir.SectionSet) error {
	var sb strings.Builder
	sb.WriteString(mapHeader)
	for _, id := range sections.Sorted() {
		sb.WriteString(fmt.Sprintf("  <mapID target=\"%s\" url=\"%s\" />\n",
			html.EscapeString(id), html.EscapeString(SectionFile(id))))
	}
	sb.WriteString("</map>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write map")
	}
	return nil
}
