package javahelp

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/roboco-io/jhsplit/internal/ir"
	"github.com/roboco-io/jhsplit/internal/parser"
	"golang.org/x/net/html"
)

// Options configures a Pipeline.
type Options struct {
	OutputDir    string // empty: the input file's directory
	MapFile      string
	TOCFile      string
	DefaultTitle string
	Sections     SectionMatcher
	Logger       *slog.Logger // nil: discard
}

// DefaultOptions returns the options that reproduce the classic cl1 help set.
func DefaultOptions() Options {
	return Options{
		MapFile:      "cl1_map.jhm",
		TOCFile:      "cl1_toc.xml",
		DefaultTitle: "Help document",
		Sections:     DefaultMatcher(),
	}
}

// Result describes what a run produced.
type Result struct {
	HelpSet *ir.HelpSet
	TOC     *ir.TOCItem
	Written []string // section files, in section order
	Skipped []string // section ids with no element to split
	MapPath string
	TOCPath string
}

// Pipeline runs parse, collect, rewrite, split, map and TOC in order.
type Pipeline struct {
	opts Options
	log  *slog.Logger
}

// New creates a pipeline.
func New(opts Options) *Pipeline {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{opts: opts, log: log}
}

// Run converts the manual at inputPath.
func (p *Pipeline) Run(inputPath string) (*Result, error) {
	doc, err := parser.ParseFile(inputPath)
	if err != nil {
		return nil, err
	}

	outDir := p.opts.OutputDir
	if outDir == "" {
		abs, err := filepath.Abs(inputPath)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve input path")
		}
		outDir = filepath.Dir(abs)
	}
	return p.Process(doc, outDir)
}

// Process runs every stage after parsing on doc, writing into outDir.
// doc is rewritten in place.
func (p *Pipeline) Process(doc *html.Node, outDir string) (*Result, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	records := Collect(doc, p.opts.Sections)
	hs := ir.NewHelpSet(DocumentTitle(doc, p.opts.DefaultTitle), records)
	p.log.Debug("collected ids", "sections", len(hs.Sections), "records", len(records))

	Rewrite(doc, hs)

	res := &Result{HelpSet: hs}
	splitter := Splitter{Sections: p.opts.Sections}
	for _, id := range hs.SectionIDs() {
		path := filepath.Join(outDir, SectionFile(id))
		written, err := splitter.Split(doc, id, true, path)
		if err != nil {
			return nil, err
		}
		if !written {
			res.Skipped = append(res.Skipped, id)
			continue
		}
		p.log.Debug("wrote section", "section", id, "path", path)
		res.Written = append(res.Written, path)
	}

	res.MapPath = filepath.Join(outDir, p.opts.MapFile)
	err := writeFile(res.MapPath, func(w io.Writer) error {
		return WriteMap(w, hs.Sections)
	})
	if err != nil {
		return nil, err
	}
	p.log.Debug("wrote map", "path", res.MapPath)

	res.TOC = BuildTOC(doc, p.opts.Sections, p.opts.DefaultTitle)
	res.TOCPath = filepath.Join(outDir, p.opts.TOCFile)
	err = writeFile(res.TOCPath, func(w io.Writer) error {
		return WriteTOC(w, res.TOC)
	})
	if err != nil {
		return nil, err
	}
	p.log.Debug("wrote toc", "path", res.TOCPath, "entries", res.TOC.Count())

	return res, nil
}
