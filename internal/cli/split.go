package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roboco-io/jhsplit/internal/config"
	"github.com/roboco-io/jhsplit/internal/javahelp"
	"github.com/roboco-io/jhsplit/internal/parser"
	"github.com/spf13/cobra"
)

var (
	splitOutputDir string
	splitMapFile   string
	splitTOCFile   string
	splitTitle     string
)

func init() {
	rootCmd.Flags().StringVarP(&splitOutputDir, "output-dir", "o", "", "output directory (default: the input file's directory)")
	rootCmd.Flags().StringVar(&splitMapFile, "map", "", "map file name (default cl1_map.jhm)")
	rootCmd.Flags().StringVar(&splitTOCFile, "toc", "", "TOC file name (default cl1_toc.xml)")
	rootCmd.Flags().StringVar(&splitTitle, "title", "", "TOC title used when the document has no <title>")
}

func runSplit(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	log := newLogger(cmd.ErrOrStderr())

	// Check file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if format := parser.DetectFormat(inputPath); format == parser.FormatUnknown {
		log.Warn("unrecognised extension, parsing as html", "ext", filepath.Ext(inputPath))
	}

	cfg, err := loadSplitConfig()
	if err != nil {
		return err
	}

	log.Debug("splitting manual", "input", inputPath, "map", cfg.MapFile, "toc", cfg.TOCFile)

	res, err := javahelp.New(pipelineOptions(cfg, log)).Run(inputPath)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	log.Info("help set written",
		"sections", len(res.Written),
		"records", len(res.HelpSet.Records),
		"map", res.MapPath,
		"toc", res.TOCPath)
	return nil
}

// loadSplitConfig loads the configuration file and applies command line
// overrides on top of it.
func loadSplitConfig() (*config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialise config loader: %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if splitOutputDir != "" {
		cfg.OutputDir = splitOutputDir
	}
	if splitMapFile != "" {
		cfg.MapFile = splitMapFile
	}
	if splitTOCFile != "" {
		cfg.TOCFile = splitTOCFile
	}
	if splitTitle != "" {
		cfg.DefaultTitle = splitTitle
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func sectionMatcher(cfg *config.Config) javahelp.SectionMatcher {
	return javahelp.SectionMatcher{
		Tag:        cfg.Sections.Tag,
		Class:      cfg.Sections.Class,
		ContentsID: cfg.Sections.ContentsID,
		IndexID:    cfg.Sections.IndexID,
	}
}

func pipelineOptions(cfg *config.Config, log *slog.Logger) javahelp.Options {
	return javahelp.Options{
		OutputDir:    cfg.OutputDir,
		MapFile:      cfg.MapFile,
		TOCFile:      cfg.TOCFile,
		DefaultTitle: cfg.DefaultTitle,
		Sections:     sectionMatcher(cfg),
		Logger:       log,
	}
}
