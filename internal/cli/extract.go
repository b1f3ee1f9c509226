package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/roboco-io/jhsplit/internal/ir"
	"github.com/roboco-io/jhsplit/internal/javahelp"
	"github.com/roboco-io/jhsplit/internal/parser"
	"github.com/spf13/cobra"
)

var (
	extractOutput      string
	extractFormat      string
	extractPrettyPrint bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Show the sections, ids and TOC of a manual without writing the help set",
	Long: `Parse an HTML manual and print what a split would produce: the
section ids, every fragment id with the section file it lands in, and
the table of contents.

Output formats are json and text (summary).

Examples:
  jhsplit extract manual.html
  jhsplit extract manual.html -o helpset.json
  jhsplit extract manual.html --format text`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file path (default: stdout)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "output format (json, text)")
	extractCmd.Flags().BoolVar(&extractPrettyPrint, "pretty", true, "indent JSON output")

	rootCmd.AddCommand(extractCmd)
}

// extraction is the JSON shape printed by the extract command.
type extraction struct {
	Title    string      `json:"title"`
	Sections []string    `json:"sections"`
	Records  []ir.Record `json:"records"`
	TOC      *ir.TOCItem `json:"toc"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Check file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := loadSplitConfig()
	if err != nil {
		return err
	}

	doc, err := parser.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	m := sectionMatcher(cfg)
	hs := ir.NewHelpSet(javahelp.DocumentTitle(doc, cfg.DefaultTitle), javahelp.Collect(doc, m))
	ex := extraction{
		Title:    hs.Title,
		Sections: hs.SectionIDs(),
		Records:  hs.Records,
		TOC:      javahelp.BuildTOC(doc, m, cfg.DefaultTitle),
	}

	output, err := formatOutput(ex, extractFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Write output
	if extractOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	} else {
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to save file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "extracted: %s\n", extractOutput)
	}

	return nil
}

func formatOutput(ex extraction, format string) (string, error) {
	switch format {
	case "json":
		var data []byte
		var err error
		if extractPrettyPrint {
			data, err = json.MarshalIndent(ex, "", "  ")
		} else {
			data, err = json.Marshal(ex)
		}
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text":
		return formatAsText(ex), nil

	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

func formatAsText(ex extraction) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title: %s\n\n", ex.Title))

	sb.WriteString("Sections:\n")
	for _, id := range ex.Sections {
		sb.WriteString(fmt.Sprintf("  %s -> %s\n", id, javahelp.SectionFile(id)))
	}

	hs := ir.NewHelpSet(ex.Title, ex.Records)
	sb.WriteString("\nFragments:\n")
	for _, id := range ex.Sections {
		for _, frag := range hs.FragmentsOf(id) {
			sb.WriteString(fmt.Sprintf("  #%s -> %s#%s\n", frag, javahelp.SectionFile(id), frag))
		}
	}

	sb.WriteString("\nContents:\n")
	formatTOCAsText(&sb, ex.TOC.Children, 1)

	return sb.String()
}

func formatTOCAsText(sb *strings.Builder, items []ir.TOCItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%s- %s (%s)\n", indent, item.Text, item.Target))
		if len(item.Children) > 0 {
			formatTOCAsText(sb, item.Children, depth+1)
		}
	}
}
