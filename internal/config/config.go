// Package config manages application configuration.
package config

import "fmt"

// Config represents the application configuration.
type Config struct {
	OutputDir    string        `yaml:"output_dir"` // empty: next to the input file
	MapFile      string        `yaml:"map_file"`
	TOCFile      string        `yaml:"toc_file"`
	DefaultTitle string        `yaml:"default_title"`
	Sections     SectionConfig `yaml:"sections"`
}

// SectionConfig describes how section boundaries are recognised in the
// input document.
type SectionConfig struct {
	Tag        string `yaml:"tag"`
	Class      string `yaml:"class"`
	ContentsID string `yaml:"contents_id"`
	IndexID    string `yaml:"index_id"` // virtual section id of the contents node
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:    "",
		MapFile:      "cl1_map.jhm",
		TOCFile:      "cl1_toc.xml",
		DefaultTitle: "Help document",
		Sections: SectionConfig{
			Tag:        "div",
			Class:      "section",
			ContentsID: "contents",
			IndexID:    "index",
		},
	}
}

// ApplyDefaults fills every empty field from DefaultConfig.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.MapFile == "" {
		c.MapFile = d.MapFile
	}
	if c.TOCFile == "" {
		c.TOCFile = d.TOCFile
	}
	if c.DefaultTitle == "" {
		c.DefaultTitle = d.DefaultTitle
	}
	if c.Sections.Tag == "" {
		c.Sections.Tag = d.Sections.Tag
	}
	if c.Sections.Class == "" {
		c.Sections.Class = d.Sections.Class
	}
	if c.Sections.ContentsID == "" {
		c.Sections.ContentsID = d.Sections.ContentsID
	}
	if c.Sections.IndexID == "" {
		c.Sections.IndexID = d.Sections.IndexID
	}
}

// Validate checks that the output file names are usable.
func (c *Config) Validate() error {
	if c.MapFile == c.TOCFile {
		return fmt.Errorf("map_file and toc_file must differ: %s", c.MapFile)
	}
	return nil
}
