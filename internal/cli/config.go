package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/roboco-io/jhsplit/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage the jhsplit configuration.

Config file location: ~/.jhsplit/config.yaml (or $JHSPLIT_CONFIG)

Subcommands:
  show    show the effective configuration
  init    write a default configuration file
  set     change a configuration value
  path    print the configuration file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration that applies to the next run.

Defaults are shown when no configuration file exists.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to ~/.jhsplit/config.yaml.

Fails when the file already exists; use --force to overwrite it.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value.

Supported keys:
  output_dir            output directory (empty: next to the input)
  map_file              JavaHelp map file name
  toc_file              JavaHelp TOC file name
  default_title         TOC title when the manual has no <title>
  sections.tag          element name of a section
  sections.class        class attribute of a section
  sections.contents_id  id of the table of contents element
  sections.index_id     section id the table of contents is filed under

Examples:
  jhsplit config set map_file manual.jhm
  jhsplit config set sections.class chapter`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := newLoader()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing configuration file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("failed to initialise config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: (defaults)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	fmt.Fprintln(cmd.OutOrStdout(), "Environment:")
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	envVars := []struct {
		key   string
		desc  string
		value string
	}{
		{config.EnvConfigPath, "config file path", config.GetEnvOrDefault(config.EnvConfigPath, "(unset)")},
		{"JHSPLIT_VERBOSE", "verbose output", config.GetEnvOrDefault("JHSPLIT_VERBOSE", "(unset)")},
	}

	for _, ev := range envVars {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, ev.value)
	}
	w.Flush()

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("failed to initialise config loader: %w", err)
	}

	if configForce {
		err = loader.Save(config.DefaultConfig())
	} else {
		err = loader.Init()
	}
	if err != nil {
		if loader.Exists() && !configForce {
			return fmt.Errorf("%w\nuse --force to overwrite it", err)
		}
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "config file written: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("failed to initialise config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	field, ok := configField(cfg, key)
	if !ok {
		return fmt.Errorf("unknown config key: %s\nsupported keys: %s", key, strings.Join(configKeys, ", "))
	}
	if value == "" && key != "output_dir" {
		return fmt.Errorf("%s must not be empty", key)
	}
	*field = value

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "config updated: %s = %s\n", key, value)
	return nil
}

var configKeys = []string{
	"output_dir",
	"map_file",
	"toc_file",
	"default_title",
	"sections.tag",
	"sections.class",
	"sections.contents_id",
	"sections.index_id",
}

func configField(cfg *config.Config, key string) (*string, bool) {
	switch key {
	case "output_dir":
		return &cfg.OutputDir, true
	case "map_file":
		return &cfg.MapFile, true
	case "toc_file":
		return &cfg.TOCFile, true
	case "default_title":
		return &cfg.DefaultTitle, true
	case "sections.tag":
		return &cfg.Sections.Tag, true
	case "sections.class":
		return &cfg.Sections.Class, true
	case "sections.contents_id":
		return &cfg.Sections.ContentsID, true
	case "sections.index_id":
		return &cfg.Sections.IndexID, true
	default:
		return nil, false
	}
}
