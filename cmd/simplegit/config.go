package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/config"
	"github.com/gorewood/simplegit/internal/git"
)

// configResult is the JSON shape of the config command.
type configResult struct {
	config.Config
	ResolvedRoot string `json:"resolved_root"`
	ConfigDir    string `json:"config_dir"`
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration and where each layer came from.

Layers, lowest precedence first: built-in defaults, the global config.yaml
in the config directory, .simplegit.yaml in the working directory, .env.local
and .env, SIMPLEGIT_* environment variables, and finally --repo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			cfg, err := loadConfig(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			root, err := git.ResolveRoot(cfg.Root)
			if err != nil {
				return reportError(printer, err)
			}

			result := configResult{Config: cfg, ResolvedRoot: root, ConfigDir: config.Dir()}
			if printer.IsJSON() {
				return printer.WriteJSON(result)
			}

			printer.Section("Configuration")
			printer.KeyValue("root", cfg.Root+" ("+root+")")
			printer.KeyValue("listen", cfg.Listen)
			printer.KeyValue("base_url", cfg.BaseURL)
			printer.KeyValue("git_binary", cfg.GitBinary)
			printer.KeyValue("request_timeout", cfg.RequestTimeout.String())
			printer.KeyValue("log_level", cfg.LogLevel)
			printer.KeyValue("log_format", cfg.LogFormat)

			printer.Section("Sources")
			printer.KeyValue("config_dir", config.Dir())
			for i, source := range cfg.Sources {
				printer.KeyValue(strconv.Itoa(i+1), source)
			}
			return nil
		},
	}
}
