package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newConfigCmd creates the config command.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration after applying, in order: defaults,
the config file, KV_* environment variables and command-line flags.

Environment variables:
  KV_CONFIG     path to the config file
  KV_DATA_FILE  data file path
  KV_PROMPT     shell prompt
  KV_LOG_LEVEL  debug, info, warn or error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := provider.ResolveConfig()
			if err != nil {
				return err
			}
			out := provider.Out
			if out == nil {
				out = cmd.OutOrStdout()
			}

			if provider.JSONOutput {
				return json.NewEncoder(out).Encode(map[string]string{
					"data_file": cfg.DataFile,
					"prompt":    cfg.Prompt,
					"log_level": cfg.LogLevel,
				})
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	return cmd
}
