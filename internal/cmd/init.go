package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"kvdb/internal/config"

	"github.com/spf13/cobra"
)

// newInitCmd creates the init command.
// Note: init doesn't use the provider's App since no store is needed yet.
func newInitCmd(provider *AppProvider) *cobra.Command {
	var (
		force  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default config file to the path given by --config, or to
kv.yaml (kv.toml with --format toml) in the current directory.

The data file named in the config (or by --file) is not created until
the first change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := provider.Out
			if out == nil {
				out = os.Stdout
			}
			path := provider.ConfigPath
			if path == "" {
				switch format {
				case "yaml":
					path = "kv.yaml"
				case "toml":
					path = "kv.toml"
				default:
					return fmt.Errorf("invalid format %q (allowed: yaml, toml)", format)
				}
			}
			return runInit(out, path, provider.DataFile, force, provider.JSONOutput)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&format, "format", "yaml", "Config format when --config is not given (yaml, toml)")

	return cmd
}

func runInit(out io.Writer, path, dataFile string, force, jsonOut bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if err := config.Write(path, cfg); err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(out).Encode(map[string]string{
			"config":    path,
			"data_file": cfg.DataFile,
		})
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
