package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all keys and values",
		Long: `List every entry as "key: value", sorted by key.

With --json the whole store is printed as a single JSON object.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(app.Store.All())
			}
			printEntries(app)
			return nil
		},
	}

	return cmd
}

// printEntries writes one "key: value" line per entry in key order.
func printEntries(app *App) {
	for _, key := range app.Store.Keys() {
		value, _ := app.Store.Get(key)
		fmt.Fprintf(app.Out, "%s: %s\n", key, value)
	}
}
