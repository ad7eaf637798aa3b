package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newRemoveCmd creates the remove command.
func newRemoveCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <key>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a key",
		Long: `Remove a key and its value.

Removing a key that does not exist is not an error.

Examples:
  kv remove name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			if err := app.Store.Remove(key); err != nil {
				return fmt.Errorf("removing %q: %w", key, err)
			}
			app.logger().Debug("key removed", zapKey(key))

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]string{
					"key":    key,
					"status": "removed",
				})
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Key removed"))
			return nil
		},
	}

	return cmd
}
