package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newClearCmd creates the clear command.
func newClearCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry",
		Long: `Remove every entry and truncate the data file to zero length.

Examples:
  kv clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			n := app.Store.Len()
			if err := app.Store.Clear(); err != nil {
				return fmt.Errorf("clearing store: %w", err)
			}
			app.logger().Debug("store cleared", zap.Int("removed", n))

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(map[string]int{"removed": n})
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Store cleared"))
			return nil
		},
	}

	return cmd
}
