package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// getResult is the JSON output of get.
type getResult struct {
	Key   string `json:"key"`
	Found bool   `json:"found"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value,omitempty"`
}

// newGetCmd creates the get command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Long: `Print the value stored under a key.

Exits with an error if the key is not present. With --json, a missing key
is reported as {"found": false} instead.

Examples:
  kv get name
  kv get count --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, ok := app.Store.Get(key)

			if app.JSON {
				result := getResult{Key: key, Found: ok}
				if ok {
					result.Type = value.Kind().String()
					result.Value = value
				}
				return json.NewEncoder(app.Out).Encode(result)
			}

			if !ok {
				return fmt.Errorf("key %q not found", key)
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	}

	return cmd
}
