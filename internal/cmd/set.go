package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"kvdb/internal/kvstore"

	"github.com/spf13/cobra"
)

// setResult is the JSON output of set.
type setResult struct {
	Key   string        `json:"key"`
	Type  string        `json:"type"`
	Value kvstore.Value `json:"value"`
}

// parseTypedValue converts raw into a Value of the requested type.
// "auto" applies the same inference the data file loader uses.
func parseTypedValue(raw, typ string) (kvstore.Value, error) {
	switch typ {
	case "", "auto":
		return kvstore.ParseValue(raw), nil
	case "text":
		return kvstore.Text(raw), nil
	case "int":
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return kvstore.Value{}, fmt.Errorf("invalid integer %q: must be a non-negative whole number", raw)
		}
		return kvstore.Int(n), nil
	case "bool":
		switch raw {
		case "true":
			return kvstore.Bool(true), nil
		case "false":
			return kvstore.Bool(false), nil
		}
		return kvstore.Value{}, fmt.Errorf("invalid boolean %q: must be true or false", raw)
	default:
		return kvstore.Value{}, fmt.Errorf("invalid type %q (allowed: auto, int, bool, text)", typ)
	}
}

// newSetCmd creates the set command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value under a key",
		Long: `Store a value under a key, replacing any existing value.

By default the value type is inferred: "true"/"false" become booleans,
non-negative whole numbers become integers, anything else is text.
Use --type to require a type; the value is rejected if it does not parse
as that type.

Keys and text values cannot contain '=' or line breaks. Because the data
file stores no type information, a text value that reads as a number or
as true/false is rejected as well.

Examples:
  kv set name alice
  kv set count 42 --type int
  kv set enabled true --type bool`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, err := parseTypedValue(args[1], typ)
			if err != nil {
				return err
			}

			if err := app.Store.Insert(key, value); err != nil {
				return fmt.Errorf("setting %q: %w", key, err)
			}
			app.logger().Debug("value inserted", zapKey(key), zapKind(value))

			if app.JSON {
				return json.NewEncoder(app.Out).Encode(setResult{
					Key:   key,
					Type:  value.Kind().String(),
					Value: value,
				})
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Value inserted"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "auto", "Value type (auto, int, bool, text)")

	return cmd
}
