package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"kvdb/internal/kvstore"

	"github.com/spf13/cobra"
)

// DoctorResult represents the output of the doctor command.
type DoctorResult struct {
	File           string `json:"file"`
	Exists         bool   `json:"exists"`
	MalformedLines []int  `json:"malformed_lines"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the data file for malformed lines",
		Long: `Check the data file for lines the loader would reject.

Every line must contain exactly one '=' separating key and value. Unlike
the loader, which stops at the first bad line, doctor reports all of them.
Exits with an error if any problems are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := provider.ResolveConfig()
			if err != nil {
				return err
			}
			out := provider.Out
			if out == nil {
				out = os.Stdout
			}

			result := DoctorResult{File: cfg.DataFile, MalformedLines: []int{}}
			f, err := os.Open(cfg.DataFile)
			switch {
			case errors.Is(err, fs.ErrNotExist):
			case err != nil:
				return fmt.Errorf("opening data file: %w", err)
			default:
				defer f.Close()
				result.Exists = true
				bad, err := kvstore.Lint(f)
				if err != nil {
					return fmt.Errorf("doctor failed: %w", err)
				}
				if bad != nil {
					result.MalformedLines = bad
				}
			}

			if provider.JSONOutput {
				if err := json.NewEncoder(out).Encode(result); err != nil {
					return err
				}
			} else {
				printDoctorResult(out, result)
			}

			if n := len(result.MalformedLines); n > 0 {
				return fmt.Errorf("%s: %d malformed lines: %w", cfg.DataFile, n, kvstore.ErrMalformedFile)
			}
			return nil
		},
	}

	return cmd
}

func printDoctorResult(out io.Writer, result DoctorResult) {
	if !result.Exists {
		fmt.Fprintf(out, "%s does not exist yet; it will be created on the first change.\n", result.File)
		return
	}
	if len(result.MalformedLines) == 0 {
		fmt.Fprintln(out, "No problems found.")
		return
	}
	fmt.Fprintln(out, warnColor(out, fmt.Sprintf("Found %d problems in %s:", len(result.MalformedLines), result.File)))
	for _, line := range result.MalformedLines {
		fmt.Fprintf(out, "  - line %d: expected exactly one '=' between key and value\n", line)
	}
}
