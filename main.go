// kv is the CLI for a tiny persistent key-value store.
package main

import (
	"fmt"
	"os"

	"kvdb/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
