package cmd

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"kvdb/internal/kvstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shellCommand is one verb understood by the interactive shell.
type shellCommand struct {
	usage string // shown when the argument count is wrong
	nargs int
	run   func(app *App, args []string) error
}

var shellCommands = map[string]shellCommand{
	"get": {
		usage: "get <key>",
		nargs: 1,
		run: func(app *App, args []string) error {
			value, ok := app.Store.Get(args[0])
			if !ok {
				fmt.Fprintln(app.Out, "Key not found")
				return nil
			}
			fmt.Fprintln(app.Out, value)
			return nil
		},
	},
	"set": {
		usage: "set <key> <value>",
		nargs: 2,
		run: func(app *App, args []string) error {
			if err := app.Store.Insert(args[0], kvstore.ParseValue(args[1])); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Value inserted"))
			return nil
		},
	},
	"remove": {
		usage: "remove <key>",
		nargs: 1,
		run: func(app *App, args []string) error {
			if err := app.Store.Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Key removed"))
			return nil
		},
	},
	"list": {
		usage: "list",
		run: func(app *App, args []string) error {
			printEntries(app)
			return nil
		},
	},
	"clear": {
		usage: "clear",
		run: func(app *App, args []string) error {
			if err := app.Store.Clear(); err != nil {
				return fmt.Errorf("failed to clear store: %w", err)
			}
			fmt.Fprintln(app.Out, app.SuccessColor("Store cleared"))
			return nil
		},
	},
}

// shell reads commands line by line from app.In until exit or EOF.
type shell struct {
	app         *App
	prompt      string
	interactive bool
}

func newShell(app *App) *shell {
	prompt := app.Config.Prompt
	if prompt == "" {
		prompt = "> "
	}
	return &shell{
		app:         app,
		prompt:      prompt,
		interactive: isTerminal(app.In),
	}
}

// Run loops until "exit", "quit" or end of input. Store errors are reported
// and the loop continues; only a failure to read input ends it with an error.
func (s *shell) Run() error {
	s.app.logger().Debug("shell started", zap.Bool("interactive", s.interactive))
	scanner := bufio.NewScanner(s.app.In)
	scanner.Buffer(make([]byte, 0, 64*1024), kvstore.MaxLineSize)
	for {
		if s.interactive {
			fmt.Fprint(s.app.Out, s.prompt)
		}
		if !scanner.Scan() {
			if s.interactive {
				fmt.Fprintln(s.app.Out)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}
		if s.exec(scanner.Text()) {
			return nil
		}
	}
}

// exec runs a single input line and reports whether the shell should exit.
func (s *shell) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "exit", "quit":
		return true
	case "help":
		printShellHelp(s.app)
		return false
	}

	c, ok := shellCommands[name]
	if !ok {
		fmt.Fprintln(s.app.Out, "Unknown command")
		return false
	}
	if len(args) != c.nargs {
		fmt.Fprintln(s.app.Out, "Usage: "+c.usage)
		return false
	}
	if err := c.run(s.app, args); err != nil {
		fmt.Fprintf(s.app.Err, "Error: %v\n", err)
		s.app.logger().Warn("shell command failed", zap.String("command", name), zap.Error(err))
	}
	return false
}

func printShellHelp(app *App) {
	names := make([]string, 0, len(shellCommands))
	for name := range shellCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(app.Out, "Commands:")
	for _, name := range names {
		fmt.Fprintf(app.Out, "  %s\n", shellCommands[name].usage)
	}
	fmt.Fprintln(app.Out, "  help")
	fmt.Fprintln(app.Out, "  exit")
}

func runShell(provider *AppProvider) error {
	app, err := provider.Get()
	if err != nil {
		return err
	}
	return newShell(app).Run()
}

// newShellCmd creates the shell command.
func newShellCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Long: `Start the interactive shell. This is also what running kv with no
arguments does.

Shell commands:
  get <key>          print a value, or "Key not found"
  set <key> <value>  store a value (type inferred)
  remove <key>       remove a key
  list               print every entry
  clear              remove every entry
  help               list commands
  exit               leave the shell (EOF works too)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(provider)
		},
	}

	return cmd
}
