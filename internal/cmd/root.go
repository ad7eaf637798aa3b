package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"kvdb/internal/config"
	"kvdb/internal/kvstore/filesystem"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	ConfigPath string
	DataFile   string
	JSONOutput bool
	Verbose    bool
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a mock/test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		DataFile:   app.Config.DataFile,
		JSONOutput: app.JSON,
		In:         app.In,
		Out:        app.Out,
		Err:        app.Err,
	}
}

// ResolveConfig returns the effective configuration: config file and
// environment, then the --file flag on top.
func (p *AppProvider) ResolveConfig() (config.Config, error) {
	if p.app != nil {
		return p.app.Config, nil
	}
	cfg, _, err := config.Resolve(p.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if p.DataFile != "" {
		cfg.DataFile = p.DataFile
	}
	return cfg, nil
}

func (p *AppProvider) init() (*App, error) {
	cfg, err := p.ResolveConfig()
	if err != nil {
		return nil, err
	}

	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	logger, err := newLogger(cfg.LogLevel, p.Verbose)
	if err != nil {
		return nil, err
	}

	store, err := filesystem.Open(cfg.DataFile, filesystem.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &App{
		Store:  store,
		Config: cfg,
		Logger: logger,
		In:     in,
		Out:    out,
		Err:    errOut,
		JSON:   p.JSONOutput,
	}, nil
}

// newLogger builds a production zap logger writing to stderr at level, or at
// debug level when verbose is set.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}

	return execute(provider, os.Args[1:])
}

// execute runs the command tree with args and flushes the logger whether or
// not the command succeeded.
func execute(provider *AppProvider, args []string) error {
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(provider)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	provider.syncLogger()
	return err
}

// syncLogger flushes the App's logger if the App was initialized.
func (p *AppProvider) syncLogger() {
	if p.app != nil && p.app.Logger != nil {
		_ = p.app.Logger.Sync()
	}
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kv",
		Short: "A tiny persistent key-value store",
		Long: `kv keeps string keys mapped to integers, booleans or text in a single
key=value file. The file is loaded at startup and rewritten after every change.

Run without arguments to start the interactive shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(provider)
		},
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVar(&provider.ConfigPath, "config", "", "Path to config file (default: $KV_CONFIG or ./kv.yaml)")
	rootCmd.PersistentFlags().StringVarP(&provider.DataFile, "file", "f", "", "Path to the data file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Enable debug logging")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newRemoveCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newClearCmd(provider))
	rootCmd.AddCommand(newShellCmd(provider))
	rootCmd.AddCommand(newDoctorCmd(provider))
	rootCmd.AddCommand(newInitCmd(provider))
	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
