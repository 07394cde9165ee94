// Package cli implements the wordbreak command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wordbreak/internal/config"
	"github.com/katalvlaran/wordbreak/oracle"
)

// RootOptions holds global flags and the state they resolve to.
type RootOptions struct {
	ConfigPath string
	Config     config.Config

	logger *zap.Logger
	oracle oracle.Oracle
}

// NewRootCommand creates the root command for the wordbreak CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.Default()}

	cmd := &cobra.Command{
		Use:   "wordbreak",
		Short: "wordbreak - put the spaces back",
		Long: "Split text that lost its spaces into dictionary words, " +
			"longest word first, backtracking on dead ends.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.Config.Dictionary, "dict", "d", opts.Config.Dictionary,
		`dictionary: "common", "demo", or a word list path (.txt, .yaml)`)
	cmd.PersistentFlags().StringVar(&opts.Config.Format, "format", opts.Config.Format, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Config.Verbose, "verbose", "v", opts.Config.Verbose, "debug logging to stderr")

	// Subcommands
	cmd.AddCommand(NewSegmentCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// resolve merges the config file under explicitly set flags, then builds the
// logger and the dictionary.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		fileCfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "load config", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("dict") {
			o.Config.Dictionary = fileCfg.Dictionary
		}
		if !flags.Changed("format") {
			o.Config.Format = fileCfg.Format
		}
		if !flags.Changed("verbose") {
			o.Config.Verbose = fileCfg.Verbose
		}
	}
	if err := o.Config.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	logger, err := newLogger(o.Config.Verbose)
	if err != nil {
		return WrapExitError(ExitCommandError, "init logger", err)
	}
	o.logger = logger

	o.oracle, err = loadOracle(o.Config.Dictionary)
	if err != nil {
		return WrapExitError(ExitCommandError, "load dictionary", err)
	}
	o.logger.Debug("dictionary ready", zap.String("dictionary", o.Config.Dictionary))

	return nil
}

// newLogger builds a console logger on stderr; debug level when verbose,
// warnings only otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}

// loadOracle maps a dictionary setting to an oracle.
func loadOracle(dict string) (oracle.Oracle, error) {
	switch dict {
	case "", config.DictionaryCommon:
		return oracle.Common(), nil
	case config.DictionaryDemo:
		return oracle.Demo(), nil
	}

	words, err := oracle.Load(dict)
	if err != nil {
		return nil, err
	}

	return oracle.NewTrie(words...), nil
}
