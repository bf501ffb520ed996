package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/lift-atlas/pkg/presentation/format"
	"github.com/de-tools/lift-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/lift-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/lift-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env      *commands.Env
	cfgPath  string
	logLevel string
	output   io.Writer
	logs     io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Input  io.Reader
	// Logs receives structured log lines; defaults to stderr.
	Logs io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}

	cli := &CLI{
		env:    &commands.Env{},
		output: opts.Output,
		logs:   opts.Logs,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.Logs)
	cli.rootCmd.SetIn(opts.Input)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	if args != nil {
		cli.rootCmd.SetArgs(args)
	}
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "lift-atlas",
		Short:             "Experiment revenue impact projection",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a settings file (yaml)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level, overrides the settings file")

	cmd.AddCommand(commands.NewProjectCmd(cli.env))
	cmd.AddCommand(commands.NewSeriesCmd(cli.env))
	cmd.AddCommand(commands.NewExportCmd(cli.env))
	cmd.AddCommand(commands.NewWatchCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.LoadSettings(cli.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	levelName := settings.LogLevel
	if cli.logLevel != "" {
		levelName = cli.logLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	logger := zerolog.New(cli.logs).Level(level).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	tag, err := settings.Language()
	if err != nil {
		return err
	}
	unit, err := settings.CurrencyUnit()
	if err != nil {
		return err
	}
	formatter := format.NewFormatter(tag, unit)

	*cli.env = commands.Env{
		Settings:  settings,
		Formatter: formatter,
		Reporter:  export.NewReporter(cli.output, formatter),
		JSON:      export.NewJSONReporter(cli.output),
	}

	logger.Debug().
		Str("currency", settings.Currency).
		Str("locale", settings.Locale).
		Msg("settings loaded")
	return nil
}
