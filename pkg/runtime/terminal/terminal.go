package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/dipole-link/pkg/runtime/terminal/commands"
	"github.com/de-tools/dipole-link/pkg/runtime/terminal/export"
	"github.com/de-tools/dipole-link/pkg/services/config"
	"github.com/de-tools/dipole-link/pkg/services/link"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporters     commands.ReporterRegistry
	logOutput     io.Writer
	constantsPath string
	logLevel      string
	rootCmd       *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		reporters: commands.NewReporterRegistry(map[string]commands.ReporterFactory{
			"text": func(w io.Writer) commands.Reporter {
				return NewReporter(w)
			},
			"table": func(w io.Writer) commands.Reporter {
				return export.NewReporter(w)
			},
		}),
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetIn(opts.Input)
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.LogOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "dipole",
		Short:             "Dipole antenna link budget calculator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setupLogger,
	}

	cmd.PersistentFlags().StringVar(&cli.constantsPath, "constants", "",
		"Path to a YAML/JSON/TOML file overriding the physical constants")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "warn",
		"Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(commands.NewCalculateCmd(cli.newCalculator, cli.reporters))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}

func (cli *CLI) setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cli.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cli.logLevel, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logOutput, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func (cli *CLI) newCalculator() (link.Calculator, error) {
	constants, err := config.LoadConstants(cli.constantsPath)
	if err != nil {
		return nil, err
	}
	return link.NewCalculator(constants)
}
