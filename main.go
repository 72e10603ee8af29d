package main

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	"github.com/isunjn/snlc/config"
	"github.com/isunjn/snlc/logging"
	"github.com/isunjn/snlc/pipelines"
	"github.com/isunjn/snlc/printer"

	"github.com/spf13/cobra"

	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	configPath string
	parserName string
	noColor    bool
	logLevel   string
)

// set by setup before any subcommand runs
var (
	cfg    *config.Config
	logger *slog.Logger
	out    *printer.Printer
)

// errDiagnostics is returned once the diagnostics themselves were
// printed, so main only has to set the exit status.
var errDiagnostics = errors.New("compilation failed")

var rootCmd = &cobra.Command{
	Use:   "snlc",
	Short: "snlc, a front end for the SNL teaching language",
	Long: `snlc lexes, parses and checks SNL programs.

Commands:
  tokens   List the tokens of a file
  ast      Print the syntax tree of a file
  check    Run every stage and report diagnostics
  sets     Print the FIRST, FOLLOW and predict sets
  table    Print the LL(1) table
  grammar  Print the numbered rules
  fmt      Print a file in canonical layout
  test     Run the file-based test suites of a directory
  watch    Re-check a file whenever it changes
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $SNLC_CONFIG, ./snlc.toml or ~/.config/snlc/config.toml)")
	rootCmd.PersistentFlags().StringVar(&parserName, "parser", "", "parser to use: ll1 or descent")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "snlc:", err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and lets the flags override it.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadDefault(configPath)
	if err != nil {
		return err
	}
	if parserName != "" {
		c.Compiler.Parser = parserName
	}
	if noColor {
		color := false
		c.Output.Color = &color
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	logger = logging.New(c.Log, os.Stderr)
	out = printer.New(c.UseColor())
	return nil
}

func options() pipelines.Options {
	return pipelines.Options{Parser: cfg.Compiler.Parser, Logger: logger}
}

// report prints errs with an excerpt of the source of M, if any.
func report(M *ir.Module, errs []*Error) error {
	if len(errs) == 0 {
		return nil
	}
	source := ""
	if M != nil {
		source = M.Source
	}
	Stderr(out.Diagnostics(errs, source))
	return errDiagnostics
}

func Stdout(s string) {
	os.Stdout.Write([]byte(s))
}

func Stderr(s string) {
	os.Stderr.Write([]byte(s))
}
