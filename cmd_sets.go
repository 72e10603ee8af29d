package main

import (
	"github.com/isunjn/snlc/config"
	"github.com/isunjn/snlc/grammar"
	"github.com/isunjn/snlc/predict"
	"github.com/isunjn/snlc/printer"

	"github.com/spf13/cobra"

	"fmt"
)

var dumpFormat string

func outputFormat() (string, error) {
	f := cfg.Output.Format
	if dumpFormat != "" {
		f = dumpFormat
	}
	if f != config.FormatText && f != config.FormatYAML {
		return "", fmt.Errorf("unknown format %q, want text or yaml", f)
	}
	return f, nil
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Print the FIRST, FOLLOW and predict sets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		s := predict.SNL()
		if f == config.FormatYAML {
			text, err := printer.YAML(printer.DumpSets(s))
			if err != nil {
				return err
			}
			Stdout(text)
			return nil
		}
		Stdout(out.SetsText(s))
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the LL(1) table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		s := predict.SNL()
		if f == config.FormatYAML {
			text, err := printer.YAML(printer.DumpTable(s))
			if err != nil {
				return err
			}
			Stdout(text)
			return nil
		}
		Stdout(out.TableText(s))
		return nil
	},
}

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the numbered rules",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		Stdout(grammar.SNL().String() + "\n")
	},
}

func init() {
	setsCmd.Flags().StringVar(&dumpFormat, "format", "", "text or yaml (default from output.format)")
	tableCmd.Flags().StringVar(&dumpFormat, "format", "", "text or yaml (default from output.format)")
	rootCmd.AddCommand(setsCmd, tableCmd, grammarCmd)
}
