package main

import (
	"github.com/isunjn/snlc/pipelines"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "List the tokens of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		M, errs := pipelines.Lexemes(args[0], options())
		if len(errs) > 0 {
			return report(M, errs)
		}
		Stdout(out.Tokens(M.Tokens))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
