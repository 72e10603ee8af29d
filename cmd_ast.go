package main

import (
	"github.com/isunjn/snlc/grammar"
	"github.com/isunjn/snlc/pipelines"

	"github.com/spf13/cobra"
)

var showRules bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the syntax tree of a file",
	Long: `Print the syntax tree of a file.

With --rules the rules applied by the LL(1) driver are printed instead,
in the order it applied them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if showRules {
			M, rules, errs := pipelines.Derivation(args[0], options())
			if len(errs) > 0 {
				return report(M, errs)
			}
			Stdout(out.Rules(grammar.SNL(), rules))
			return nil
		}
		M, errs := pipelines.Ast(args[0], options())
		if len(errs) > 0 {
			return report(M, errs)
		}
		Stdout(M.Root.String() + "\n")
		return nil
	},
}

func init() {
	astCmd.Flags().BoolVar(&showRules, "rules", false, "print the derivation instead of the tree")
	rootCmd.AddCommand(astCmd)
}
