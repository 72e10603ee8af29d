package main

import (
	T "github.com/isunjn/snlc/core/module/types"
	"github.com/isunjn/snlc/pipelines"

	"github.com/spf13/cobra"

	"fmt"
)

var showTypes bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run every stage and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		M, errs := pipelines.Check(args[0], options())
		if len(errs) > 0 {
			return report(M, errs)
		}
		if showTypes {
			for i := 1; i < M.Types.Len(); i++ {
				Stdout(fmt.Sprintf("%3d %v\n", i, M.Types.String(T.TypeID(i))))
			}
		}
		Stdout(out.Status(true) + "\t" + args[0] + "\n")
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&showTypes, "types", false, "list the types of the program")
	rootCmd.AddCommand(checkCmd)
}
