package main

import (
	"github.com/isunjn/snlc/format"
	"github.com/isunjn/snlc/pipelines"

	"github.com/spf13/cobra"

	"fmt"
	"os"
)

var writeBack bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print a file in canonical layout",
	Long: `Print a file in canonical layout.

Comments are not kept. With -w the file is overwritten instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		M, errs := pipelines.Ast(args[0], options())
		if len(errs) > 0 {
			return report(M, errs)
		}
		text := format.Format(M.Root)
		if !writeBack {
			Stdout(text)
			return nil
		}
		info, err := os.Stat(args[0])
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", args[0], err)
		}
		if err := os.WriteFile(args[0], []byte(text), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&writeBack, "write", "w", false, "write the result back to the file")
	rootCmd.AddCommand(fmtCmd)
}
