package main

import (
	harness "github.com/isunjn/snlc/testing"

	"github.com/spf13/cobra"

	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	testStage string
	verbose   bool
)

var testCmd = &cobra.Command{
	Use:   "test <dir>",
	Short: "Run the file-based test suites of a directory",
	Long: `Run every .snl file under a directory through a stage.

A file named name.E013.snl must fail with error E013 at that stage,
a file named name.snl must pass it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, ok := harness.Stages[testStage]
		if !ok {
			return fmt.Errorf("unknown stage %q, want one of %s", testStage, stageNames())
		}
		results, err := harness.Run(args[0], st, options())
		if err != nil {
			return fmt.Errorf("failed to read test directory: %w", err)
		}
		failed := 0
		for _, res := range results {
			if !res.Ok {
				failed++
			}
			if verbose || !res.Ok {
				Stdout(res.Render(out) + "\n")
			}
		}
		Stdout("\n")
		Stdout("failed: " + strconv.Itoa(failed) + "\n")
		Stdout("total: " + strconv.Itoa(len(results)) + "\n")
		if failed > 0 {
			return errDiagnostics
		}
		return nil
	},
}

func stageNames() string {
	names := []string{}
	for name := range harness.Stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func init() {
	testCmd.Flags().StringVar(&testStage, "stage", "typechecker", "stage to run: "+stageNames())
	testCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print passing files too")
	rootCmd.AddCommand(testCmd)
}
