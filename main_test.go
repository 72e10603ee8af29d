package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("SNLC_CONFIG", "")
	// flag variables outlive a single Execute
	parserName, logLevel, dumpFormat = "", "", ""
	showRules, showTypes, writeBack, verbose = false, false, false, false
	testStage = "typechecker"
	rootCmd.SetArgs(append(args, "--no-color"))
	return rootCmd.Execute()
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"tokens", []string{"tokens", "testdata/example.snl"}},
		{"ast", []string{"ast", "testdata/example.snl"}},
		{"ast rules", []string{"ast", "--rules", "testdata/example.snl"}},
		{"check", []string{"check", "testdata/example.snl"}},
		{"check descent", []string{"check", "--parser", "descent", "testdata/nohead.snl"}},
		{"sets", []string{"sets"}},
		{"table yaml", []string{"table", "--format", "yaml"}},
		{"grammar", []string{"grammar"}},
		{"fmt", []string{"fmt", "testdata/example.snl"}},
		{"suite", []string{"test", "--stage", "parser", "testdata/parser"}},
		{"version", []string{"version"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err != nil {
				t.Errorf("%v: %v", tt.args, err)
			}
		})
	}
}

func TestDiagnosticsFail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.snl")
	if err := os.WriteFile(path, []byte("program p; begin x := 1 end."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "check", path); !errors.Is(err, errDiagnostics) {
		t.Errorf("expected diagnostics, got %v", err)
	}
	if err := execute(t, "check", "--parser", "lalr", path); err == nil || errors.Is(err, errDiagnostics) {
		t.Errorf("expected a configuration error, got %v", err)
	}
}

func TestFmtWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.snl")
	if err := os.WriteFile(path, []byte("program p;var integer x;begin x:=1 end."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "fmt", "-w", path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "program p;\nvar\n\tinteger x;\nbegin\n\tx := 1\nend.\n"
	if string(b) != want {
		t.Errorf("expected %q, got %q", want, string(b))
	}
}
