package testing_test

import (
	"github.com/isunjn/snlc/config"
	"github.com/isunjn/snlc/pipelines"
	harness "github.com/isunjn/snlc/testing"

	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, dir string, st harness.Stage, opt pipelines.Options) {
	t.Helper()
	results, err := harness.Run(dir, st, opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatalf("no files under %v", dir)
	}
	for _, res := range results {
		if !res.Ok {
			t.Errorf("%v", res.String())
		}
	}
}

func TestSuites(t *testing.T) {
	suites := []struct {
		dir   string
		stage string
	}{
		{"../testdata/lexer", "lexer"},
		{"../testdata/parser", "parser"},
		{"../testdata/typechecker", "typechecker"},
		{"../testdata/parser", "format"},
		{"../testdata/typechecker", "format"},
	}
	for _, parser := range []string{config.ParserLL1, config.ParserDescent} {
		for _, s := range suites {
			t.Run(parser+"/"+s.stage+"/"+filepath.Base(s.dir), func(t *testing.T) {
				run(t, s.dir, harness.Stages[s.stage], pipelines.Options{Parser: parser})
			})
		}
	}
}

func TestMismatchIsReported(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"wrong.E013.snl":   "program p; var integer x; begin x := 'c' end.",
		"missing.E013.snl": "program p; var integer x; begin x := 1 end.",
		"clean.snl":        "program p; begin y := 1 end.",
	}
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	results, err := harness.Run(dir, harness.S_Typechecker, pipelines.Default())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"clean.snl":        "expected no errors, instead found: E013",
		"missing.E013.snl": "expected error E013, instead found nothing",
		"wrong.E013.snl":   "expected error E013, instead found E031",
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for _, res := range results {
		if res.Ok {
			t.Errorf("%v should fail", res.File)
		}
		if msg := want[filepath.Base(res.File)]; res.Message != msg {
			t.Errorf("%v: expected %q, got %q", res.File, msg, res.Message)
		}
		if !strings.HasPrefix(res.String(), "fail\t") {
			t.Errorf("unexpected rendering %q", res.String())
		}
	}
}
