// Package testing runs SNL files through a stage of the front end and
// compares the first diagnostic with the one the file name expects:
//
//	name.E013.snl
//	     ^ expected error code
//	name.snl
//	    ^ no error code, the stage must succeed
package testing

import (
	. "github.com/isunjn/snlc/core"
	et "github.com/isunjn/snlc/core/errorkind"
	ir "github.com/isunjn/snlc/core/module"
	nk "github.com/isunjn/snlc/core/module/nodekind"
	"github.com/isunjn/snlc/core/util"
	"github.com/isunjn/snlc/format"
	"github.com/isunjn/snlc/pipelines"
	"github.com/isunjn/snlc/printer"

	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

type TestResult struct {
	File    string
	Message string
	Ok      bool
}

func (res *TestResult) String() string {
	return res.Render(printer.New(false))
}

func (res *TestResult) Render(p *printer.Printer) string {
	output := p.Status(res.Ok) + "\t" + res.File
	if res.Message != "" {
		output += "\t" + res.Message
	}
	return output
}

// Stage runs part of the front end and returns its first diagnostic.
type Stage func(filename string, opt pipelines.Options) *Error

func S_Lexer(filename string, opt pipelines.Options) *Error {
	_, errs := pipelines.Lexemes(filename, opt)
	return FirstOf(errs)
}

func S_Parser(filename string, opt pipelines.Options) *Error {
	_, errs := pipelines.Ast(filename, opt)
	return FirstOf(errs)
}

func S_Typechecker(filename string, opt pipelines.Options) *Error {
	_, errs := pipelines.Check(filename, opt)
	return FirstOf(errs)
}

// S_Format parses the file, formats it and parses the result again.
// The second tree must match the first.
func S_Format(filename string, opt pipelines.Options) *Error {
	M, errs := pipelines.Ast(filename, opt)
	if len(errs) > 0 {
		return errs[0]
	}
	text := format.Format(M.Root)
	again, errs := pipelines.CheckSource(filename, text, opt)
	if len(errs) > 0 && !errs[0].Code.IsSemantic() {
		return util.NewInternalSemanticError("formatted source does not parse: " + errs[0].String())
	}
	if shape(M.Root) != shape(again.Root) {
		return util.NewInternalSemanticError("formatted source parses to a different tree")
	}
	return nil
}

// shape is the tree without positions.
func shape(n *ir.Node) string {
	output := n.Kind.String() + "(" + n.Text
	for _, leaf := range n.Leaves {
		output += " "
		for l := leaf; l != nil; l = l.Sibling {
			output += shape(l) + ";"
		}
	}
	if n.ByRef {
		output += " var"
	}
	if n.Kind == nk.OpExp {
		output += " " + n.Op.String()
	}
	return output + ")"
}

var Stages = map[string]Stage{
	"lexer":       S_Lexer,
	"parser":      S_Parser,
	"typechecker": S_Typechecker,
	"format":      S_Format,
}

func Test(file string, st Stage, opt pipelines.Options) (res TestResult) {
	defer func() {
		if r := recover(); r != nil {
			res = TestResult{
				File:    file,
				Ok:      false,
				Message: "fatal: " + util.Fatal(r).Message,
			}
		}
	}()
	err := st(file, opt)
	if err != nil && err.Code == et.InternalCompilerError {
		return TestResult{
			File:    file,
			Ok:      false,
			Message: err.Message,
		}
	}
	return compareError(file, err, extractError(file))
}

// Run tests every .snl file under dir, in lexical order.
func Run(dir string, st Stage, opt pipelines.Options) ([]TestResult, error) {
	files := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".snl" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	output := make([]TestResult, len(files))
	for i, f := range files {
		output[i] = Test(f, st, opt)
	}
	return output, nil
}

func extractError(file string) string {
	name := filepath.Base(file)
	sections := strings.Split(name, ".")
	if len(sections) < 3 {
		return ""
	}
	return sections[len(sections)-2]
}

func compareError(file string, err *Error, expectedErr string) TestResult {
	if err != nil && expectedErr == "" {
		msg := "expected no errors, instead found: " +
			err.ErrCode()
		return TestResult{
			File:    file,
			Message: msg,
			Ok:      false,
		}
	} else if err == nil && expectedErr != "" {
		msg := "expected error " + expectedErr +
			", instead found nothing"
		return TestResult{
			File:    file,
			Message: msg,
			Ok:      false,
		}
	} else if err != nil && expectedErr != "" {
		actual := err.ErrCode()
		if actual != expectedErr {
			msg := "expected error " + expectedErr +
				", instead found " + actual
			return TestResult{
				File:    file,
				Message: msg,
				Ok:      false,
			}
		}
	}
	return TestResult{
		File: file,
		Ok:   true,
	}
}
