// Package pipelines runs the stages of the front end over a file. Each
// function runs every stage before it and stops at the first stage that
// reports an error.
package pipelines

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	"github.com/isunjn/snlc/core/util"
	"github.com/isunjn/snlc/config"
	"github.com/isunjn/snlc/grammar"
	"github.com/isunjn/snlc/lexer"
	"github.com/isunjn/snlc/ll1"
	"github.com/isunjn/snlc/logging"
	"github.com/isunjn/snlc/parser"
	"github.com/isunjn/snlc/typechecker"

	"github.com/google/uuid"

	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Options struct {
	Parser string // config.ParserLL1 or config.ParserDescent
	Logger *slog.Logger
}

// Default parses with the LL(1) driver and logs nothing.
func Default() Options {
	return Options{Parser: config.ParserLL1, Logger: logging.Discard()}
}

// run carries the state of one invocation. Its session id tags every
// log record.
type run struct {
	opt Options
	log *slog.Logger
	M   *ir.Module

	rules []grammar.RuleID
}

func newRun(name, file, source string, opt Options) *run {
	if opt.Logger == nil {
		opt.Logger = logging.Discard()
	}
	if opt.Parser == "" {
		opt.Parser = config.ParserLL1
	}
	return &run{
		opt: opt,
		log: opt.Logger.With("session", uuid.NewString(), "file", file),
		M: &ir.Module{
			Name:     name,
			FullPath: file,
			Source:   source,
		},
	}
}

func (this *run) stage(name string, start time.Time, errs int, args ...any) {
	args = append([]any{"stage", name, "elapsed", time.Since(start), "errors", errs}, args...)
	this.log.Debug("stage finished", args...)
}

func (this *run) lex() []*Error {
	start := time.Now()
	tokens, errs := lexer.NewLexer(this.M.FullPath, this.M.Source).ReadAll()
	this.M.Tokens = tokens
	this.stage("lexer", start, len(errs), "tokens", len(tokens))
	return errs
}

func (this *run) parse() (err *Error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = util.Fatal(r)
		}
		errs := 0
		if err != nil {
			errs = 1
		}
		this.stage("parser", start, errs, "parser", this.opt.Parser, "rules", len(this.rules))
	}()
	var root *ir.Node
	switch this.opt.Parser {
	case config.ParserLL1:
		root, this.rules, err = ll1.Derive(this.M)
	case config.ParserDescent:
		root, err = parser.Parse(this.M)
	default:
		panic(util.NewInternalSemanticError("pipelines: unknown parser " + this.opt.Parser))
	}
	if err != nil {
		return err
	}
	this.M.Root = root
	return nil
}

func (this *run) check() (errs []*Error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			errs = []*Error{util.Fatal(r)}
		}
		this.stage("typechecker", start, len(errs))
	}()
	return typechecker.Check(this.M)
}

// Lexemes returns every token of file, or every lexical error in it.
func Lexemes(file string, opt Options) (*ir.Module, []*Error) {
	r, err := load(file, opt)
	if err != nil {
		return nil, []*Error{err}
	}
	if errs := r.lex(); len(errs) > 0 {
		return r.M, errs
	}
	return r.M, nil
}

// Ast parses file with the parser named in opt.
func Ast(file string, opt Options) (*ir.Module, []*Error) {
	r, err := load(file, opt)
	if err != nil {
		return nil, []*Error{err}
	}
	return r.ast()
}

// Derivation parses file with the LL(1) driver and also returns the
// rules it applied, in order.
func Derivation(file string, opt Options) (*ir.Module, []grammar.RuleID, []*Error) {
	opt.Parser = config.ParserLL1
	r, err := load(file, opt)
	if err != nil {
		return nil, nil, []*Error{err}
	}
	M, errs := r.ast()
	return M, r.rules, errs
}

// Check runs every stage over file.
func Check(file string, opt Options) (*ir.Module, []*Error) {
	r, err := load(file, opt)
	if err != nil {
		return nil, []*Error{err}
	}
	return r.all()
}

// CheckSource is Check over source text already in memory.
func CheckSource(file, source string, opt Options) (*ir.Module, []*Error) {
	return newRun(moduleName(file), file, source, opt).all()
}

func (this *run) ast() (*ir.Module, []*Error) {
	if errs := this.lex(); len(errs) > 0 {
		return this.M, errs
	}
	if err := this.parse(); err != nil {
		return this.M, []*Error{err}
	}
	return this.M, nil
}

func (this *run) all() (*ir.Module, []*Error) {
	M, errs := this.ast()
	if len(errs) > 0 {
		return M, errs
	}
	if errs := this.check(); len(errs) > 0 {
		return M, errs
	}
	this.log.Debug("program is well typed", "types", this.M.Types.Len())
	return M, nil
}

func load(file string, opt Options) (*run, *Error) {
	text, e := os.ReadFile(file)
	if e != nil {
		return nil, ProcessFileError(fmt.Errorf("reading source: %w", e))
	}
	return newRun(moduleName(file), file, string(text), opt), nil
}

func moduleName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
