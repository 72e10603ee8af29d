// Package printer renders compiler output for people: diagnostics with
// a source excerpt, token listings, and dumps of the grammar sets.
package printer

import (
	. "github.com/isunjn/snlc/core"
	ir "github.com/isunjn/snlc/core/module"
	lex "github.com/isunjn/snlc/core/module/lexkind"
	sv "github.com/isunjn/snlc/core/severity"

	"github.com/charmbracelet/lipgloss"

	"fmt"
	"strings"
)

type Printer struct {
	Color bool
}

func New(color bool) *Printer {
	return &Printer{Color: color}
}

func (this *Printer) paint(s lipgloss.Style, text string) string {
	if !this.Color {
		return text
	}
	return s.Render(text)
}

// Diagnostic renders err followed by the offending source line and a
// caret under its column. source may be empty, then only the header
// line is printed.
func (this *Printer) Diagnostic(err *Error, source string) string {
	var style lipgloss.Style
	switch err.Severity {
	case sv.Warning:
		style = warningStyle
	default:
		style = errorStyle
	}
	header := this.paint(locationStyle, err.Location.String()) + " " +
		this.paint(style, err.Severity.String()+":") + " " +
		err.Message + " " +
		this.paint(codeStyle, "["+err.ErrCode()+"]")

	pos := err.Location.Pos()
	line, ok := sourceLine(source, pos.Line)
	if !ok {
		return header + "\n"
	}
	number := fmt.Sprintf("%4d", pos.Line)
	output := header + "\n" +
		this.paint(gutterStyle, number+" | ") + line + "\n" +
		this.paint(gutterStyle, strings.Repeat(" ", len(number))+" | ") +
		padding(line, pos.Column) + this.paint(caretStyle, "^") + "\n"
	return output
}

// Diagnostics renders every error, in order.
func (this *Printer) Diagnostics(errs []*Error, source string) string {
	output := strings.Builder{}
	for _, e := range errs {
		output.WriteString(this.Diagnostic(e, source))
	}
	return output.String()
}

func sourceLine(source string, line int) (string, bool) {
	if source == "" || line <= 0 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

// padding keeps the tabs of the excerpt so the caret lines up with
// the column under any tab width.
func padding(line string, column int) string {
	output := []byte{}
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			output = append(output, '\t')
		} else {
			output = append(output, ' ')
		}
	}
	return string(output)
}

// Tokens lists one token per line: position, kind and text.
func (this *Printer) Tokens(tokens []ir.Token) string {
	output := strings.Builder{}
	for _, tk := range tokens {
		output.WriteString(this.paint(gutterStyle, fmt.Sprintf("%-8v", tk.Pos)))
		output.WriteString(fmt.Sprintf("%-12v", lex.Names[tk.Kind]))
		if tk.Text != "" {
			output.WriteString(" " + tk.Text)
		}
		output.WriteString("\n")
	}
	return output.String()
}

// Status is a one-word verdict, used by the test harness.
func (this *Printer) Status(ok bool) string {
	if ok {
		return this.paint(successStyle, "ok")
	}
	return this.paint(errorStyle, "fail")
}

func (this *Printer) Header(text string) string {
	return this.paint(headerStyle, text)
}
