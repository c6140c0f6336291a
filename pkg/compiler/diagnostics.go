package compiler

import (
	"fmt"
	"io"
	"os"
)

// The fixed diagnostic catalogue. Every message has exactly one %s slot
// for the offending name or operator spelling.
const (
	msgRedefinition       = "redefinition of '%s'"
	msgRedeclaration      = "redeclaration of '%s'"
	msgConflictingTypes   = "conflicting types for '%s'"
	msgUndeclared         = "'%s' undeclared"
	msgHasTypeVoid        = "'%s' has type void"
	msgInvalidReturnType  = "invalid return type"
	msgInvalidTestType    = "invalid type for test expression"
	msgLvalueRequired     = "lvalue required in expression"
	msgInvalidBinaryOp    = "invalid operands to binary %s"
	msgInvalidUnaryOp     = "invalid operand to unary %s"
	msgNotAFunction       = "called object is not a function"
	msgInvalidCallArgs    = "invalid arguments to called function"
)

// Diagnostic is one reported semantic error, with the line it was raised
// against. Syntax errors never reach this type: they are fatal and exit
// the process immediately (see fatalSyntaxError).
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Reporter is the single choke point for semantic diagnostics: every
// error raised by the Checker flows through one Reporter value for the
// duration of a single compilation, rather than a package-level global.
type Reporter struct {
	out   io.Writer
	diags []Diagnostic
}

// NewReporter returns a Reporter that also mirrors every diagnostic to w
// (typically os.Stderr); w may be nil to collect diagnostics silently,
// which test code uses to assert on Diagnostics() without capturing
// process-wide stderr.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: w}
}

// Report records one semantic error. Semantic errors are never fatal: the
// offending construct takes on Type Err and the pipeline continues,
// possibly emitting invalid assembly for a program with errors.
func (r *Reporter) Report(line int, format string, args ...any) {
	d := Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
	r.diags = append(r.diags, d)
	if r.out != nil {
		fmt.Fprintln(r.out, d.String())
	}
}

// Diagnostics returns every semantic error reported so far, in report
// order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diags
}

// HasErrors reports whether any semantic error has been recorded.
func (r *Reporter) HasErrors() bool {
	return len(r.diags) > 0
}

// fatalSyntaxError reports "syntax error at end of file" when the stream
// is exhausted and "syntax error at '<lexeme>'" otherwise, then exits
// non-zero: no recovery, no further parsing.
func fatalSyntaxError(out io.Writer, tok Token) {
	if tok.Kind == DONE {
		fmt.Fprintln(out, "syntax error at end of file")
	} else {
		fmt.Fprintf(out, "syntax error at '%s'\n", tok.Lexeme)
	}
	os.Exit(1)
}
