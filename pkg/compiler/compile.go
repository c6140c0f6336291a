package compiler

import (
	"fmt"
	"io"
	"os"
)

// Compile reads a Simple-C translation unit from r and writes the
// x86-64 AT&T-syntax assembly text generated for it to w. It is the one
// exported entry point tying the pipeline together: Lex -> Parse (with
// integrated semantic checking) -> Generate.
//
// A lexical error (an unterminated string, a stray '|', ...) is returned
// as a non-nil error before anything is parsed or written to w. A parse
// error is reported to stderr and terminates the process directly via
// fatalSyntaxError's os.Exit(1): there is no recovery path back into this
// function for that case.
//
// Semantic errors are a different story: they are reported to stderr as
// they are found, but they never stop the pipeline. Compile still
// generates and writes assembly for a program with reported semantic
// errors, and returns nil. Compile's own error return is reserved for
// lexical errors and for I/O failure reading r or writing w.
func Compile(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("compiler: reading input: %w", err)
	}

	toks, err := Lex(string(src))
	if err != nil {
		return fmt.Errorf("compiler: %w", err)
	}

	rep := NewReporter(os.Stderr)
	chk := NewChecker(rep)
	p := NewParser(toks, chk, os.Stderr)
	prog := p.Parse()

	asm := Generate(prog)
	if _, err := io.WriteString(w, asm); err != nil {
		return fmt.Errorf("compiler: writing output: %w", err)
	}
	return nil
}
