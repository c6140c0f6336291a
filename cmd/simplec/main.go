// Command simplec is a pure filter: it reads a Simple-C translation unit
// on stdin and writes the x86-64 AT&T-syntax assembly it compiles to on
// stdout. There are no flags; the only inputs are the program text and
// the process's exit status.
package main

import (
	"os"

	"simplec/pkg/compiler"
)

func main() {
	if err := compiler.Compile(os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}
