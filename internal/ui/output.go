package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Fail/Print; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func OK(msg string)   { fmt.Fprintln(stdout, Current().Success.Render(Current().SymOK+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, Current().Error.Render(Current().SymFail+" "+msg)) }

// Print writes a rendered block to stdout.
func Print(s string) { fmt.Fprintln(stdout, s) }
