// Command fca runs Formal Concept Analysis on built-in or file based
// contexts: it enumerates concepts with two independent algorithms, checks
// that they agree and prints the result.
package main

import (
	"os"

	"github.com/YuminosukeSato/gofca/pkg/errors"
)

// Exit codes.
const (
	exitOK           = 0
	exitError        = 1
	exitInconsistent = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var violation *errors.ConsistencyViolation
	if errors.As(err, &violation) {
		return exitInconsistent
	}
	return exitError
}
