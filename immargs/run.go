package immargs

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Swappable for tests.
var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ParseEnv parses the process argument vector (os.Args).
func ParseEnv(spec *Spec) (*Result, error) {
	return Parse(spec, os.Args)
}

// MustParse parses argv and exits the process on any failure: help and
// version output go to stdout with exit code 0, everything else prints an
// error line to stderr and exits with code 1. Use Parse to handle failures
// yourself.
func MustParse(spec *Spec, argv []string) *Result {
	result, err := Parse(spec, argv)
	if err != nil {
		exitOnError(err)
	}
	return result
}

// MustParseEnv is MustParse over the process argument vector.
func MustParseEnv(spec *Spec) *Result {
	return MustParse(spec, os.Args)
}

// Run dispatches argv and exits the process on any parse failure, with the
// same output and exit codes as MustParse. Handler errors are returned to
// the caller.
func (d *Dispatcher) Run(argv []string) error {
	err := d.Dispatch(argv)

	var perr *ParseError
	if errors.As(err, &perr) {
		exitOnError(perr)
	}
	return err
}

func exitOnError(err error) {
	var perr *ParseError
	if errors.As(err, &perr) {
		switch perr.Type {
		case ErrorTypeVersionRequested:
			fmt.Fprintln(stdout, perr.Message)
			osExit(0)
		case ErrorTypeHelpRequested:
			fmt.Fprint(stdout, perr.Message)
			osExit(0)
		}
		fmt.Fprintf(stderr, "error: %s\n", perr.Message)
		if perr.Suggestion != "" {
			fmt.Fprintf(stderr, "did you mean '%s'?\n", perr.Suggestion)
		}
		osExit(1)
		return
	}

	fmt.Fprintf(stderr, "error: %s\n", err)
	osExit(1)
}
