// Command confcheck validates configuration files against a schema.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitFailure  = 2
)

// errFindings signals that validation completed and found problems. It is
// reported through the exit code only.
var errFindings = errors.New("validation found problems")

func main() {
	os.Exit(run())
}

func run() int {
	err := rootCmd.Execute()

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitFailure
	}
}
