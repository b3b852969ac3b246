package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := verboseRequested(os.Args)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(run(os.Args, DefaultEnv()))
}

// verboseRequested scans args ahead of command parsing so maxprocs
// logging honors --verbose.
func verboseRequested(args []string) bool {
	for _, a := range args[1:] {
		if a == "--verbose" || a == "-v" {
			return true
		}
	}
	return false
}
