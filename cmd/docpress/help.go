package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpress <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a static HTML site from a docs tree")
	fmt.Fprintln(w, "  sync       Push a docs tree to the hosted docs service")
	fmt.Fprintln(w, "  index      Generate an index.json of all document front matter")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show this message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common flags:")
	fmt.Fprintln(w, "  -s, --source <dir>    Docs source directory (required)")
	fmt.Fprintln(w, "  -v, --verbose         Log progress to stderr")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "generate:")
	fmt.Fprintln(w, "  -o, --output <dir>    Output directory (default \"site\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "sync:")
	fmt.Fprintln(w, "      --version <v>     Docs version to sync, e.g. 1.2.3 (required)")
	fmt.Fprintln(w, "      --edit-base <url> Repository edit URL prefix")
	fmt.Fprintln(w, "  Requires README_API_KEY and IMAGE_REPO in the environment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "index:")
	fmt.Fprintln(w, "  -o, --output <file>   Output file (default \"index.json\")")
}
