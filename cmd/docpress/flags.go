package main

import (
	flag "github.com/spf13/pflag"
)

// generateFlags holds flags for the generate command.
type generateFlags struct {
	source  string
	output  string
	verbose bool
}

// syncFlags holds flags for the sync command.
type syncFlags struct {
	source   string
	version  string
	editBase string
	verbose  bool
}

// indexFlags holds flags for the index command.
type indexFlags struct {
	source  string
	output  string
	verbose bool
}

func parseGenerateFlags(args []string) (*generateFlags, error) {
	flags := &generateFlags{}
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.StringVarP(&flags.source, "source", "s", "", "docs source directory")
	fs.StringVarP(&flags.output, "output", "o", "site", "output directory")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

func parseSyncFlags(args []string) (*syncFlags, error) {
	flags := &syncFlags{}
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	fs.StringVarP(&flags.source, "source", "s", "", "docs source directory")
	fs.StringVar(&flags.version, "version", "", "docs version to sync, e.g. 1.2.3")
	fs.StringVar(&flags.editBase, "edit-base", "", "repository edit URL prefix for edit-this-page links")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

func parseIndexFlags(args []string) (*indexFlags, error) {
	flags := &indexFlags{}
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	fs.StringVarP(&flags.source, "source", "s", "", "docs source directory")
	fs.StringVarP(&flags.output, "output", "o", "index.json", "output file")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}
