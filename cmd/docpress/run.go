package main

import (
	"context"
	"errors"
	"fmt"

	docpress "github.com/docpress/docpress"
	"github.com/docpress/docpress/internal/readme"
)

// Exit codes follow Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

// Sentinel errors for CLI validation.
var (
	ErrMissingSourceFlag  = errors.New("--source is required")
	ErrMissingVersionFlag = errors.New("--version is required")
	ErrMissingAPIKey      = errors.New(EnvAPIKey + " environment variable not set")
	ErrMissingImageRepo   = errors.New(EnvImageRepo + " environment variable not set")
)

// run dispatches the command line and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch args[1] {
	case "generate":
		err = runGenerate(args[2:], env)
	case "sync":
		err = runSync(args[2:], env)
	case "index":
		err = runIndex(args[2:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "docpress %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		printUsage(env.Stdout)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		if isUsageError(err) {
			return ExitUsage
		}
		return ExitGeneral
	}
	return ExitSuccess
}

func isUsageError(err error) bool {
	return errors.Is(err, ErrMissingSourceFlag) ||
		errors.Is(err, ErrMissingVersionFlag) ||
		errors.Is(err, ErrMissingAPIKey) ||
		errors.Is(err, ErrMissingImageRepo)
}

// logger returns the progress hook for --verbose, or nil.
func (e *Environment) logger(verbose bool) func(format string, args ...any) {
	if !verbose {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(e.Stderr, format+"\n", args...)
	}
}

func runGenerate(args []string, env *Environment) error {
	flags, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}
	if flags.source == "" {
		return ErrMissingSourceFlag
	}

	g := docpress.NewSiteGenerator(flags.source, flags.output, nil)
	g.Logf = env.logger(flags.verbose)
	return g.Generate(context.Background())
}

func runSync(args []string, env *Environment) error {
	flags, err := parseSyncFlags(args)
	if err != nil {
		return err
	}
	if flags.source == "" {
		return ErrMissingSourceFlag
	}
	if flags.version == "" {
		return ErrMissingVersionFlag
	}
	apiKey := env.Getenv(EnvAPIKey)
	if apiKey == "" {
		return ErrMissingAPIKey
	}
	repoID := env.Getenv(EnvImageRepo)
	if repoID == "" {
		return ErrMissingImageRepo
	}

	client := readme.NewClient(apiKey, flags.version)
	opts := []docpress.Option{
		docpress.WithTarget(docpress.TargetHostedAPI),
		docpress.WithSource(flags.source),
		docpress.WithRepoID(repoID),
	}
	if flags.editBase != "" {
		opts = append(opts, docpress.WithEditPageBase(flags.editBase))
	}

	s := docpress.NewSyncer(flags.source, client, docpress.NewPipeline(opts...))
	s.Logf = env.logger(flags.verbose)
	return s.Sync(context.Background())
}

func runIndex(args []string, env *Environment) error {
	flags, err := parseIndexFlags(args)
	if err != nil {
		return err
	}
	if flags.source == "" {
		return ErrMissingSourceFlag
	}

	ix := docpress.NewIndexer(flags.source)
	ix.Logf = env.logger(flags.verbose)
	return ix.Write(flags.output)
}
