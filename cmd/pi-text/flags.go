// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Global flags precede the subcommand; each subcommand owns a FlagSet

package main

import (
	"flag"
	"fmt"
	"io"
)

type globalArgs struct {
	json       bool
	workers    int
	configPath string
	verbose    bool
	version    bool
}

// parseGlobalFlags parses flags up to the subcommand name and returns the
// remaining arguments, starting with the subcommand.
func parseGlobalFlags(argv []string, stderr io.Writer) (globalArgs, []string, error) {
	var args globalArgs

	fs := flag.NewFlagSet("pi-text", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	fs.BoolVar(&args.json, "json", false, "Write one JSON record per input line")
	fs.IntVar(&args.workers, "workers", 0, "Lines processed in parallel (default from config)")
	fs.StringVar(&args.configPath, "config", "", "Read settings from this YAML file only")
	fs.BoolVar(&args.verbose, "v", false, "Debug logging on stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, nil, err
	}
	if args.workers < 0 {
		return args, nil, fmt.Errorf("-workers must not be negative, got %d", args.workers)
	}
	return args, fs.Args(), nil
}

// newCommandFlags returns a FlagSet for a subcommand that reports errors to stderr.
func newCommandFlags(e *env, cmd command) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "usage: pi-text [global flags] %s %s\n\n%s\n\n", cmd.name, cmd.args, cmd.summary)
		fs.PrintDefaults()
	}
	return fs
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: pi-text [-json] [-workers N] [-config PATH] [-v] <command> [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Lines are read from file, or stdin when no file is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.name, cmd.summary)
	}
}
