// ABOUTME: CLI entry point for pi-text, the ANSI-aware line tool
// ABOUTME: Parses global flags, loads config, and dispatches to a subcommand

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mauromedda/pi-natives-go/internal/config"
	pilog "github.com/mauromedda/pi-natives-go/internal/log"
	"github.com/mauromedda/pi-natives-go/internal/termfix"
	"github.com/mauromedda/pi-natives-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args, rest, err := parseGlobalFlags(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if args.version {
		fmt.Fprintf(stdout, "pi-text %s (%s) built %s\n", version, commit, date)
		return 0
	}

	pilog.SetOutput(stderr)

	settings, err := loadSettings(args.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if args.verbose {
		pilog.SetLevel(slog.LevelDebug)
	} else {
		pilog.SetLevel(pilog.ParseLevel(settings.LogLevel))
	}
	if args.workers > 0 {
		settings.Workers = args.workers
	}
	termfix.Apply(settings.Theme)

	if len(rest) == 0 {
		fmt.Fprintln(stderr, "error: missing command")
		printUsage(stderr)
		return 1
	}

	cmd, ok := lookupCommand(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "error: unknown command %q\n", rest[0])
		printUsage(stderr)
		return 1
	}

	e := &env{
		settings: settings,
		json:     args.json,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}
	if t, err := terminal.Detect(stdout); err == nil {
		e.term = t
	}
	pilog.Debug("running %s with %d workers", cmd.name, settings.Workers)

	if err := cmd.run(ctx, e, rest[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadSettings reads an explicit config file when given, otherwise the
// global and project files for the working directory.
func loadSettings(path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return config.Load(cwd)
}
