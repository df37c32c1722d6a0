package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/golang-cz/devslog"
	"github.com/hayeah/distcheck"
)

// Args defines the command-line arguments with subcommands
type Args struct {
	Check   *CheckCmd `arg:"subcommand:check" help:"Compare a release tarball against the tracked files of a git tree"`
	Icons   *IconsCmd `arg:"subcommand:icons" help:"Export icon bitmaps from an SVG source at the standard sizes"`
	Verbose bool      `arg:"-v,--verbose" help:"Enable debug logging"`
}

// Runner encapsulates the state and behavior for the CLI
type Runner struct {
	Args     Args
	RootPath string
}

// NewRunner creates and initializes a new Runner
func NewRunner(args Args) *Runner {
	return &Runner{
		Args:     args,
		RootPath: ".", // Always use current working directory
	}
}

// Run dispatches to the appropriate subcommand
func (r *Runner) Run() error {
	switch {
	case r.Args.Check != nil:
		checkRunner, err := NewCheckRunner(*r.Args.Check)
		if err != nil {
			return err
		}
		return checkRunner.Run()
	case r.Args.Icons != nil:
		iconsRunner, err := NewIconsRunner(*r.Args.Icons, r.RootPath)
		if err != nil {
			return err
		}
		return iconsRunner.Run()
	default:
		return fmt.Errorf("no subcommand specified, use 'check' or 'icons'")
	}
}

func setupLogger(verbose bool) {
	var handler slog.Handler
	if verbose {
		handler = devslog.NewHandler(os.Stderr, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{Level: slog.LevelDebug},
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

// main is our entrypoint: parse args and run the application
func main() {
	var args Args
	parser := arg.MustParse(&args)

	// If no subcommand is specified, show help
	if args.Check == nil && args.Icons == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	setupLogger(args.Verbose)

	runner := NewRunner(args)
	if err := runner.Run(); err != nil {
		// Differences are the tool's answer, not a failure: exit 1,
		// with the listing already printed. Everything else is an
		// invocation error and exits 2.
		if errors.Is(err, distcheck.ErrDifferences) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "distcheck:", err)
		os.Exit(2)
	}
}
