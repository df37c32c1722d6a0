package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hayeah/distcheck"
	"github.com/hayeah/distcheck/ignore"
)

// Built-in ignore lists. Tree-side patterns are files that belong in
// the repository but never in a release; tarball-side patterns are
// metadata the packaging step generates.
var (
	defaultTreeIgnores    = []string{".gitignore", ".gitattributes"}
	defaultTarballIgnores = []string{"PKG-INFO", "*.egg-info"}
)

// CheckCmd defines the command-line arguments for the check subcommand
type CheckCmd struct {
	Tarball       string   `arg:"positional,required" help:"Path to the release tarball"`
	GitDir        string   `arg:"positional" help:"Path to the git working tree (default: current directory)"`
	Quiet         bool     `arg:"-q,--quiet" help:"Suppress the listing of differing files; exit status is unaffected"`
	ExecGit       bool     `arg:"--exec-git" help:"List tracked files with the git binary instead of reading the index"`
	IgnoreTree    []string `arg:"--ignore-tree,separate" help:"Extra glob pattern to ignore on the tree side (repeatable)"`
	IgnoreTarball []string `arg:"--ignore-tarball,separate" help:"Extra glob pattern to ignore on the tarball side (repeatable)"`
}

// CheckRunner encapsulates the state and behavior for the check subcommand
type CheckRunner struct {
	Args         CheckCmd
	Lister       distcheck.TreeLister
	TreeRules    *ignore.Rules
	TarballRules *ignore.Rules
	Out          io.Writer
}

// NewCheckRunner creates and initializes a new CheckRunner
func NewCheckRunner(cmd CheckCmd) (*CheckRunner, error) {
	if cmd.Tarball == "" {
		return nil, fmt.Errorf("a tarball path must be provided")
	}
	if cmd.GitDir == "" {
		cmd.GitDir = "."
	}

	cfg, err := distcheck.LoadConfig(cmd.GitDir)
	if err != nil {
		return nil, err
	}

	treePatterns := append(append([]string{}, defaultTreeIgnores...), cfg.Check.IgnoreTree...)
	treePatterns = append(treePatterns, cmd.IgnoreTree...)
	tarballPatterns := append(append([]string{}, defaultTarballIgnores...), cfg.Check.IgnoreTarball...)
	tarballPatterns = append(tarballPatterns, cmd.IgnoreTarball...)

	var lister distcheck.TreeLister
	if cmd.ExecGit {
		lister = distcheck.NewExecLister(cfg.Check.GitBin)
	} else {
		lister = distcheck.NewGitLister()
	}

	return &CheckRunner{
		Args:         cmd,
		Lister:       lister,
		TreeRules:    ignore.New(treePatterns),
		TarballRules: ignore.New(tarballPatterns),
		Out:          os.Stdout,
	}, nil
}

// Run executes the check subcommand. It returns nil when the file sets
// are identical after filtering, distcheck.ErrDifferences when they are
// not, and any other error on invocation failure.
func (r *CheckRunner) Run() error {
	ctx := context.Background()

	treeFiles, err := r.Lister.List(ctx, r.Args.GitDir)
	if err != nil {
		return err
	}
	treeFiles = r.TreeRules.Filter(treeFiles)

	tarballFiles, err := distcheck.TarballFiles(r.Args.Tarball)
	if err != nil {
		return err
	}
	tarballFiles = r.TarballRules.Filter(tarballFiles)

	slog.Debug("collected file sets",
		"tree", len(treeFiles),
		"tarball", len(tarballFiles),
	)

	report := distcheck.Compare(treeFiles, tarballFiles)
	if !report.HasDifferences() {
		return nil
	}

	if !r.Args.Quiet {
		report.Print(r.Out, r.Args.GitDir, r.Args.Tarball)
	}
	return distcheck.ErrDifferences
}
