package distcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// TreeLister enumerates the tracked files of a version-controlled
// directory as slash-separated paths relative to its root.
type TreeLister interface {
	List(ctx context.Context, dir string) ([]string, error)
}

// GitLister lists tracked files by opening the repository with go-git
// and reading its index.
type GitLister struct{}

// NewGitLister creates a new GitLister
func NewGitLister() *GitLister {
	return &GitLister{}
}

// List returns the paths of all index entries of the repository at dir.
// Submodule entries are skipped; the comparison is over regular files
// the tarball could contain.
func (l *GitLister) List(ctx context.Context, dir string) ([]string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("not a git repository: %s", dir)
		}
		return nil, fmt.Errorf("failed to open repository %s: %w", dir, err)
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index of %s: %w", dir, err)
	}

	paths := make([]string, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		if entry.Mode == filemode.Submodule {
			continue
		}
		paths = append(paths, entry.Name)
	}
	return paths, nil
}

// ExecLister lists tracked files by running the git binary. It covers
// repository formats go-git cannot read.
type ExecLister struct {
	GitBin string
}

// NewExecLister creates an ExecLister using the given git binary, or
// "git" if empty.
func NewExecLister(gitBin string) *ExecLister {
	if strings.TrimSpace(gitBin) == "" {
		gitBin = "git"
	}
	return &ExecLister{GitBin: gitBin}
}

// List runs `git ls-files -z` scoped to dir and splits its output.
func (l *ExecLister) List(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, l.GitBin, "ls-files", "-z")
	cmd.Dir = dir

	var out bytes.Buffer
	var errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errb.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("git ls-files: %s", msg)
	}

	var paths []string
	for _, p := range strings.Split(out.String(), "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}
