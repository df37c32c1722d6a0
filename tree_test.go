package distcheck

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/hayeah/distcheck/internal/assert"
)

// initRepo creates a git repository in a temp directory with the given
// files staged in the index.
func initRepo(t *testing.T, files []string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to init repository: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for _, file := range files {
		path := filepath.Join(dir, file)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
		if _, err := wt.Add(file); err != nil {
			t.Fatalf("Failed to stage file: %v", err)
		}
	}

	return dir
}

func TestGitLister(t *testing.T) {
	assert := assert.New(t)

	t.Run("lists staged files", func(t *testing.T) {
		dir := initRepo(t, []string{"a.txt", "b.txt", "sub/c.txt"})

		files, err := NewGitLister().List(context.Background(), dir)
		assert.NoError(err)
		assert.ElementsMatch([]string{"a.txt", "b.txt", "sub/c.txt"}, files)
	})

	t.Run("untracked files are not listed", func(t *testing.T) {
		dir := initRepo(t, []string{"a.txt"})
		if err := os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}

		files, err := NewGitLister().List(context.Background(), dir)
		assert.NoError(err)
		assert.Equal([]string{"a.txt"}, files)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := NewGitLister().List(context.Background(), t.TempDir())
		assert.ErrorContains(err, "not a git repository")
	})
}

func TestExecLister(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	assert := assert.New(t)

	t.Run("lists staged files", func(t *testing.T) {
		dir := initRepo(t, []string{"a.txt", "sub/c.txt"})

		files, err := NewExecLister("").List(context.Background(), dir)
		assert.NoError(err)
		assert.ElementsMatch([]string{"a.txt", "sub/c.txt"}, files)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := NewExecLister("").List(context.Background(), t.TempDir())
		assert.Error(err)
	})
}
