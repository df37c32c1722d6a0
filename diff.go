package distcheck

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"
)

// ErrDifferences signals that the two file sets differ. Callers map it
// to exit status 1, distinct from invocation failures.
var ErrDifferences = errors.New("file sets differ")

// Report holds the symmetric difference of the tree and tarball file
// sets. Both slices are deduplicated, disjoint and sorted.
type Report struct {
	TreeOnly    []string
	TarballOnly []string
}

// Compare computes the symmetric difference of the two path lists.
// Inputs are treated as sets: duplicates are discarded before
// differencing.
func Compare(treeFiles, tarballFiles []string) *Report {
	treeOnly, tarballOnly := lo.Difference(lo.Uniq(treeFiles), lo.Uniq(tarballFiles))
	sort.Strings(treeOnly)
	sort.Strings(tarballOnly)
	return &Report{
		TreeOnly:    treeOnly,
		TarballOnly: tarballOnly,
	}
}

// HasDifferences reports whether either side has unique files.
func (r *Report) HasDifferences() bool {
	return len(r.TreeOnly) > 0 || len(r.TarballOnly) > 0
}

// Print writes the report to w, one labeled block per non-empty side.
// Empty blocks are omitted entirely.
func (r *Report) Print(w io.Writer, treeLabel, tarballLabel string) {
	printBlock(w, treeLabel, r.TreeOnly)
	printBlock(w, tarballLabel, r.TarballOnly)
}

func printBlock(w io.Writer, label string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(w, "# Only in %s\n", label)
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}
