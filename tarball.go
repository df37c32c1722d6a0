package distcheck

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
)

// TarballFiles enumerates the regular-file members of the tarball at
// tarPath and returns their paths relative to the archive's single
// top-level directory. Gzip and bzip2 compression are detected from the
// stream's magic bytes.
//
// Release tarballs are expected to wrap everything in one enclosing
// directory (e.g. `project-1.0/`). A member outside that directory, or
// one with no directory component at all, is rejected rather than
// silently producing a garbage comparison.
func TarballFiles(tarPath string) ([]string, error) {
	f, err := os.Open(tarPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tarball: %w", err)
	}
	defer f.Close()

	r, err := decompress(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to read tarball %s: %w", tarPath, err)
	}

	var paths []string
	root := ""
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed tarball %s: %w", tarPath, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := path.Clean(hdr.Name)
		memberRoot, rel, ok := strings.Cut(name, "/")
		if !ok {
			return nil, fmt.Errorf("tarball member %q has no enclosing directory; expected a single top-level directory", hdr.Name)
		}
		if memberRoot == "" || memberRoot == ".." {
			return nil, fmt.Errorf("tarball member %q is not under a top-level directory", hdr.Name)
		}
		if root == "" {
			root = memberRoot
		} else if memberRoot != root {
			return nil, fmt.Errorf("tarball member %q is outside the top-level directory %q", hdr.Name, root)
		}
		paths = append(paths, rel)
	}
	return paths, nil
}

// decompress wraps r with the decompressor matching its magic bytes, or
// returns r unchanged for a plain tar stream.
func decompress(r *bufio.Reader) (io.Reader, error) {
	magic, err := r.Peek(3)
	if err != nil {
		return nil, fmt.Errorf("failed to sniff archive type: %w", err)
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		return gzip.NewReader(r)
	case bytes.HasPrefix(magic, bzip2Magic):
		return bzip2.NewReader(r), nil
	default:
		return r, nil
	}
}
