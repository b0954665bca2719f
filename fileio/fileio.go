// Package fileio opens and creates the extractor's input and output files,
// transparently (de)compressing by extension, and discovers per-net input
// files under a directory with doublestar globs.
//
// Supported codecs:
//
//	*.gz   gzip  (klauspost/compress/gzip)
//	*.zst  zstd  (klauspost/compress/zstd)
//	other  plain
package fileio

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// DefaultNetGlobs match plain and compressed per-net JSON files at any depth.
var DefaultNetGlobs = []string{"**/*.json", "**/*.json.gz", "**/*.json.zst"}

// Codec identifies a compression format.
type Codec int

const (
	Plain Codec = iota
	Gzip
	Zstd
)

// CodecFor picks the codec from the file extension.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	default:
		return Plain
	}
}

// closers closes a decoding/encoding layer and then the file under it.
type closers struct {
	io.Reader
	io.Writer
	fns []func() error
}

func (c *closers) Close() error {
	var first error
	for _, fn := range c.fns {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open opens path for reading, decompressing by extension.
// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist).
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fileio: open %s", path)
	}

	switch CodecFor(path) {
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "fileio: gzip header %s", path)
		}
		return &closers{Reader: zr, fns: []func() error{zr.Close, f.Close}}, nil
	case Zstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "fileio: zstd reader %s", path)
		}
		return &closers{Reader: zr, fns: []func() error{func() error { zr.Close(); return nil }, f.Close}}, nil
	default:
		return f, nil
	}
}

// Create creates (truncates) path for writing, compressing by extension.
// Missing parent directories are created. Close flushes the codec and the
// file; its error must be checked.
func Create(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "fileio: mkdir %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fileio: create %s", path)
	}

	switch CodecFor(path) {
	case Gzip:
		zw := gzip.NewWriter(f)
		return &closers{Writer: zw, fns: []func() error{zw.Close, f.Close}}, nil
	case Zstd:
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "fileio: zstd writer %s", path)
		}
		return &closers{Writer: zw, fns: []func() error{zw.Close, f.Close}}, nil
	default:
		return f, nil
	}
}

// Discover returns the sorted, de-duplicated regular files under root that
// match any of the doublestar patterns (relative to root, forward slashes).
// With no patterns, DefaultNetGlobs is used.
func Discover(root string, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = DefaultNetGlobs
	}
	fsys := os.DirFS(root)

	seen := make(map[string]struct{})
	var out []string
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("fileio: bad glob %q", p)
		}
		matches, err := doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "fileio: glob %q under %s", p, root)
		}
		for _, m := range matches {
			full := filepath.Join(root, filepath.FromSlash(m))
			if _, dup := seen[full]; dup {
				continue
			}
			seen[full] = struct{}{}
			out = append(out, full)
		}
	}
	sort.Strings(out)

	return out, nil
}

// IsNotExist reports whether err (possibly wrapped) means a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
