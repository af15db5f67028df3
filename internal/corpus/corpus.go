// Package corpus enumerates a directory of sample files, optionally
// filtering by a glob pattern, and constructs Samples from them,
// transparently decompressing .gz and .zst files by suffix. Adapted
// from the teacher's own preference for a thin abstraction over the
// filesystem rather than scattering os.ReadDir calls through the CLI.
package corpus

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/opengm/gmrts/bitsample"
)

// Entry is one discovered corpus file.
type Entry struct {
	Path string
}

// List returns every regular file directly inside dir whose base name
// matches pattern (an empty pattern matches everything), sorted by
// name for reproducible ordering across runs.
func List(dir, pattern string) ([]Entry, error) {
	var g glob.Glob
	if pattern != "" {
		var err error
		g, err = glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "corpus: compiling glob %q", pattern)
		}
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: reading %s", dir)
	}

	var out []Entry
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if g != nil && !g.Match(name) {
			continue
		}
		out = append(out, Entry{Path: filepath.Join(dir, name)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Load reads a corpus file, transparently gunzipping or
// zstd-decompressing it by suffix, and builds a Sample from its bytes.
func Load(path string) (*bitsample.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: opening %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "corpus: gunzip %s", path)
		}
		defer gr.Close()
		r = gr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "corpus: zstd decompress %s", path)
		}
		defer zr.Close()
		r = zr
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: reading %s", path)
	}
	return bitsample.NewFromBytes(b), nil
}
