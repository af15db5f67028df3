// Package cache implements a content-addressed, on-disk result cache,
// inspired by grailbio-base's recordio package's notion of a
// self-describing, independently-readable record: each entry is a
// small JSON file named by the sample's digest, holding the full
// per-tester result set, so re-running the corpus over unchanged
// files skips kernel evaluation entirely.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/opengm/gmrts/internal/digest"
	"github.com/opengm/gmrts/kernels"
)

// Cache is a directory of digest-named JSON result files.
type Cache struct {
	dir string
}

// Open returns a Cache rooted at dir, creating dir if it does not
// exist.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "cache: creating %s", dir)
	}
	return &Cache{dir: dir}, nil
}

type entry struct {
	Tag    int     `json:"tag"`
	Param  int     `json:"param"`
	PV     float64 `json:"pv"`
	QV     float64 `json:"qv"`
}

func (c *Cache) path(d digest.Digest) string {
	return filepath.Join(c.dir, d.String()+".json")
}

// Get returns the cached results for digest d, or ok=false if absent.
func (c *Cache) Get(d digest.Digest) (map[kernels.Tester]kernels.Result, bool, error) {
	b, err := os.ReadFile(c.path(d))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "cache: reading entry for %s", d)
	}
	var entries []entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, false, errors.Wrapf(err, "cache: decoding entry for %s", d)
	}
	out := make(map[kernels.Tester]kernels.Result, len(entries))
	for _, e := range entries {
		out[kernels.Tester{Tag: kernels.Tag(e.Tag), Param: e.Param}] = kernels.Result{PV: e.PV, QV: e.QV}
	}
	return out, true, nil
}

// Put stores results under digest d, overwriting any existing entry.
func (c *Cache) Put(d digest.Digest, results map[kernels.Tester]kernels.Result) error {
	entries := make([]entry, 0, len(results))
	for t, r := range results {
		entries = append(entries, entry{Tag: int(t.Tag), Param: t.Param, PV: r.PV, QV: r.QV})
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrapf(err, "cache: encoding entry for %s", d)
	}
	tmp := c.path(d) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return errors.Wrapf(err, "cache: writing entry for %s", d)
	}
	return errors.Wrapf(os.Rename(tmp, c.path(d)), "cache: installing entry for %s", d)
}
