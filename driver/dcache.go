package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/TyOverby/snoot/diag"
	"github.com/TyOverby/snoot/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores per-file check artifacts keyed by content hash, so an
// unchanged file skips re-parsing in diagnostics-only passes.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiag is one diagnostic in cacheable form. Spans are stored as raw
// coordinates and rebuilt over the file's content on a hit.
type CachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string

	ByteStart uint32
	ByteEnd   uint32
	LineStart uint32
	ColStart  uint32
	LineEnd   uint32
	ColEnd    uint32
}

// DiskPayload stores one file's diagnostics and status.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path      string
	Hash      [32]byte
	HadErrors bool
	Diags     []CachedDiag
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location (XDG_CACHE_HOME or ~/.cache) under app's subdirectory.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache. The write goes
// through a temp file and rename, so readers never see a partial entry.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = diskCacheSchemaVersion

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload. Returns false on a miss, a schema
// mismatch, or a hash mismatch; a decode error discards the entry.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, nil
	}
	if out.Schema != diskCacheSchemaVersion || out.Hash != key {
		return false, nil
	}
	return true, nil
}

// cacheDiags converts bag contents to cacheable form.
func cacheDiags(bag *diag.Bag) []CachedDiag {
	items := bag.Items()
	out := make([]CachedDiag, 0, len(items))
	for _, d := range items {
		sp := d.Primary
		out = append(out, CachedDiag{
			Severity:  uint8(d.Severity),
			Code:      uint16(d.Code),
			Message:   d.Message,
			ByteStart: sp.ByteStart,
			ByteEnd:   sp.ByteEnd,
			LineStart: sp.LineStart,
			ColStart:  sp.ColStart,
			LineEnd:   sp.LineEnd,
			ColEnd:    sp.ColEnd,
		})
	}
	return out
}

// restoreDiags rebuilds diagnostics over the file's live content.
func restoreDiags(cached []CachedDiag, file *source.File, path string, bag *diag.Bag) {
	for _, cd := range cached {
		var sp source.Span
		if cd.LineStart != 0 {
			sp = source.NewSpan(file.Content,
				cd.ByteStart, cd.ByteEnd,
				cd.LineStart, cd.ColStart,
				cd.LineEnd, cd.ColEnd)
		}
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), sp, cd.Message)
		bag.Add(d.WithFile(path))
	}
}
