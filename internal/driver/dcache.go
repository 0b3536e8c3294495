package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"notal/internal/diag"
	"notal/internal/source"
)

// Bump when DiskPayload changes shape; stale entries are treated as misses.
const diskCacheSchemaVersion uint16 = 1

// Digest is a file content hash, the cache key.
type Digest = [32]byte

// DiskCache persists per-file check results keyed by content hash, so a
// directory re-check only reparses files that actually changed.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiagRecord is one cached diagnostic, spans flattened to byte offsets.
type DiagRecord struct {
	Severity    uint8
	Code        uint16
	Message     string
	Start       uint32
	End         uint32
	Suggestions []string
}

// DiskPayload is the cached outcome of checking one file.
type DiskPayload struct {
	Schema    uint16
	Path      string
	HadErrors bool
	Diags     []DiagRecord
}

// OpenDiskCache initializes a disk cache at the standard user location.
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

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "checks", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload and writes it via temp-file + rename, so a
// crashed writer never leaves a truncated entry behind.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

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

// Get reads a payload; a missing entry or a schema mismatch is a miss,
// not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// payloadFromEngine flattens a finished engine into a cacheable payload.
func payloadFromEngine(path string, eng *diag.Engine) *DiskPayload {
	items := eng.Items()
	payload := &DiskPayload{
		Schema:    diskCacheSchemaVersion,
		Path:      path,
		HadErrors: eng.HasErrors(),
		Diags:     make([]DiagRecord, 0, len(items)),
	}
	for _, d := range items {
		payload.Diags = append(payload.Diags, DiagRecord{
			Severity:    uint8(d.Severity),
			Code:        uint16(d.Code),
			Message:     d.Message,
			Start:       d.Primary.Start,
			End:         d.Primary.End,
			Suggestions: d.Suggestions,
		})
	}
	return payload
}

// engineFromPayload replays cached diagnostics into a fresh engine bound
// to the (re-loaded) file, so rendering works exactly as after a parse.
func engineFromPayload(payload *DiskPayload, file *source.File, opts CheckOptions) *diag.Engine {
	eng := diag.NewEngine(file, opts.MaxDiagnostics)
	eng.WarningsAsErrors = opts.WarningsAsErrors
	eng.OnReport = opts.OnReport
	for _, r := range payload.Diags {
		code := diag.Code(r.Code)
		d := diag.New(diag.Severity(r.Severity), code, source.Span{
			File:  file.ID,
			Start: r.Start,
			End:   r.End,
		}, r.Message)
		for _, s := range r.Suggestions {
			d = d.WithSuggestion(s)
		}
		eng.Add(d)
	}
	return eng
}
