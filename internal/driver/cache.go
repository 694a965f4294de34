package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when CachedClean format changes
const cacheSchemaVersion uint16 = 1

// Digest — ключ кэша: sha256(версия ‖ кодировка ‖ содержимое).
type Digest [sha256.Size]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// CacheKey hashes the inputs that determine a Clean result.
func CacheKey(version, charset string, content []byte) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(version))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(charset))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CachedClean is the on-disk form of a Clean result.
type CachedClean struct {
	Schema  uint16 `msgpack:"schema"`
	Output  []byte `msgpack:"output"`
	Outcome uint8  `msgpack:"outcome"`
	Reason  string `msgpack:"reason,omitempty"`
	Stats   Stats  `msgpack:"stats"`
}

// DiskCache хранит очищенные файлы по Digest на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	s := key.String()
	// двухсимвольный подкаталог, чтобы не складывать всё в одну папку
	return filepath.Join(c.dir, "clean", s[:2], s+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *CachedClean) error {
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
	tmp := f.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	payload.Schema = cacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		return err
	}
	committed = true
	return nil
}

// Get reads a payload. A missing entry or one from another schema is a miss.
func (c *DiskCache) Get(key Digest, out *CachedClean) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("cache entry %s: %w", key, err)
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "clean"))
}

func toCached(r *Result) *CachedClean {
	cc := &CachedClean{
		Output:  r.Output,
		Outcome: uint8(r.Outcome),
		Stats:   r.Stats,
	}
	if r.Reason != nil {
		cc.Reason = r.Reason.Error()
	}
	return cc
}

func fromCached(cc *CachedClean) Result {
	r := Result{
		Output:  cc.Output,
		Outcome: Outcome(cc.Outcome),
		Stats:   cc.Stats,
	}
	if cc.Reason != "" {
		r.Reason = errors.New(cc.Reason)
	}
	return r
}
