// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// cache.go — the Manager facade: typed GetOrSet over the three storage
// tiers, invalidation, the global policy, and per-manager stats. One coarse
// mutex serializes every public operation end-to-end, including the
// caller-supplied fetch, which guarantees at most one concurrent fetch per
// manager instance.

package sysinfo

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/sysinfo/internal/clock"
	"github.com/AndrewDonelson/sysinfo/internal/codec"
	"github.com/AndrewDonelson/sysinfo/internal/disktier"
	"github.com/AndrewDonelson/sysinfo/internal/memtier"
	"github.com/AndrewDonelson/sysinfo/internal/metrics"
)

// Re-export types so callers only import this package.
type MetricsRecorder = metrics.MetricsRecorder
type Codec = codec.Codec

// Codec instances callers may pass in Config.
var (
	CodecMsgPack Codec = codec.MsgPack{}
	CodecJSON    Codec = codec.JSON{}
)

// Config contains all Manager configuration. The zero value is usable:
// every field has a default.
type Config struct {
	// PersistentDir overrides <user-cache-root>/<Namespace> as the
	// persistent tier root.
	PersistentDir string
	// TempDir overrides the system temp directory as the temp tier root.
	TempDir string
	// Namespace is the subdirectory of the user cache root used by the
	// persistent tier. Treat a codec change as a version bump and give the
	// new codec its own namespace.
	Namespace string

	// Optional overrideable components
	Codec   Codec
	Clock   clock.Clock
	Logger  Logger
	Metrics MetricsRecorder

	// Encryption key (must be 32 bytes for AES-256-GCM; nil = disabled).
	EncryptionKey []byte

	// SweepInterval for the memory tier's stale-entry sweep.
	SweepInterval time.Duration

	// DefaultPolicy applies when GetOrSet receives no override. Zero value
	// means DefaultPolicy() (persistent, 24h).
	DefaultPolicy *Policy
}

func (c *Config) defaults() {
	if c.Namespace == "" {
		c.Namespace = "sysinfo"
	}
	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}
	if c.Codec == nil {
		c.Codec = codec.Default
	}
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Noop{}
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = 30 * time.Second
	}
}

// Stats is the snapshot returned by Manager.Stats().
type Stats struct {
	MemHits    int64
	MemMisses  int64
	MemEntries int64
	Fetches    int64
	Errors     int64
}

// Manager memoizes results of fallible computations across the memory, temp
// and persistent tiers. Cache files are process-shared; consistency across
// processes relies on atomic rename, not locking.
type Manager struct {
	// mu is held for the full duration of every public operation,
	// including the user-supplied fetch. Callers must not re-enter the
	// manager from inside a fetch; that deadlocks.
	mu sync.Mutex

	cfg       Config
	mem       *memtier.Store
	temp      *disktier.Store
	persist   *disktier.Store
	encryptor Encryptor
	policy    Policy

	// known records every key that has passed through this manager; the
	// temp-directory sweep in InvalidateAll is restricted to these names
	// so unrelated files in the shared system temp dir are never touched.
	known map[string]struct{}

	fetches atomic.Int64
	errs    atomic.Int64
	closed  atomic.Bool
}

// NewManager creates a Manager from the provided Config.
func NewManager(cfg Config) (*Manager, error) {
	cfg.defaults()

	if cfg.PersistentDir == "" {
		root, err := os.UserCacheDir()
		if err != nil {
			return nil, Errorf(KindIOError, "resolve user cache dir: %v", err)
		}
		cfg.PersistentDir = filepath.Join(root, cfg.Namespace)
	}

	m := &Manager{
		cfg:     cfg,
		mem:     memtier.New(memtier.Options{Clock: cfg.Clock, SweepInterval: cfg.SweepInterval}),
		temp:    disktier.New(cfg.TempDir),
		persist: disktier.New(cfg.PersistentDir),
		policy:  DefaultPolicy(),
		known:   make(map[string]struct{}),
	}
	if cfg.DefaultPolicy != nil {
		m.policy = *cfg.DefaultPolicy
	}
	if len(cfg.EncryptionKey) > 0 {
		enc, err := NewAES256GCM(cfg.EncryptionKey)
		if err != nil {
			return nil, Errorf(KindConfigurationError, "encryption init: %v", err)
		}
		m.encryptor = enc
	}
	return m, nil
}

// SetGlobalPolicy replaces the default policy used when GetOrSet receives no
// override.
func (m *Manager) SetGlobalPolicy(p Policy) {
	m.mu.Lock()
	m.policy = p
	m.mu.Unlock()
}

// GetOrSet returns the cached value for key or, on miss or staleness,
// invokes fetch and stores its result. The policy override may be nil, in
// which case the manager's global policy applies.
//
// Contract:
//   - a hit never invokes fetch;
//   - a fetch error propagates verbatim and nothing is written;
//   - a successful fetch always yields its value to the caller, even when
//     the disk write afterwards fails (the failure is logged);
//   - while the process-wide bypass flag is set, fetch runs unconditionally
//     and neither tier is read or written.
func GetOrSet[T any](m *Manager, key string, override *Policy, fetch func() (T, error)) (T, error) {
	var zero T
	if fetch == nil {
		return zero, New(KindInvalidArgument, "nil fetch callback")
	}
	// Bypass comes before key validation: while the flag is set the key is
	// never used, so even an unstorable key just runs the fetch.
	if IgnoreCache() {
		return fetch()
	}
	if err := ValidateKey(key); err != nil {
		return zero, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed.Load() {
		return zero, New(KindInternalError, "cache manager is closed")
	}

	pol := m.policy
	if override != nil {
		pol = *override
	}
	m.known[key] = struct{}{}
	now := clock.Epoch(m.cfg.Clock)

	// Memory tier. The tier already drops stale buffers; decoding can still
	// fail if the caller mixed payload types for one key.
	if buf, ok := m.mem.Get(key); ok {
		if v, ok := decodeFresh[T](m, buf, now); ok {
			m.cfg.Metrics.RecordHit("memory", key)
			return v, nil
		}
		m.mem.Delete(key)
	}
	m.cfg.Metrics.RecordMiss("memory", key)

	// Disk tier for the policy. Read errors and malformed entries are
	// swallowed and treated as a miss.
	if pol.Location != InMemory {
		if raw, err := m.tier(pol.Location).Read(key); err == nil {
			if v, expires, ok := decodeFreshMeta[T](m, raw, now); ok {
				m.mem.Set(key, raw, expires)
				m.cfg.Metrics.RecordHit(pol.Location.String(), key)
				return v, nil
			}
		}
		m.cfg.Metrics.RecordMiss(pol.Location.String(), key)
	}

	// Miss on every tier: fetch.
	start := m.cfg.Clock.Now()
	v, err := fetch()
	m.fetches.Add(1)
	m.cfg.Metrics.RecordFetch(key, m.cfg.Clock.Now().Sub(start))
	if err != nil {
		m.errs.Add(1)
		return zero, err
	}

	var expires *int64
	if pol.TTL > 0 {
		e := now + int64(pol.TTL/time.Second)
		expires = &e
	}
	buf, err := codec.EncodeEntry(m.cfg.Codec, v, expires)
	if err != nil {
		m.errs.Add(1)
		return zero, Errorf(KindParseError, "encode cache entry %q: %v", key, err)
	}
	if m.encryptor != nil {
		buf, err = m.encryptor.Encrypt(buf)
		if err != nil {
			m.errs.Add(1)
			return zero, Errorf(KindInternalError, "encrypt cache entry %q: %v", key, err)
		}
	}

	m.mem.Set(key, buf, expires)
	if pol.Location != InMemory {
		if werr := m.tier(pol.Location).Write(key, buf); werr != nil {
			// The fetch succeeded, so the value is still returned.
			m.cfg.Logger.Warn("cache write failed", "key", key, "tier", pol.Location.String(), "error", werr)
			m.cfg.Metrics.RecordError("write")
			m.errs.Add(1)
		}
	}
	return v, nil
}

// Invalidate removes key from the memory tier and best-effort removes its
// files on both disk tiers. Missing files are not errors.
func (m *Manager) Invalidate(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mem.Delete(key)
	delete(m.known, key)
	if err := m.temp.Remove(key); err != nil {
		m.cfg.Logger.Warn("invalidate temp file", "key", key, "error", err)
	}
	if err := m.persist.Remove(key); err != nil {
		m.cfg.Logger.Warn("invalidate persistent file", "key", key, "error", err)
	}
	return nil
}

// InvalidateAll clears the memory tier, removes every regular file under the
// persistent namespace directory, and removes temp-directory files whose
// names match keys this manager has seen. It returns the number of files
// removed, saturating at 255. With logRemovals set, one log line is emitted
// per removed file.
func (m *Manager) InvalidateAll(logRemovals bool) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mem.Flush()

	removed := m.persist.Purge(func(string) bool { return true })
	removed = append(removed, m.temp.Purge(func(name string) bool {
		_, ok := m.known[name]
		return ok
	})...)
	m.known = make(map[string]struct{})

	if logRemovals {
		for _, path := range removed {
			m.cfg.Logger.Info("removed cache file", "path", path)
		}
	}
	if len(removed) > 255 {
		return 255
	}
	return uint8(len(removed))
}

// PersistentPath returns the cache file path key maps to on the persistent
// tier. External collaborators use it for diagnostics only.
func (m *Manager) PersistentPath(key string) string {
	return m.persist.Path(key)
}

// Stats returns a snapshot of operational counters.
func (m *Manager) Stats() Stats {
	st := m.mem.Stats()
	return Stats{
		MemHits:    st.Hits,
		MemMisses:  st.Misses,
		MemEntries: st.Entries,
		Fetches:    m.fetches.Load(),
		Errors:     m.errs.Load(),
	}
}

// Close stops the memory tier's sweep goroutine and marks the manager
// unusable. Safe to call more than once.
func (m *Manager) Close() {
	if m.closed.CompareAndSwap(false, true) {
		m.mem.Close()
	}
}

func (m *Manager) tier(loc TierLocation) *disktier.Store {
	if loc == TempDirectory {
		return m.temp
	}
	return m.persist
}

// open reverses the optional at-rest encryption applied by GetOrSet.
func (m *Manager) open(raw []byte) ([]byte, error) {
	if m.encryptor == nil {
		return raw, nil
	}
	return m.encryptor.Decrypt(raw)
}

// decodeFresh decodes an entry buffer (in its sealed on-tier form) and
// unmarshals its payload when it is still fresh.
func decodeFresh[T any](m *Manager, raw []byte, now int64) (T, bool) {
	v, _, ok := decodeFreshMeta[T](m, raw, now)
	return v, ok
}

// decodeFreshMeta additionally reports the entry's expiry so a disk hit can
// populate the memory tier with the identical buffer.
func decodeFreshMeta[T any](m *Manager, raw []byte, now int64) (T, *int64, bool) {
	var zero T
	buf, err := m.open(raw)
	if err != nil {
		return zero, nil, false
	}
	ent, err := codec.DecodeEntry(m.cfg.Codec, buf)
	if err != nil || !ent.Fresh(now) {
		return zero, nil, false
	}
	var v T
	if err := m.cfg.Codec.Unmarshal(ent.Data, &v); err != nil {
		return zero, nil, false
	}
	return v, ent.Expires, true
}
