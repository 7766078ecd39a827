// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// memtier.go — the in-memory cache tier. Stores already-encoded entry
// buffers keyed by cache key so the identical bytes can be written to the
// disk tiers, with per-entry absolute expiry, hit/miss stats, and a
// background sweep that drops stale buffers.

// Package memtier provides the in-memory buffer tier of the cache manager.
package memtier

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndrewDonelson/sysinfo/internal/clock"
)

// entry holds one encoded buffer and its optional absolute expiry
// (UNIX epoch seconds; nil = never expires).
type entry struct {
	buf     []byte
	expires *int64
}

// Options configures a Store.
type Options struct {
	Clock         clock.Clock
	SweepInterval time.Duration // 0 disables the background sweep
}

// Store is the in-memory buffer tier. Staleness is TTL-based only; there is
// no size bound or eviction policy.
type Store struct {
	mu     sync.RWMutex
	items  map[string]entry
	clock  clock.Clock
	hits   atomic.Int64
	misses atomic.Int64
	stopCh chan struct{}
	once   sync.Once
}

// New creates a Store and starts its sweep loop when an interval is set.
func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	s := &Store{
		items:  make(map[string]entry),
		clock:  opts.Clock,
		stopCh: make(chan struct{}),
	}
	if opts.SweepInterval > 0 {
		go s.sweepLoop(opts.SweepInterval)
	}
	return s
}

// Get returns the buffer for key if present and not expired. Stale entries
// are removed and reported as misses.
func (s *Store) Get(key string) ([]byte, bool) {
	now := clock.Epoch(s.clock)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		s.misses.Add(1)
		return nil, false
	}
	if e.expires != nil && now >= *e.expires {
		delete(s.items, key)
		s.misses.Add(1)
		return nil, false
	}
	s.hits.Add(1)
	return e.buf, true
}

// Set stores buf under key with an optional absolute expiry.
func (s *Store) Set(key string, buf []byte, expires *int64) {
	s.mu.Lock()
	s.items[key] = entry{buf: buf, expires: expires}
	s.mu.Unlock()
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// Flush removes every entry and returns how many were dropped.
func (s *Store) Flush() int {
	s.mu.Lock()
	n := len(s.items)
	s.items = make(map[string]entry)
	s.mu.Unlock()
	return n
}

// Keys returns a snapshot of all live keys.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return keys
}

// Stats holds hit/miss/entry counts.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int64
}

// Stats returns current statistics.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := int64(len(s.items))
	s.mu.RUnlock()
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: n}
}

// Close stops the background sweep. Safe to call more than once.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stopCh) })
}

func (s *Store) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Store) sweep() {
	now := clock.Epoch(s.clock)
	s.mu.Lock()
	for k, e := range s.items {
		if e.expires != nil && now >= *e.expires {
			delete(s.items, k)
		}
	}
	s.mu.Unlock()
}
