// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// policy.go — cache policies (tier location plus optional TTL), the factory
// shortcuts, and the process-wide cache bypass flag.

package sysinfo

import (
	"sync/atomic"
	"time"
)

// TierLocation selects which storage tier a policy writes through to.
type TierLocation int

const (
	// InMemory keeps entries in the process-local memory tier only.
	InMemory TierLocation = iota
	// TempDirectory writes through to the system temp directory.
	TempDirectory
	// Persistent writes through to the per-user cache directory.
	Persistent
)

// String returns the tier name.
func (t TierLocation) String() string {
	switch t {
	case InMemory:
		return "memory"
	case TempDirectory:
		return "temp"
	case Persistent:
		return "persistent"
	}
	return "unknown"
}

// Policy governs where and how long a value is cached. A zero TTL means the
// entry never expires.
type Policy struct {
	Location TierLocation
	TTL      time.Duration
}

// InMemoryPolicy caches in memory only, never expiring.
func InMemoryPolicy() Policy { return Policy{Location: InMemory} }

// TempDirectoryPolicy caches in memory and the temp directory, never expiring.
func TempDirectoryPolicy() Policy { return Policy{Location: TempDirectory} }

// NeverExpire caches in memory and the persistent directory, never expiring.
func NeverExpire() Policy { return Policy{Location: Persistent} }

// DefaultPolicy is the initial global policy: persistent with a 24h TTL.
func DefaultPolicy() Policy { return Policy{Location: Persistent, TTL: 24 * time.Hour} }

// ignoreCache is process-wide by design (it backs a --ignore-cache CLI flag).
// It is read on every GetOrSet invocation; no snapshotting.
var ignoreCache atomic.Bool

// SetIgnoreCache toggles the process-wide cache bypass. While set, every
// GetOrSet invokes its fetch and touches neither tier.
func SetIgnoreCache(v bool) { ignoreCache.Store(v) }

// IgnoreCache reports whether the process-wide cache bypass is set.
func IgnoreCache() bool { return ignoreCache.Load() }
