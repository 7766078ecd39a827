// Package metrics provides the MetricsRecorder interface and a noop implementation.
package metrics

import "time"

// MetricsRecorder is the interface for recording cache operational metrics.
// Tier is one of "memory", "temp", "persistent".
type MetricsRecorder interface {
	RecordHit(tier, key string)
	RecordMiss(tier, key string)
	RecordFetch(key string, d time.Duration)
	RecordError(op string)
}

// Noop is a MetricsRecorder that discards all data.
type Noop struct{}

func (Noop) RecordHit(tier, key string)              {}
func (Noop) RecordMiss(tier, key string)             {}
func (Noop) RecordFetch(key string, d time.Duration) {}
func (Noop) RecordError(op string)                   {}
