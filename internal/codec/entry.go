// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// entry.go — the Entry envelope: payload bytes plus an optional absolute
// expiry. The encoded envelope is the unit stored in the memory tier and
// written verbatim to cache files, so both tiers share identical bytes.

package codec

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when an entry buffer cannot be decoded. The cache
// manager reclassifies it as a parse error and treats the entry as a miss.
var ErrMalformed = errors.New("codec: malformed cache entry")

// Entry is the serialized envelope around every cached value. Expires is
// UNIX epoch seconds; nil means the entry never expires and is distinct from
// an expiry of zero.
type Entry struct {
	Data    []byte `msgpack:"d" json:"d"`
	Expires *int64 `msgpack:"e" json:"e"`
}

// Fresh reports whether the entry is still live at the given epoch second.
// An entry with no expiry is always fresh; otherwise it goes stale the
// moment now reaches Expires.
func (e Entry) Fresh(now int64) bool {
	return e.Expires == nil || now < *e.Expires
}

// EncodeEntry serializes v and wraps it in an Entry with the given expiry,
// returning the encoded envelope.
func EncodeEntry(c Codec, v any, expires *int64) ([]byte, error) {
	payload, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	buf, err := c.Marshal(Entry{Data: payload, Expires: expires})
	if err != nil {
		return nil, fmt.Errorf("encode entry: %w", err)
	}
	return buf, nil
}

// DecodeEntry parses an encoded envelope. Empty and truncated buffers fail
// with ErrMalformed rather than a not-found condition.
func DecodeEntry(c Codec, buf []byte) (Entry, error) {
	if len(buf) == 0 {
		return Entry{}, ErrMalformed
	}
	var e Entry
	if err := c.Unmarshal(buf, &e); err != nil {
		return Entry{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return e, nil
}
