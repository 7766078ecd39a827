// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// keys.go — cache-key validation and the xxhash fingerprint helper used to
// derive filesystem-safe keys from arbitrary inputs.

package sysinfo

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// unsafeKeyChars are rejected because keys double as file names on the
// temp and persistent tiers.
const unsafeKeyChars = `/\:*?"<>|`

// ValidateKey reports whether key is usable as a cache key: non-empty and
// free of filesystem-unsafe characters. Any further sanitization is the
// caller's burden.
func ValidateKey(key string) error {
	if key == "" {
		return New(KindInvalidArgument, "cache key must not be empty")
	}
	if strings.ContainsAny(key, unsafeKeyChars) {
		return Errorf(KindInvalidArgument, "cache key %q contains filesystem-unsafe characters", key)
	}
	return nil
}

// Fingerprint hashes the given parts into a short filesystem-safe hex string.
// Parts are length-delimited so ("ab","c") and ("a","bc") never collide.
// Typical use is building cache keys from a computation's inputs:
//
//	key := "weather_" + sysinfo.Fingerprint(provider, location, units)
func Fingerprint(parts ...string) string {
	h := xxhash.New()
	for _, p := range parts {
		_, _ = h.WriteString(strconv.Itoa(len(p)))
		_, _ = h.WriteString(p)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
