// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — the error taxonomy shared by every fallible operation in the
// library: a Kind enumeration, the Error value type carrying kind plus a
// human-readable message, and helpers for classifying foreign errors.

// Package sysinfo provides the core of a cross-platform system-information
// library: a three-tier typed-result cache manager (memory, temp directory,
// persistent user-cache directory) and the supporting primitives shared by
// the weather subpackage and platform query collaborators.
package sysinfo

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies an Error. Kinds are preserved unchanged across component
// boundaries unless a boundary explicitly reclassifies (codec failures become
// KindParseError, filesystem failures KindIOError).
type Kind int

const (
	KindAPIUnavailable Kind = iota
	KindInternalError
	KindInvalidArgument
	KindIOError
	KindNetworkError
	KindNotFound
	KindNotSupported
	KindOther
	KindOutOfMemory
	KindParseError
	KindPermissionDenied
	KindPlatformSpecific
	KindTimeout
	KindResourceExhausted
	KindCorruptedData
	KindUnavailableFeature
	KindConfigurationError
	KindPermissionRequired
)

var kindNames = map[Kind]string{
	KindAPIUnavailable:     "api unavailable",
	KindInternalError:      "internal error",
	KindInvalidArgument:    "invalid argument",
	KindIOError:            "io error",
	KindNetworkError:       "network error",
	KindNotFound:           "not found",
	KindNotSupported:       "not supported",
	KindOther:              "other",
	KindOutOfMemory:        "out of memory",
	KindParseError:         "parse error",
	KindPermissionDenied:   "permission denied",
	KindPlatformSpecific:   "platform specific",
	KindTimeout:            "timeout",
	KindResourceExhausted:  "resource exhausted",
	KindCorruptedData:      "corrupted data",
	KindUnavailableFeature: "unavailable feature",
	KindConfigurationError: "configuration error",
	KindPermissionRequired: "permission required",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "other"
}

// Error lets a bare Kind act as a match target for errors.Is.
func (k Kind) Error() string { return "sysinfo: " + k.String() }

// Error is the value type returned by every fallible operation in this
// module. Location is an optional source-site tag for diagnostics and is
// excluded from equality.
type Error struct {
	Kind     Kind
	Message  string
	Location string
}

// New creates an Error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Errorf creates an Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "sysinfo: " + e.Kind.String() + ": " + e.Message
}

// Is reports whether target matches this error. A bare Kind matches on kind
// alone; another *Error matches on kind and message, ignoring Location.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind && e.Message == t.Message
	default:
		return false
	}
}

// Locate records the caller's source site on the error and returns it:
//
//	return sysinfo.New(sysinfo.KindIOError, "cache dir unavailable").Locate()
func (e *Error) Locate() *Error {
	if _, file, line, ok := runtime.Caller(1); ok {
		e.Location = fmt.Sprintf("%s:%d", file, line)
	}
	return e
}

// KindOf extracts the Kind from err. Foreign (non-taxonomy) errors and nil
// report KindOther.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
