/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mtype

// New constructs an owned Value from an already-normalized type and
// subtype (both assumed lower-case HTTP tokens) with no parameters.
// It's the constructor callers outside Parse use to build an owned
// Value by hand; it does not validate its arguments, so
// callers must only pass string literals or values already known to
// satisfy the MIME value invariants (spec.md §3).
func New(typ, subtype string) Value {
	return Value{typ: typ, subtype: subtype}
}

// NewWithParams is New plus an ordered parameter list, first write
// wins on duplicate names exactly as Parse would resolve them.
func NewWithParams(typ, subtype string, params ...Param) Value {
	v := Value{typ: typ, subtype: subtype}
	for _, p := range params {
		v.params.insertIfAbsent(p.Name, p.Value)
	}
	return v
}

// NewBorrowed is New, additionally marking the Value as borrowed
// (pointing at static constants rather than freshly-allocated
// strings). Used by the pattern engine's constant table.
func NewBorrowed(typ, subtype string) Value {
	return Value{typ: typ, subtype: subtype, borrowed: true}
}

// IsValidMimeTypeString reports whether s parses successfully. A
// trailing ';' with no parameter is valid: it parses, and the empty
// parameter is silently skipped (spec.md §9, "Conformance validator
// semantics" — this helper must not be stricter than that).
func IsValidMimeTypeString(s []byte) bool {
	_, ok := Parse(s)
	return ok
}

// IsValidMimeTypeWithNoParameters reports whether s contains no ';'
// and parses successfully.
func IsValidMimeTypeWithNoParameters(s []byte) bool {
	for _, b := range s {
		if b == ';' {
			return false
		}
	}
	return IsValidMimeTypeString(s)
}
