/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package mtype implements the in-memory MIME type value the rest of
// this module parses, serializes and sniffs: a type, a subtype, and
// an insertion-ordered parameter map, following
// https://mimesniff.spec.whatwg.org/#mime-type-representation.
package mtype

// Param is one name/value pair of a MIME type, in the order it was
// first inserted.
type Param struct {
	Name  string
	Value string
}

// Value is a parsed media type: "type/subtype;name=value;...". Once
// returned from Parse or from a pattern-engine match, a Value is
// immutable and safe to share across goroutines.
//
// A Value returned by the pattern engine is "borrowed": its type and
// subtype strings point at package-level constants and never need
// reallocating. A Value returned by Parse is "owned": its strings
// were allocated for this call. The distinction only matters for
// allocation accounting (Release is a no-op either way under Go's
// GC) and is exposed via Borrowed so callers pooling Values can tell
// the difference.
type Value struct {
	typ      string
	subtype  string
	params   paramList
	borrowed bool
}

// paramList is the ordered parameter map: entries in insertion order,
// plus an index for O(1) amortized Contains/Get on the common case of
// a handful of parameters.
type paramList struct {
	entries []Param
	index   map[string]int
}

// Empty reports whether v is the zero Value (no type, no subtype).
func (v Value) Empty() bool {
	return v.typ == "" && v.subtype == ""
}

// Type returns the ASCII-lowercase type, e.g. "text".
func (v Value) Type() string {
	return v.typ
}

// Subtype returns the ASCII-lowercase subtype, e.g. "html".
func (v Value) Subtype() string {
	return v.subtype
}

// Essence returns "type/subtype".
func (v Value) Essence() string {
	return v.typ + "/" + v.subtype
}

// Borrowed reports whether v's strings are shared, static storage
// (as returned by the pattern engine) rather than freshly allocated
// by a parse.
func (v Value) Borrowed() bool {
	return v.borrowed
}

// ParamCount returns the number of parameters, in insertion order.
func (v Value) ParamCount() int {
	return len(v.params.entries)
}

// ParamAt returns the name/value pair at position i, 0 <= i <
// ParamCount().
func (v Value) ParamAt(i int) Param {
	return v.params.entries[i]
}

// Param returns the value of the named parameter and whether it was
// present. Lookup is case-sensitive on name because names are always
// stored ASCII-lowercase by Parse.
func (v Value) Param(name string) (string, bool) {
	if v.params.index == nil {
		return "", false
	}
	i, ok := v.params.index[name]
	if !ok {
		return "", false
	}
	return v.params.entries[i].Value, true
}

// Release is a documented no-op: under Go's garbage collector there
// is no storage to free, but the method exists so code ported from
// the reference algorithm's owned/borrowed model has somewhere to put
// its cleanup call.
func (v Value) Release() {}

// Equal reports whether two Values have the same essence and the same
// parameters in the same order, irrespective of whether either is
// borrowed.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ || v.subtype != other.subtype {
		return false
	}
	if len(v.params.entries) != len(other.params.entries) {
		return false
	}
	for i, p := range v.params.entries {
		q := other.params.entries[i]
		if p.Name != q.Name || p.Value != q.Value {
			return false
		}
	}
	return true
}

func (p *paramList) contains(name string) bool {
	if p.index == nil {
		return false
	}
	_, ok := p.index[name]
	return ok
}

// insertIfAbsent inserts (name, value) only if name is not already
// present; first write wins. Reports whether it inserted.
func (p *paramList) insertIfAbsent(name, value string) bool {
	if p.contains(name) {
		return false
	}
	if p.index == nil {
		p.index = make(map[string]int)
	}
	p.index[name] = len(p.entries)
	p.entries = append(p.entries, Param{Name: name, Value: value})
	return true
}
