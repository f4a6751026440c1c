/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mtype

import (
	"bytes"

	"github.com/badu/mimesniff/token"
)

// Parse parses a MIME type string, per
// https://mimesniff.spec.whatwg.org/#parsing-a-mime-type. It returns
// ok == false if s has no valid type/subtype pair; this is the
// library's only failure mode (spec.md §7) and is not an error
// condition — parameter-level problems never fail the parse, they
// just drop the offending parameter (step 5h below).
func Parse(s []byte) (v Value, ok bool) {
	s = token.TrimHTTPWhitespace(s)
	if len(s) == 0 {
		return Value{}, false
	}

	slash := bytes.IndexByte(s, '/')
	if slash < 0 {
		return Value{}, false
	}
	typ := s[:slash]
	if len(typ) == 0 || !allHTTPToken(typ) {
		return Value{}, false
	}

	rest := s[slash+1:]
	semi := bytes.IndexByte(rest, ';')
	var subtype []byte
	var paramTail []byte
	if semi < 0 {
		subtype = token.TrimHTTPWhitespace(rest)
	} else {
		subtype = token.TrimHTTPWhitespace(rest[:semi])
		paramTail = rest[semi:]
	}
	if len(subtype) == 0 || !allHTTPToken(subtype) {
		return Value{}, false
	}

	v.typ = string(lowerASCII(typ))
	v.subtype = string(lowerASCII(subtype))

	if paramTail != nil {
		parseParams(paramTail, &v.params)
	}
	return v, true
}

// parseParams implements step 5 of the parse algorithm. input starts
// at the ';' before the first parameter.
func parseParams(input []byte, params *paramList) {
	pos := 0
	for pos < len(input) {
		// a. Advance past the current ';'.
		pos++ // input[pos] == ';' on entry to every iteration

		// b. Skip HTTP whitespace.
		for pos < len(input) && token.IsHTTPWhitespace(input[pos]) {
			pos++
		}

		// c. Collect code units not in {';','='} as name.
		nameStart := pos
		for pos < len(input) && input[pos] != ';' && input[pos] != '=' {
			pos++
		}
		name := input[nameStart:pos]

		// d. End of input: stop. Next is ';': contributes nothing.
		if pos >= len(input) {
			return
		}
		if input[pos] == ';' {
			continue
		}

		// e. Next is '=': advance past it.
		pos++ // skip '='

		var value []byte
		if pos < len(input) && input[pos] == '"' {
			// f. Parse a quoted string, then skip to the next ';'.
			var consumed int
			value, consumed = parseQuotedString(input[pos:])
			pos += consumed
			if next := bytes.IndexByte(input[pos:], ';'); next >= 0 {
				pos += next
			} else {
				pos = len(input)
			}
		} else {
			// g. Collect up to ';' or end; trim trailing whitespace.
			valueStart := pos
			for pos < len(input) && input[pos] != ';' {
				pos++
			}
			value = trimTrailingHTTPWhitespace(input[valueStart:pos])
			if len(value) == 0 {
				continue
			}
		}

		// h. Insert only if name and value are both well-formed and
		// name is not a duplicate.
		lname := lowerASCII(name)
		if len(lname) == 0 || !allHTTPToken(lname) {
			continue
		}
		if len(value) == 0 || !allQuotedStringToken(value) {
			continue
		}
		params.insertIfAbsent(string(lname), string(value))
	}
}

// parseQuotedString parses a quoted-string starting at input[0] ==
// '"'. It returns the decoded value and the number of bytes of input
// consumed (including the closing quote, if any).
func parseQuotedString(input []byte) (value []byte, consumed int) {
	var out []byte
	i := 1 // skip opening '"'
	for i < len(input) {
		b := input[i]
		switch b {
		case '\\':
			if i+1 < len(input) {
				out = append(out, input[i+1])
				i += 2
				continue
			}
			i++
		case '"':
			i++
			return out, i
		default:
			out = append(out, b)
			i++
		}
	}
	return out, i
}

func trimTrailingHTTPWhitespace(s []byte) []byte {
	n := len(s)
	for n > 0 && token.IsHTTPWhitespace(s[n-1]) {
		n--
	}
	return s[:n]
}

func allHTTPToken(s []byte) bool {
	for _, b := range s {
		if !token.IsHTTPToken(b) {
			return false
		}
	}
	return true
}

func allQuotedStringToken(s []byte) bool {
	for _, b := range s {
		if !token.IsHTTPQuotedStringToken(b) {
			return false
		}
	}
	return true
}

func lowerASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		out[i] = token.ASCIILower(b)
	}
	return out
}
