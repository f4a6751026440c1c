/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package sniff implements the top-level content-sniffing algorithm
// of https://mimesniff.spec.whatwg.org/#content-type-sniffing: the
// HTML/XML/PDF/PostScript/BOM scan used by identify-unknown, the
// text-or-binary distinction, and the decision tree that combines a
// Resource's supplied type and flags with the pattern engine's output,
// plus the eight context-specific variants (§8 of the standard).
package sniff

import "github.com/badu/mimesniff/token"

// htmlSig is one entry of the 17-pattern HTML tag table: a tag name,
// matched ASCII-case-insensitively and tolerant of leading HTTP
// whitespace, that must be followed by a tag-terminating byte.
type htmlSig []byte

func (h htmlSig) match(input []byte) bool {
	start := token.FirstNonWhitespace(input)
	rest := input[start:]
	if len(rest) < len(h)+1 {
		return false
	}
	for i, b := range h {
		db := rest[i]
		if 'A' <= b && b <= 'Z' {
			db &= 0xDF
		}
		if b != db {
			return false
		}
	}
	return token.IsTagTerminating(rest[len(h)])
}

// htmlSigs is the fixed 17-entry table from spec.md §4.6, scanned in
// declaration order.
var htmlSigs = []htmlSig{
	htmlSig("<!DOCTYPE HTML"),
	htmlSig("<HTML"),
	htmlSig("<HEAD"),
	htmlSig("<SCRIPT"),
	htmlSig("<IFRAME"),
	htmlSig("<H1"),
	htmlSig("<DIV"),
	htmlSig("<FONT"),
	htmlSig("<TABLE"),
	htmlSig("<A"),
	htmlSig("<STYLE"),
	htmlSig("<TITLE"),
	htmlSig("<B"),
	htmlSig("<BODY"),
	htmlSig("<BR"),
	htmlSig("<P"),
	htmlSig("<!--"),
}
