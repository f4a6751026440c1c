/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package token classifies single bytes against the code-unit classes
// the MIME grammar and the sniffing algorithm are phrased over: HTTP
// whitespace, HTTP token, HTTP quoted-string token, binary-data byte
// and tag-terminating byte.
package token

// httpTokenTable is a copy of net/http/lex.go's isTokenTable, indexed
// by byte value. See https://httpwg.github.io/specs/rfc7230.html#rule.token.separators
var httpTokenTable = [256]bool{
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true,
	'8': true, '9': true,

	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true,
	'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true, 'p': true,
	'q': true, 'r': true, 's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,

	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true,
	'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true,
	'Q': true, 'R': true, 'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
	'Y': true, 'Z': true,

	'!':  true,
	'#':  true,
	'$':  true,
	'%':  true,
	'&':  true,
	'\'': true,
	'*':  true,
	'+':  true,
	'-':  true,
	'.':  true,
	'^':  true,
	'_':  true,
	'`':  true,
	'|':  true,
	'~':  true,
}

// quotedStringTokenTable and whitespaceTable and binaryDataTable are
// built in init() since they're cheaper to express as ranges than as
// struck-out literals; httpTokenTable above stays a literal because
// the teacher's isTokenTable already is one and there's no win to
// rewriting it.
var (
	quotedStringTokenTable [256]bool
	whitespaceTable        [256]bool
	binaryDataTable        [256]bool
)

func init() {
	// HTTP quoted-string token code points: 0x09, 0x20..=0x7E, 0x80..=0xFF.
	quotedStringTokenTable[0x09] = true
	for b := 0x20; b <= 0x7E; b++ {
		quotedStringTokenTable[b] = true
	}
	for b := 0x80; b <= 0xFF; b++ {
		quotedStringTokenTable[b] = true
	}

	for _, b := range []byte{0x09, 0x0A, 0x0C, 0x0D, 0x20} {
		whitespaceTable[b] = true
	}

	// Binary-data byte: 0x00..=0x08, 0x0B, 0x0E..=0x1A, 0x1C..=0x1F.
	for b := 0x00; b <= 0x08; b++ {
		binaryDataTable[b] = true
	}
	binaryDataTable[0x0B] = true
	for b := 0x0E; b <= 0x1A; b++ {
		binaryDataTable[b] = true
	}
	for b := 0x1C; b <= 0x1F; b++ {
		binaryDataTable[b] = true
	}
}
