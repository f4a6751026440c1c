/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package token

// IsHTTPWhitespace reports whether b is one of the five HTTP
// whitespace bytes (tab, LF, FF, CR, space).
func IsHTTPWhitespace(b byte) bool {
	return whitespaceTable[b]
}

// IsHTTPToken reports whether b may appear in an HTTP token, as used
// by MIME type and subtype names and parameter names.
func IsHTTPToken(b byte) bool {
	return httpTokenTable[b]
}

// IsHTTPQuotedStringToken reports whether b may appear inside an
// HTTP quoted-string, as used by MIME parameter values.
func IsHTTPQuotedStringToken(b byte) bool {
	return quotedStringTokenTable[b]
}

// IsBinaryDataByte reports whether b is a byte that, per the
// mimesniff text-or-binary check, disqualifies a resource from
// text/plain.
func IsBinaryDataByte(b byte) bool {
	return binaryDataTable[b]
}

// IsTagTerminating reports whether b may follow an HTML tag name in
// the HTML sniffing signatures (a space or '>').
func IsTagTerminating(b byte) bool {
	return b == ' ' || b == '>'
}

// TrimHTTPWhitespace returns s with leading and trailing HTTP
// whitespace bytes removed.
func TrimHTTPWhitespace(s []byte) []byte {
	i := 0
	for i < len(s) && IsHTTPWhitespace(s[i]) {
		i++
	}
	n := len(s)
	for n > i && IsHTTPWhitespace(s[n-1]) {
		n--
	}
	return s[i:n]
}

// FirstNonWhitespace returns the index of the first byte in s that is
// not HTTP whitespace, or len(s) if there is none.
func FirstNonWhitespace(s []byte) int {
	i := 0
	for i < len(s) && IsHTTPWhitespace(s[i]) {
		i++
	}
	return i
}

// ContainsBinaryDataByte reports whether any byte in s is a
// binary-data byte.
func ContainsBinaryDataByte(s []byte) bool {
	for _, b := range s {
		if IsBinaryDataByte(b) {
			return true
		}
	}
	return false
}

// ASCIILower returns b folded to lower case if it is an ASCII letter,
// and b unchanged otherwise.
func ASCIILower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
