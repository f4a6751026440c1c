/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

// Match implements the masked pattern-matching algorithm of
// https://mimesniff.spec.whatwg.org/#pattern-matching-algorithm: it
// skips the longest prefix of input whose bytes are all in ignored,
// then checks that the remainder has at least len(pat) bytes and that
// (input[i] & mask[i]) == pat[i] for every index. len(pat) must equal
// len(mask); Match returns false rather than panicking if they
// differ, since a malformed table entry is a caller bug, not an input
// one.
func Match(input, pat, mask []byte, ignored *ByteSet) bool {
	if len(pat) != len(mask) {
		return false
	}
	start := 0
	if ignored != nil {
		for start < len(input) && ignored[input[start]] {
			start++
		}
	}
	rest := input[start:]
	if len(rest) < len(pat) {
		return false
	}
	for i, pb := range pat {
		if rest[i]&mask[i] != pb {
			return false
		}
	}
	return true
}

func (s sig) match(input []byte) bool {
	return Match(input, s.pattern, s.mask, &s.ignored)
}

// exact is a convenience constructor for a sig whose mask is all
// 0xFF — a byte-for-byte literal match.
func exact(pattern string) sig {
	mask := make([]byte, len(pattern))
	for i := range mask {
		mask[i] = 0xFF
	}
	return sig{pattern: []byte(pattern), mask: mask}
}

// masked is a convenience constructor for a sig with an explicit
// mask, expressed as a same-length string (so call sites can write
// "\xFF\xFF\x00\x00"-style literals next to the pattern).
func masked(pattern, mask string) sig {
	return sig{pattern: []byte(pattern), mask: []byte(mask)}
}
