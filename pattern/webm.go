/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import "bytes"

var webmMagic = []byte("\x1A\x45\xDF\xA3")

// DecodeVint decodes an EBML variable-length integer starting at
// data[0]: the unary length of leading zero bits in the first byte
// gives the element's byte size (1..8); the first byte's remaining
// bits, followed by the raw bytes of any continuation bytes present
// in data, give its value. size is always computed from data[0]
// alone; value may be truncated if data is shorter than size (the
// WebM probe only needs size to skip past the vint).
func DecodeVint(data []byte) (value uint64, size int) {
	if len(data) == 0 {
		return 0, 0
	}
	b0 := data[0]
	mask := byte(0x80)
	size = 1
	for size < 8 && b0&mask == 0 {
		mask >>= 1
		size++
	}
	value = uint64(b0 &^ mask)
	for i := 1; i < size && i < len(data); i++ {
		value = value<<8 | uint64(data[i])
	}
	return value, size
}

// MatchWebM implements https://mimesniff.spec.whatwg.org/#signature-for-webm:
// an EBML header, followed somewhere in the first 38 bytes by a
// DocType element (ID 0x4282) whose vint-prefixed content, after
// skipping any leading zero padding, spells "webm".
func MatchWebM(input []byte) bool {
	if len(input) < 4 || !bytes.Equal(input[:4], webmMagic) {
		return false
	}
	limit := 38
	if limit > len(input)-2 {
		limit = len(input) - 2
	}
	for offset := 4; offset < limit; offset++ {
		if input[offset] != 0x42 || input[offset+1] != 0x82 {
			continue
		}
		pos := offset + 2
		if pos >= len(input) {
			continue
		}
		_, vlen := DecodeVint(input[pos:])
		if vlen == 0 {
			continue
		}
		pos += vlen
		for pos < len(input) && input[pos] == 0 {
			pos++
		}
		if pos+4 > len(input) {
			continue
		}
		if bytes.Equal(input[pos:pos+4], []byte("webm")) {
			return true
		}
	}
	return false
}
