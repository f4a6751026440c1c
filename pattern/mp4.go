/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import (
	"bytes"
	"encoding/binary"
)

var (
	mp4ftype = []byte("ftyp")
	mp4brand = []byte("mp4")
)

// MatchMP4 implements https://mimesniff.spec.whatwg.org/#signature-for-mp4:
// read a big-endian 32-bit box size, require an "ftyp" box, then
// either an "mp4" major brand at bytes 8..11 or an "mp4" brand
// anywhere in the compatible-brands list that follows, scanned in
// 4-byte steps starting at offset 16 (byte 12..15, the major brand's
// version number, is skipped by starting the scan past it).
func MatchMP4(input []byte) bool {
	if len(input) < 12 {
		return false
	}
	boxSize := int(binary.BigEndian.Uint32(input[0:4]))
	if len(input) < boxSize || boxSize%4 != 0 {
		return false
	}
	if !bytes.Equal(input[4:8], mp4ftype) {
		return false
	}
	if bytes.Equal(input[8:11], mp4brand) {
		return true
	}
	for st := 16; st+3 <= boxSize && st+3 <= len(input); st += 4 {
		if bytes.Equal(input[st:st+3], mp4brand) {
			return true
		}
	}
	return false
}
