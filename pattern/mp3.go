/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

// mp3BitrateOdd is the MPEG1 (version & 1 == 1) Layer III bitrate
// table in kbps, indexed by the 4-bit bitrate field (index 0 is
// "free", index 15 — "bad" — is excluded by the caller before this
// table is consulted).
var mp3BitrateOdd = [15]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320}

// mp3BitrateEven is the MPEG2/2.5 (version & 1 == 0) Layer III
// bitrate table in kbps.
var mp3BitrateEven = [15]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160}

// mp3SampleRate is the 3-entry sample rate table in Hz, indexed by
// the 2-bit sample-rate field (index 3 is reserved and excluded by
// the caller).
var mp3SampleRate = [3]int{44100, 48000, 32000}

// mp3FrameFields reports whether input[s:] begins with a structurally
// valid MP3 frame header (sync word, layer, bitrate and sample-rate
// fields), and if so returns the frame's computed size in bytes. It
// does not require input to actually hold a full frame of that size —
// callers that need the whole frame to be present use mp3FrameHeader.
// The spec's "final-layer" check
// (https://mimesniff.spec.whatwg.org/, step 2 of the MP3 signature)
// is mathematically unsatisfiable for any valid layer value and is
// intentionally omitted here — see spec.md §9 and DESIGN.md.
func mp3FrameFields(input []byte, s int) (size int, ok bool) {
	if len(input)-s < 4 {
		return 0, false
	}
	b0, b1, b2 := input[s], input[s+1], input[s+2]

	if b0 != 0xFF {
		return 0, false
	}
	if b1&0xE0 != 0xE0 {
		return 0, false
	}
	layer := (b1 & 0x06) >> 1
	if layer == 0 {
		return 0, false
	}
	bitRateIdx := int(b2&0xF0) >> 4
	if bitRateIdx == 15 {
		return 0, false
	}
	sampleRateIdx := int(b2&0x0C) >> 2
	if sampleRateIdx == 3 {
		return 0, false
	}

	version := int(b1&0x18) >> 3
	padding := int(b2&0x02) >> 1

	var bitrate int
	if version&1 == 1 {
		bitrate = mp3BitrateOdd[bitRateIdx]
	} else {
		bitrate = mp3BitrateEven[bitRateIdx]
	}
	sampleRate := mp3SampleRate[sampleRateIdx]
	if bitrate == 0 || sampleRate == 0 {
		return 0, false
	}

	scale := 144
	if version == 1 {
		scale = 72
	}
	size = scale*1000*bitrate/sampleRate + padding
	if size < 4 {
		return 0, false
	}
	return size, true
}

// mp3FrameHeader is mp3FrameFields plus a check that input actually
// holds size bytes from s, i.e. a whole frame. MatchMP3 uses this for
// the first frame, whose body it's about to skip over, but not for
// the second, which only needs to re-validate as a header.
func mp3FrameHeader(input []byte, s int) (size int, ok bool) {
	size, ok = mp3FrameFields(input, s)
	if !ok || size > len(input)-s {
		return 0, false
	}
	return size, true
}

// MatchMP3 implements the no-ID3 MP3 signature: a structurally valid
// frame header at offset 0, followed by another structurally valid
// frame header at the offset the first header's computed size
// predicts. The second header only needs to re-validate in place; it
// must not be required to have room for a further frame after it.
func MatchMP3(input []byte) bool {
	size, ok := mp3FrameHeader(input, 0)
	if !ok {
		return false
	}
	_, ok = mp3FrameFields(input, size)
	return ok
}
