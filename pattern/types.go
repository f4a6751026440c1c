/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package pattern implements the masked byte-pattern matcher and the
// static signature tables (images, audio/video, fonts, archives) plus
// the three structured container probes (MP4, WebM, MP3) described in
// https://mimesniff.spec.whatwg.org/#matching-a-mime-type-pattern.
//
// Every matcher here is total, allocation-free on the hot path, and
// returns a borrowed mtype.Value: the ~30 possible results are
// package-level constants, never reallocated per call.
package pattern

import "github.com/badu/mimesniff/token"

// ByteSet is a set of byte values a masked pattern is allowed to skip
// as a leading "ignored" prefix before the pattern itself begins. None
// of this package's own tables sets one; the sniff package's HTML and
// XML checks skip leading HTTP whitespace on their own.
type ByteSet = [256]bool

// httpWhitespaceIgnored is the ignored set made of the HTTP whitespace
// bytes, for patterns that may be preceded by HTTP whitespace.
var httpWhitespaceIgnored ByteSet

func init() {
	for b := 0; b < 256; b++ {
		if token.IsHTTPWhitespace(byte(b)) {
			httpWhitespaceIgnored[b] = true
		}
	}
}

// sig is one entry of a masked-byte-pattern table.
type sig struct {
	pattern []byte
	mask    []byte
	ignored ByteSet
}
