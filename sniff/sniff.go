/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package sniff

import (
	"github.com/badu/mimesniff/mtype"
	"github.com/badu/mimesniff/pattern"
	"github.com/badu/mimesniff/resource"
)

// unsniffableEssences are the placeholder supplied types that mean
// "no real information", forcing the unknown-identification path
// exactly as if no Content-Type header had been present at all.
var unsniffableEssences = map[string]bool{
	"unknown/unknown":     true,
	"application/unknown": true,
	"*/*":                 true,
}

// MimeType implements the top-level
// https://mimesniff.spec.whatwg.org/#sniffing-in-a-browsing-context
// algorithm (spec.md §4.6). Every path returns ok == true: a Resource
// with no supplied type always goes through the unknown-identification
// path (step 2 below), with no-sniff only turning off its HTML/XML/PDF
// checks, and that path always yields a Value. As spec.md §3
// describes, computed_mime_type is a field the algorithm fills in on
// the Resource itself, so MimeType takes r by pointer and records its
// result into r.ComputedMimeType/r.HasComputedType before returning
// it, for callers that hold onto the Resource afterward.
func MimeType(r *resource.Resource, header []byte) (mtype.Value, bool) {
	v, ok := mimeType(r, header)
	r.ComputedMimeType = v
	r.HasComputedType = ok
	return v, ok
}

func mimeType(r *resource.Resource, header []byte) (mtype.Value, bool) {
	// 1. Never let sniffing override a supplied XML or HTML type.
	if r.HasSuppliedType && (r.SuppliedMimeType.IsXML() || r.SuppliedMimeType.IsHTML()) {
		return r.SuppliedMimeType, true
	}

	// 2. No real information in the supplied type: sniff fully.
	if !r.HasSuppliedType || unsniffableEssences[r.SuppliedMimeType.Essence()] {
		return IdentifyUnknownMimeType(header, !r.NoSniff), true
	}

	// 3. Caller asked us not to look at the bytes at all.
	if r.NoSniff {
		return r.SuppliedMimeType, true
	}

	// 4. Apache misserving binary content as text/plain.
	if r.CheckForApacheBug {
		return DistinguishTextOrBinary(header), true
	}

	// 5. Supplied image type: confirm or fall through.
	if r.SuppliedMimeType.IsImage() {
		if v, ok := pattern.MatchImage(header); ok {
			return v, true
		}
	}

	// 6. Supplied audio/video type: confirm or fall through.
	if r.SuppliedMimeType.IsAudioOrVideo() {
		if v, ok := pattern.MatchAudioOrVideo(header); ok {
			return v, true
		}
	}

	// 7. Trust the supplied type.
	return r.SuppliedMimeType, true
}
