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

// InBrowsingContext is identical to the top-level algorithm; browsing
// is the context MimeType was written for in the first place.
func InBrowsingContext(r *resource.Resource, header []byte) (mtype.Value, bool) {
	return MimeType(r, header)
}

// InImageContext implements spec.md §4.6's image context variant: a
// supplied XML type is never overridden, an image pattern match wins
// over everything else, and otherwise the supplied type (possibly the
// absent Value) passes through unchanged.
func InImageContext(supplied mtype.Value, hasSupplied bool, header []byte) mtype.Value {
	if hasSupplied && supplied.IsXML() {
		return supplied
	}
	if v, ok := pattern.MatchImage(header); ok {
		return v
	}
	return supplied
}

// InAudioOrVideoContext implements spec.md §4.6's audio-or-video
// context variant.
func InAudioOrVideoContext(supplied mtype.Value, hasSupplied bool, header []byte) mtype.Value {
	if hasSupplied && supplied.IsXML() {
		return supplied
	}
	if v, ok := pattern.MatchAudioOrVideo(header); ok {
		return v
	}
	return supplied
}

// InFontContext implements spec.md §4.6's font context variant.
func InFontContext(supplied mtype.Value, hasSupplied bool, header []byte) mtype.Value {
	if hasSupplied && supplied.IsXML() {
		return supplied
	}
	if v, ok := pattern.MatchFont(header); ok {
		return v
	}
	return supplied
}

// InPluginContext implements spec.md §4.6's plugin context variant:
// an absent supplied type defaults to application/octet-stream, no
// bytes are ever inspected.
func InPluginContext(supplied mtype.Value, hasSupplied bool) mtype.Value {
	if !hasSupplied {
		return OctetStream
	}
	return supplied
}

// InStyleContext never sniffs; the supplied type, or its absence, is
// the answer.
func InStyleContext(supplied mtype.Value, hasSupplied bool) (mtype.Value, bool) {
	return supplied, hasSupplied
}

// InScriptContext never sniffs; the supplied type, or its absence, is
// the answer.
func InScriptContext(supplied mtype.Value, hasSupplied bool) (mtype.Value, bool) {
	return supplied, hasSupplied
}

// InTextTrackContext always returns text/vtt regardless of any
// supplied type, per spec.md §4.6.
func InTextTrackContext() mtype.Value {
	return TextVTT
}

// InCacheManifestContext always returns text/cache-manifest regardless
// of any supplied type, per spec.md §4.6.
func InCacheManifestContext() mtype.Value {
	return TextCacheManifest
}
