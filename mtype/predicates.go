/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mtype

import "strings"

// fontEssences is the fixed set of application/font-* (and related)
// essences that count as a font type even though their top-level
// type isn't "font". See
// https://mimesniff.spec.whatwg.org/#font-type.
var fontEssences = map[string]bool{
	"application/font-cff":         true,
	"application/font-off":         true,
	"application/font-sfnt":        true,
	"application/font-ttf":         true,
	"application/font-woff":        true,
	"application/vnd.ms-fontobject": true,
	"application/vnd.ms-opentype":  true,
}

// archiveEssences is the fixed set of essences counted as an
// archive type. See https://mimesniff.spec.whatwg.org/#archive-type.
var archiveEssences = map[string]bool{
	"application/x-rar-compressed": true,
	"application/zip":              true,
	"application/x-gzip":           true,
}

// javascriptEssences is the WHATWG-canonical set of 16 JavaScript
// MIME type essences, compared case-insensitively. See
// https://mimesniff.spec.whatwg.org/#javascript-mime-type.
var javascriptEssences = map[string]bool{
	"application/ecmascript":   true,
	"application/javascript":   true,
	"application/x-ecmascript": true,
	"application/x-javascript": true,
	"text/ecmascript":          true,
	"text/javascript":          true,
	"text/javascript1.0":       true,
	"text/javascript1.1":       true,
	"text/javascript1.2":       true,
	"text/javascript1.3":       true,
	"text/javascript1.4":       true,
	"text/javascript1.5":       true,
	"text/jscript":             true,
	"text/livescript":          true,
	"text/x-ecmascript":        true,
	"text/x-javascript":        true,
}

// jsonEssences is the fixed pair of bare JSON essences; subtypes
// ending in "+json" count too (IsJSON below).
var jsonEssences = map[string]bool{
	"application/json": true,
	"text/json":        true,
}

// xmlEssences is the fixed pair of bare XML essences; subtypes
// ending in "+xml" count too (IsXML below).
var xmlEssences = map[string]bool{
	"text/xml":        true,
	"application/xml": true,
}

// EssenceEquals reports whether v's essence is exactly typ+"/"+subtype,
// without allocating a concatenated string.
func (v Value) EssenceEquals(typ, subtype string) bool {
	return v.typ == typ && v.subtype == subtype
}

// SubtypeEndsWith reports whether v's subtype ends with suffix, e.g.
// "+xml", "+json", "+zip".
func (v Value) SubtypeEndsWith(suffix string) bool {
	return strings.HasSuffix(v.subtype, suffix)
}

// IsImage reports whether v is an image type.
func (v Value) IsImage() bool {
	return v.typ == "image"
}

// IsAudioOrVideo reports whether v is an audio or video type,
// including the application/ogg alias.
func (v Value) IsAudioOrVideo() bool {
	return v.typ == "audio" || v.typ == "video" || v.EssenceEquals("application", "ogg")
}

// IsFont reports whether v is a font type.
func (v Value) IsFont() bool {
	return v.typ == "font" || fontEssences[v.Essence()]
}

// IsZipBased reports whether v is a ZIP-based type.
func (v Value) IsZipBased() bool {
	return v.SubtypeEndsWith("+zip") || v.EssenceEquals("application", "zip")
}

// IsArchive reports whether v is one of the fixed archive essences.
func (v Value) IsArchive() bool {
	return archiveEssences[v.Essence()]
}

// IsXML reports whether v is an XML type.
func (v Value) IsXML() bool {
	return v.SubtypeEndsWith("+xml") || xmlEssences[v.Essence()]
}

// IsHTML reports whether v is text/html.
func (v Value) IsHTML() bool {
	return v.EssenceEquals("text", "html")
}

// IsScriptable reports whether fetching v's content and treating it
// as text could execute script in a browsing context.
func (v Value) IsScriptable() bool {
	return v.IsXML() || v.IsHTML() || v.EssenceEquals("application", "pdf")
}

// IsJavaScript reports whether v's essence, folded to ASCII lower
// case, is one of the 16 canonical JavaScript MIME types.
func (v Value) IsJavaScript() bool {
	return javascriptEssences[strings.ToLower(v.Essence())]
}

// IsJSON reports whether v is a JSON type.
func (v Value) IsJSON() bool {
	return v.SubtypeEndsWith("+json") || jsonEssences[v.Essence()]
}
