/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package sniff

import (
	"bytes"

	"github.com/badu/mimesniff/mtype"
	"github.com/badu/mimesniff/pattern"
	"github.com/badu/mimesniff/token"
)

var (
	xmlDeclaration = []byte("<?xml")
	pdfSignature   = []byte("%PDF-")
	psSignature    = []byte("%!PS-Adobe-")
	bomUTF16BE     = []byte("\xFE\xFF")
	bomUTF16LE     = []byte("\xFF\xFE")
	bomUTF8        = []byte("\xEF\xBB\xBF")
)

func hasPrefixAfterWhitespace(input, pat []byte) bool {
	start := token.FirstNonWhitespace(input)
	return bytes.HasPrefix(input[start:], pat)
}

// IdentifyUnknownMimeType implements
// https://mimesniff.spec.whatwg.org/#identifying-a-resource-with-an-unknown-mime-type.
// sniffScriptable gates the HTML/XML/PDF scan, which the top-level
// algorithm disables whenever the caller's no-sniff flag is set.
func IdentifyUnknownMimeType(header []byte, sniffScriptable bool) mtype.Value {
	if sniffScriptable {
		for _, s := range htmlSigs {
			if s.match(header) {
				return TextHTML
			}
		}
		if hasPrefixAfterWhitespace(header, xmlDeclaration) {
			return TextXML
		}
		if bytes.HasPrefix(header, pdfSignature) {
			return ApplicationPDF
		}
	}

	if bytes.HasPrefix(header, psSignature) {
		return ApplicationPS
	}

	if bytes.HasPrefix(header, bomUTF16BE) || bytes.HasPrefix(header, bomUTF16LE) || bytes.HasPrefix(header, bomUTF8) {
		return TextPlain
	}

	if v, ok := pattern.MatchImage(header); ok {
		return v
	}
	if v, ok := pattern.MatchAudioOrVideo(header); ok {
		return v
	}
	if v, ok := pattern.MatchArchive(header); ok {
		return v
	}

	if !token.ContainsBinaryDataByte(header) {
		return TextPlain
	}
	return OctetStream
}
