/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package sniff

import (
	"bytes"

	"github.com/badu/mimesniff/mtype"
	"github.com/badu/mimesniff/token"
)

// DistinguishTextOrBinary implements
// https://mimesniff.spec.whatwg.org/#distinguishing-a-binary-data-resource-from-a-text-resource.
// It's used on the Apache-bug path, where a server claimed text/plain
// but the caller wants to double check before trusting it.
func DistinguishTextOrBinary(header []byte) mtype.Value {
	if bytes.HasPrefix(header, bomUTF16BE) || bytes.HasPrefix(header, bomUTF16LE) || bytes.HasPrefix(header, bomUTF8) {
		return TextPlain
	}
	if token.ContainsBinaryDataByte(header) {
		return OctetStream
	}
	return TextPlain
}
