/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package sniff

import "github.com/badu/mimesniff/mtype"

// Borrowed terminal results returned directly by this package,
// outside the pattern engine's own tables.
var (
	TextHTML          = mtype.NewBorrowed("text", "html")
	TextXML           = mtype.NewBorrowed("text", "xml")
	TextPlain         = mtype.NewBorrowed("text", "plain")
	OctetStream       = mtype.NewBorrowed("application", "octet-stream")
	ApplicationPDF    = mtype.NewBorrowed("application", "pdf")
	ApplicationPS     = mtype.NewBorrowed("application", "postscript")
	TextVTT           = mtype.NewBorrowed("text", "vtt")
	TextCacheManifest = mtype.NewBorrowed("text", "cache-manifest")
)
