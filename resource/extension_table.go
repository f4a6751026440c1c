/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package resource

import (
	"path"
	"strings"

	"github.com/badu/mimesniff/mtype"
)

// defaultExtensionMIMETypes is a minimal, non-authoritative
// extension-to-MIME table. spec.md §1 explicitly scopes a real
// extension lookup table out of the core design ("a trivial static
// map; implementer may ship a default list but it is not part of the
// core design"); this one exists only so
// DetermineSuppliedMimeTypeFromPath has something to consult without
// pulling in an OS mime-type database.
var defaultExtensionMIMETypes = map[string]string{
	".css":  "text/css",
	".csv":  "text/csv",
	".gif":  "image/gif",
	".htm":  "text/html",
	".html": "text/html",
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".js":   "text/javascript",
	".json": "application/json",
	".mjs":  "text/javascript",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".txt":  "text/plain",
	".wasm": "application/wasm",
	".xml":  "application/xml",
	".zip":  "application/zip",
}

// DetermineSuppliedMimeTypeFromPath derives a Resource's supplied type
// from a file path's extension instead of a Content-Type header. It
// never sets CheckForApacheBug, which is an HTTP-header-only concept.
func DetermineSuppliedMimeTypeFromPath(filePath string) Resource {
	ext := strings.ToLower(path.Ext(filePath))
	candidate, ok := defaultExtensionMIMETypes[ext]
	if !ok {
		return Resource{}
	}
	v, ok := mtype.Parse([]byte(candidate))
	if !ok {
		return Resource{}
	}
	return Resource{SuppliedMimeType: v, HasSuppliedType: true}
}
