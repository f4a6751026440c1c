/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package resource

import "github.com/badu/mimesniff/mtype"

// MaxHeaderLen is the maximum number of leading resource bytes the
// sniffing algorithm is allowed to look at (spec.md §3, §6).
const MaxHeaderLen = 1445

// apacheBugValues are the four exact Content-Type header texts that
// historically came from a misconfigured Apache serving binary
// content as text/plain; a match sets CheckForApacheBug regardless of
// whether the header goes on to parse.
var apacheBugValues = map[string]bool{
	"text/plain":                     true,
	"text/plain; charset=ISO-8859-1": true,
	"text/plain; charset=iso-8859-1": true,
	"text/plain; charset=UTF-8":      true,
}

// DetermineSuppliedMimeType derives a Resource from the Content-Type
// header values associated with a fetch (in header-arrival order; the
// last one is the one HTTP tells clients to trust). A caller with no
// Content-Type headers at all should pass nil or an empty slice,
// which yields a Resource with HasSuppliedType false and
// CheckForApacheBug false.
func DetermineSuppliedMimeType(contentTypeHeaders []string) Resource {
	if len(contentTypeHeaders) == 0 {
		return Resource{}
	}
	candidate := contentTypeHeaders[len(contentTypeHeaders)-1]

	var r Resource
	r.CheckForApacheBug = apacheBugValues[candidate]

	if v, ok := mtype.Parse([]byte(candidate)); ok {
		r.SuppliedMimeType = v
		r.HasSuppliedType = true
	}
	return r
}

// ReadResourceHeader returns the prefix of body the sniffing
// algorithm is allowed to consult: min(len(body), MaxHeaderLen) bytes.
func ReadResourceHeader(body []byte) []byte {
	if len(body) > MaxHeaderLen {
		return body[:MaxHeaderLen]
	}
	return body
}
