/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package mimesniff implements the WHATWG MIME Sniffing Standard:
// parsing and serializing MIME type values, and determining the
// effective MIME type of a resource from its supplied Content-Type,
// sniffing flags, and leading bytes.
//
// The real work lives in the mtype, resource, pattern, and sniff
// subpackages; this package re-exports the handful of entry points
// most callers need so that the common case doesn't require pulling
// in all four.
package mimesniff

import (
	"github.com/badu/mimesniff/mtype"
	"github.com/badu/mimesniff/resource"
	"github.com/badu/mimesniff/sniff"
)

// MimeValue is a parsed MIME type: a type, a subtype, and an
// insertion-ordered list of parameters.
type MimeValue = mtype.Value

// Resource bundles a supplied Content-Type together with the flags
// that steer the top-level sniffing algorithm.
type Resource = resource.Resource

// Parse parses an isomorphic-decoded Content-Type field value into a
// MimeValue. ok is false when s isn't a valid MIME type string.
func Parse(s []byte) (v MimeValue, ok bool) {
	return mtype.Parse(s)
}

// Serialize renders v back into its canonical byte-sequence form.
func Serialize(v MimeValue) []byte {
	return v.Serialize()
}

// DetermineSuppliedMimeType derives a Resource's supplied type and
// Apache-bug flag from a list of Content-Type header values, taking
// the last header as the candidate per HTTP's multiple-header rule.
func DetermineSuppliedMimeType(contentTypeHeaders []string) Resource {
	return resource.DetermineSuppliedMimeType(contentTypeHeaders)
}

// ReadResourceHeader returns the prefix of body used by the sniffing
// algorithm, capped at resource.MaxHeaderLen bytes.
func ReadResourceHeader(body []byte) []byte {
	return resource.ReadResourceHeader(body)
}

// Sniff runs the top-level sniffing algorithm for a resource in a
// browsing context: it combines r's supplied type and flags with a
// pattern-match over header, the resource's leading bytes. r's
// ComputedMimeType/HasComputedType fields are filled in as a side
// effect, mirroring spec.md §3.
func Sniff(r *Resource, header []byte) (MimeValue, bool) {
	return sniff.MimeType(r, header)
}
