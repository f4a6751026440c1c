/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package resource bundles the sniff-time inputs spec.md §3 calls a
// "Resource": the supplied type (from an HTTP header or a file
// path), the Apache-bug and no-sniff flags, and the eventual computed
// type. A Resource is created once per sniff request and discarded
// afterward; it never outlives a single call into package sniff.
package resource

import "github.com/badu/mimesniff/mtype"

// Resource is the caller-supplied context a single sniff operates
// over.
type Resource struct {
	// SuppliedMimeType is the type derived from the Content-Type
	// header or the file path, if one was present and parsed
	// successfully. Only meaningful when HasSuppliedType is true.
	SuppliedMimeType mtype.Value

	// HasSuppliedType reports whether SuppliedMimeType is set.
	HasSuppliedType bool

	// CheckForApacheBug is set when the raw Content-Type header text
	// matched one of the four known Apache misconfiguration values,
	// independent of whether the header went on to parse.
	CheckForApacheBug bool

	// NoSniff is the caller's policy: when true and a supplied type is
	// present, sniffing returns it without examining the resource
	// header. With no supplied type the header is still examined, but
	// the HTML, XML and PDF checks are skipped.
	NoSniff bool

	// ComputedMimeType is filled in by package sniff.
	ComputedMimeType mtype.Value

	// HasComputedType reports whether ComputedMimeType is set.
	HasComputedType bool
}
