/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mtype

// Minimize implements https://mimesniff.spec.whatwg.org/#minimize-a-supported-mime-type,
// used by preload-style callers that only care about a handful of
// canonical forms. The spec's "return the empty string if this is
// not supported" branch is unreachable under this library's default
// policy (spec.md §9 Open Question 2: the full group predicates are
// always "supported"), so it is omitted rather than coded as dead
// code.
func Minimize(v Value) []byte {
	switch {
	case v.IsJavaScript():
		return []byte("text/javascript")
	case v.IsJSON():
		return []byte("application/json")
	case v.EssenceEquals("image", "svg+xml"):
		return []byte("image/svg+xml")
	case v.IsXML():
		return []byte("application/xml")
	default:
		return []byte(v.Essence())
	}
}
