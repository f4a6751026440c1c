/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import "github.com/badu/mimesniff/mtype"

var (
	FontEOT        = mtype.NewBorrowed("application", "vnd.ms-fontobject")
	FontTrueType   = mtype.NewBorrowed("font", "ttf")
	FontOpenType   = mtype.NewBorrowed("font", "otf")
	FontCollection = mtype.NewBorrowed("font", "collection")
	FontWOFF       = mtype.NewBorrowed("font", "woff")
	FontWOFF2      = mtype.NewBorrowed("font", "woff2")
)

type fontSig struct {
	sig
	result mtype.Value
}

var fontSigs = []fontSig{
	{
		// 34 NUL bytes followed by "LP".
		masked(
			"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00LP",
			"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xFF\xFF",
		),
		FontEOT,
	},
	{exact("\x00\x01\x00\x00"), FontTrueType},
	{exact("OTTO"), FontOpenType},
	{exact("ttcf"), FontCollection},
	{exact("wOFF"), FontWOFF},
	{exact("wOF2"), FontWOFF2},
}

// MatchFont tries the font pattern table against input. The table is
// small enough that a linear scan beats building a dispatch index.
func MatchFont(input []byte) (mtype.Value, bool) {
	for _, s := range fontSigs {
		if s.match(input) {
			return s.result, true
		}
	}
	return mtype.Value{}, false
}
