/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import "github.com/badu/mimesniff/mtype"

var (
	ArchiveGZIP = mtype.NewBorrowed("application", "x-gzip")
	ArchiveZIP  = mtype.NewBorrowed("application", "zip")
	ArchiveRAR  = mtype.NewBorrowed("application", "x-rar-compressed")
)

type archiveSig struct {
	sig
	result mtype.Value
}

var archiveSigs = []archiveSig{
	{exact("\x1F\x8B\x08"), ArchiveGZIP},
	{exact("PK\x03\x04"), ArchiveZIP},
	{exact("Rar!\x1A\x07\x00"), ArchiveRAR},
}

// MatchArchive tries the archive pattern table against input.
func MatchArchive(input []byte) (mtype.Value, bool) {
	for _, s := range archiveSigs {
		if s.match(input) {
			return s.result, true
		}
	}
	return mtype.Value{}, false
}
