/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import "github.com/badu/mimesniff/mtype"

// Borrowed results for the image pattern table.
var (
	ImageXIcon = mtype.NewBorrowed("image", "x-icon")
	ImageBMP   = mtype.NewBorrowed("image", "bmp")
	ImageGIF   = mtype.NewBorrowed("image", "gif")
	ImageWebP  = mtype.NewBorrowed("image", "webp")
	ImagePNG   = mtype.NewBorrowed("image", "png")
	ImageJPEG  = mtype.NewBorrowed("image", "jpeg")
)

type imageSig struct {
	sig
	result mtype.Value
}

// imageSigs is the 8-entry image pattern table, declaration order
// doubling as first-match-wins priority.
var imageSigs = []imageSig{
	{exact("\x00\x00\x01\x00"), ImageXIcon}, // Windows ICO
	{exact("\x00\x00\x02\x00"), ImageXIcon}, // Windows CUR
	{exact("BM"), ImageBMP},
	{exact("GIF87a"), ImageGIF},
	{exact("GIF89a"), ImageGIF},
	{masked("RIFF\x00\x00\x00\x00WEBPVP", "\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF\xFF\xFF"), ImageWebP},
	{exact("\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"), ImagePNG},
	{exact("\xFF\xD8\xFF"), ImageJPEG},
}

// imageDispatch maps a first input byte to the indices in imageSigs
// worth trying, giving O(1) average-case rejection instead of
// scanning all 8 patterns for every call.
var imageDispatch [256][]int

func init() {
	for i, s := range imageSigs {
		if len(s.pattern) == 0 {
			continue
		}
		b := s.pattern[0]
		imageDispatch[b] = append(imageDispatch[b], i)
	}
}

// MatchImage tries the image pattern table against input and reports
// the first match.
func MatchImage(input []byte) (mtype.Value, bool) {
	if len(input) == 0 {
		return mtype.Value{}, false
	}
	for _, i := range imageDispatch[input[0]] {
		s := imageSigs[i]
		if s.match(input) {
			return s.result, true
		}
	}
	return mtype.Value{}, false
}
