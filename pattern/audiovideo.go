/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import "github.com/badu/mimesniff/mtype"

var (
	AudioAIFF = mtype.NewBorrowed("audio", "aiff")
	AudioMPEG = mtype.NewBorrowed("audio", "mpeg")
	AudioOgg  = mtype.NewBorrowed("application", "ogg")
	AudioMIDI = mtype.NewBorrowed("audio", "midi")
	VideoAVI  = mtype.NewBorrowed("video", "avi")
	AudioWave = mtype.NewBorrowed("audio", "wave")
	VideoMP4  = mtype.NewBorrowed("video", "mp4")
	VideoWebM = mtype.NewBorrowed("video", "webm")
)

type avSig struct {
	sig
	result mtype.Value
}

// avSigs is the 6-entry "simple pattern" half of the audio/video
// group; the MP4, WebM and MP3 container probes run after these, in
// MatchAudioOrVideo.
var avSigs = []avSig{
	{masked("FORM\x00\x00\x00\x00AIFF", "\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"), AudioAIFF},
	{masked("ID3", "\xFF\xFF\xFF"), AudioMPEG},
	{masked("OggS\x00", "\xFF\xFF\xFF\xFF\xFF"), AudioOgg},
	{masked("MThd\x00\x00\x00\x06", "\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF"), AudioMIDI},
	{masked("RIFF\x00\x00\x00\x00AVI ", "\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"), VideoAVI},
	{masked("RIFF\x00\x00\x00\x00WAVE", "\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"), AudioWave},
}

// MatchAudioOrVideo tries the six simple audio/video patterns, then
// the MP4, WebM and MP3 container probes, in that order.
func MatchAudioOrVideo(input []byte) (mtype.Value, bool) {
	for _, s := range avSigs {
		if s.match(input) {
			return s.result, true
		}
	}
	if MatchMP4(input) {
		return VideoMP4, true
	}
	if MatchWebM(input) {
		return VideoWebM, true
	}
	if MatchMP3(input) {
		return AudioMPEG, true
	}
	return mtype.Value{}, false
}
