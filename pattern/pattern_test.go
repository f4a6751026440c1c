/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBasic(t *testing.T) {
	assert.True(t, Match([]byte("BM\x00\x00"), []byte("BM"), []byte("\xFF\xFF"), nil))
	assert.False(t, Match([]byte("XM\x00\x00"), []byte("BM"), []byte("\xFF\xFF"), nil))
	assert.False(t, Match([]byte("B"), []byte("BM"), []byte("\xFF\xFF"), nil))
}

func TestMatchIgnoredPrefix(t *testing.T) {
	ignored := httpWhitespaceIgnored
	assert.True(t, Match([]byte("  \t<html>"), []byte("<html"), []byte("\xFF\xFF\xFF\xFF\xFF"), &ignored))
}

func TestMatchMaskWildcard(t *testing.T) {
	// WebP: bytes 4-7 are wildcarded.
	data := []byte("RIFFxxxxWEBPVP8 ")
	assert.True(t, Match(data, []byte("RIFF\x00\x00\x00\x00WEBPVP"), []byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF\xFF\xFF"), nil))
}

func TestMatchZeroLengthInput(t *testing.T) {
	assert.False(t, Match(nil, []byte("x"), []byte("\xFF"), nil))
}

func TestMatchImage(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"ico", []byte("\x00\x00\x01\x00rest"), "image/x-icon"},
		{"cur", []byte("\x00\x00\x02\x00rest"), "image/x-icon"},
		{"bmp", []byte("BMrest"), "image/bmp"},
		{"gif87a", []byte("GIF87a..."), "image/gif"},
		{"gif89a", []byte("GIF89a..."), "image/gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "image/webp"},
		{"png", []byte("\x89PNG\x0D\x0A\x1A\x0A"), "image/png"},
		{"jpeg", []byte("\xFF\xD8\xFF\xE0"), "image/jpeg"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, ok := MatchImage(c.data)
			require.True(t, ok)
			assert.Equal(t, c.want, v.Essence())
		})
	}
}

func TestMatchImageNoMatch(t *testing.T) {
	_, ok := MatchImage([]byte("not an image"))
	assert.False(t, ok)
}

func TestMatchFont(t *testing.T) {
	v, ok := MatchFont([]byte("\x00\x01\x00\x00rest"))
	require.True(t, ok)
	assert.Equal(t, "font/ttf", v.Essence())

	v, ok = MatchFont([]byte("wOFF...."))
	require.True(t, ok)
	assert.Equal(t, "font/woff", v.Essence())

	eot := make([]byte, 36)
	eot[34], eot[35] = 'L', 'P'
	v, ok = MatchFont(eot)
	require.True(t, ok)
	assert.Equal(t, "application/vnd.ms-fontobject", v.Essence())
}

func TestMatchArchive(t *testing.T) {
	v, ok := MatchArchive([]byte("PK\x03\x04rest"))
	require.True(t, ok)
	assert.Equal(t, "application/zip", v.Essence())

	v, ok = MatchArchive([]byte("\x1F\x8B\x08rest"))
	require.True(t, ok)
	assert.Equal(t, "application/x-gzip", v.Essence())

	v, ok = MatchArchive([]byte("Rar!\x1A\x07\x00rest"))
	require.True(t, ok)
	assert.Equal(t, "application/x-rar-compressed", v.Essence())
}

func TestMatchAudioOrVideoSimplePatterns(t *testing.T) {
	v, ok := MatchAudioOrVideo([]byte("MThd\x00\x00\x00\x06\x00\x01"))
	require.True(t, ok)
	assert.Equal(t, "audio/midi", v.Essence())

	v, ok = MatchAudioOrVideo([]byte("ID3\x03\x00\x00\x00\x00\x0f"))
	require.True(t, ok)
	assert.Equal(t, "audio/mpeg", v.Essence())

	v, ok = MatchAudioOrVideo([]byte("OggS\x00\x02\x00\x00"))
	require.True(t, ok)
	assert.Equal(t, "application/ogg", v.Essence())
}

func TestMatchAudioOrVideoMustNotMatchOgg(t *testing.T) {
	_, ok := MatchAudioOrVideo([]byte("owow\x00"))
	assert.False(t, ok)
	_, ok = MatchAudioOrVideo([]byte("oooS\x00"))
	assert.False(t, ok)
	_, ok = MatchAudioOrVideo([]byte("oggS\x00"))
	assert.False(t, ok)
}

func TestMatchMP4(t *testing.T) {
	data := []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom<\x06t\xbfmdat")
	assert.True(t, MatchMP4(data))

	v, ok := MatchAudioOrVideo(data)
	require.True(t, ok)
	assert.Equal(t, "video/mp4", v.Essence())
}

func TestMatchMP4RejectsTooShort(t *testing.T) {
	assert.False(t, MatchMP4([]byte("short")))
}

func TestMatchMP4RejectsBadBoxSize(t *testing.T) {
	// boxSize = 5, not a multiple of 4.
	data := []byte("\x00\x00\x00\x05ftypmp42xxxxxxxxxxxx")
	assert.False(t, MatchMP4(data))
}

func TestDecodeVint(t *testing.T) {
	// 0x84 = 1000 0100: leading 1 bit => size 1, value 4.
	v, size := DecodeVint([]byte{0x84})
	assert.Equal(t, 1, size)
	assert.Equal(t, uint64(4), v)

	// 0x41 0x23 = 0100 0001 0010 0011: size 2.
	v, size = DecodeVint([]byte{0x41, 0x23})
	assert.Equal(t, 2, size)
	assert.Equal(t, uint64(0x0123), v)
}

func TestMatchWebM(t *testing.T) {
	var buf []byte
	buf = append(buf, webmMagic...)
	buf = append(buf, make([]byte, 10)...) // padding before the DocType element
	buf = append(buf, 0x42, 0x82)          // DocType ID
	buf = append(buf, 0x84)                // vint: size 4
	buf = append(buf, []byte("webm")...)
	buf = append(buf, make([]byte, 10)...)

	assert.True(t, MatchWebM(buf))

	v, ok := MatchAudioOrVideo(buf)
	require.True(t, ok)
	assert.Equal(t, "video/webm", v.Essence())
}

func TestMatchWebMRejectsWrongDocType(t *testing.T) {
	var buf []byte
	buf = append(buf, webmMagic...)
	buf = append(buf, make([]byte, 10)...)
	buf = append(buf, 0x42, 0x82)
	buf = append(buf, 0x84)
	buf = append(buf, []byte("mkvx")...)
	assert.False(t, MatchWebM(buf))
}

func mp3Header(bitrateIdx, sampleRateIdx byte) []byte {
	b1 := byte(0xFB) // sync + version 3 (odd) + layer 1
	b2 := (bitrateIdx << 4) | (sampleRateIdx << 2)
	return []byte{0xFF, b1, b2, 0x00}
}

func TestMatchMP3TwoFrames(t *testing.T) {
	header := mp3Header(9, 0) // 128kbps @ 44100Hz -> frame size 417
	buf := make([]byte, 417+4)
	copy(buf, header)
	copy(buf[417:], header)
	assert.True(t, MatchMP3(buf))

	v, ok := MatchAudioOrVideo(buf)
	require.True(t, ok)
	assert.Equal(t, "audio/mpeg", v.Essence())
}

func TestMatchMP3SingleFrameFollowedByGarbage(t *testing.T) {
	header := mp3Header(9, 0)
	buf := make([]byte, 417+4)
	copy(buf, header)
	for i := 417; i < len(buf); i++ {
		buf[i] = 0x00
	}
	assert.False(t, MatchMP3(buf))
}

func TestMp3FrameHeaderRejectsBadSync(t *testing.T) {
	_, ok := mp3FrameHeader([]byte{0x00, 0xFB, 0x90, 0x00}, 0)
	assert.False(t, ok)
}

func TestMp3FrameHeaderRejectsLayerZero(t *testing.T) {
	// layer bits zeroed.
	_, ok := mp3FrameHeader([]byte{0xFF, 0xF9, 0x90, 0x00}, 0)
	assert.False(t, ok)
}
