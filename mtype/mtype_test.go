/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithParameters(t *testing.T) {
	v, ok := Parse([]byte("text/html; charset=utf-8"))
	require.True(t, ok)
	assert.Equal(t, "text", v.Type())
	assert.Equal(t, "html", v.Subtype())
	assert.Equal(t, 1, v.ParamCount())
	val, present := v.Param("charset")
	require.True(t, present)
	assert.Equal(t, "utf-8", val)
	assert.Equal(t, "text/html;charset=utf-8", string(v.Serialize()))
}

func TestParseMultiParameterStructuredSubtype(t *testing.T) {
	v, ok := Parse([]byte("text/swiftui+vml;target=ios;charset=UTF-8"))
	require.True(t, ok)
	assert.Equal(t, "swiftui+vml", v.Subtype())
	require.Equal(t, 2, v.ParamCount())
	assert.Equal(t, Param{Name: "target", Value: "ios"}, v.ParamAt(0))
	assert.Equal(t, Param{Name: "charset", Value: "UTF-8"}, v.ParamAt(1))
	assert.Equal(t, "text/swiftui+vml;target=ios;charset=UTF-8", string(v.Serialize()))
}

func TestParseFailures(t *testing.T) {
	cases := []string{
		"",
		"   \t  ",
		"text",
		"text/",
		"/html",
		"te xt/html",
		"text/ht ml",
	}
	for _, c := range cases {
		_, ok := Parse([]byte(c))
		assert.Falsef(t, ok, "expected parse failure for %q", c)
	}
}

func TestParseLowercasesTypeButPreservesValueCase(t *testing.T) {
	v, ok := Parse([]byte("TEXT/HTML;Charset=UTF-8"))
	require.True(t, ok)
	assert.Equal(t, "text", v.Type())
	assert.Equal(t, "html", v.Subtype())
	val, present := v.Param("charset")
	require.True(t, present)
	assert.Equal(t, "UTF-8", val)
}

func TestParseDuplicateParamFirstWriteWins(t *testing.T) {
	v, ok := Parse([]byte("text/plain;charset=utf-8;charset=iso-8859-1"))
	require.True(t, ok)
	require.Equal(t, 1, v.ParamCount())
	val, _ := v.Param("charset")
	assert.Equal(t, "utf-8", val)
}

func TestParseEmptyParamSkipped(t *testing.T) {
	v, ok := Parse([]byte("text/plain;;charset=;foo=bar"))
	require.True(t, ok)
	require.Equal(t, 1, v.ParamCount())
	assert.Equal(t, "foo", v.ParamAt(0).Name)
}

func TestParseTrailingSemicolonIsValid(t *testing.T) {
	assert.True(t, IsValidMimeTypeString([]byte("text/plain;")))
}

func TestParseQuotedStringValue(t *testing.T) {
	v, ok := Parse([]byte(`text/plain;charset="utf-8 with \"quotes\" and \\backslash"`))
	require.True(t, ok)
	val, present := v.Param("charset")
	require.True(t, present)
	assert.Equal(t, `utf-8 with "quotes" and \backslash`, val)
}

func TestParseQuotedStringUnterminated(t *testing.T) {
	v, ok := Parse([]byte(`text/plain;charset="utf-8`))
	require.True(t, ok)
	val, present := v.Param("charset")
	require.True(t, present)
	assert.Equal(t, "utf-8", val)
}

func TestSerializeQuotesNonTokenValue(t *testing.T) {
	v := NewWithParams("text", "plain", Param{Name: "foo", Value: "has space"})
	assert.Equal(t, `text/plain;foo="has space"`, string(v.Serialize()))
}

func TestSerializeEscapesQuotesAndBackslashes(t *testing.T) {
	v := NewWithParams("text", "plain", Param{Name: "foo", Value: `a"b\c`})
	assert.Equal(t, `text/plain;foo="a\"b\\c"`, string(v.Serialize()))
}

func TestRoundTripIdempotent(t *testing.T) {
	inputs := []string{
		"text/html; charset=utf-8",
		"text/swiftui+vml;target=ios;charset=UTF-8",
		`application/x;foo="a b c"`,
	}
	for _, in := range inputs {
		v1, ok := Parse([]byte(in))
		require.True(t, ok)
		v2, ok := Parse(v1.Serialize())
		require.True(t, ok)
		assert.True(t, v1.Equal(v2))
	}
}

func TestIsValidMimeTypeWithNoParameters(t *testing.T) {
	assert.True(t, IsValidMimeTypeWithNoParameters([]byte("text/plain")))
	assert.False(t, IsValidMimeTypeWithNoParameters([]byte("text/plain;charset=utf-8")))
	assert.False(t, IsValidMimeTypeWithNoParameters([]byte("not a mime type")))
}

func TestPredicates(t *testing.T) {
	img, _ := Parse([]byte("image/png"))
	assert.True(t, img.IsImage())

	ogg, _ := Parse([]byte("application/ogg"))
	assert.True(t, ogg.IsAudioOrVideo())

	font, _ := Parse([]byte("application/font-woff"))
	assert.True(t, font.IsFont())

	zip, _ := Parse([]byte("application/epub+zip"))
	assert.True(t, zip.IsZipBased())

	archive, _ := Parse([]byte("application/x-gzip"))
	assert.True(t, archive.IsArchive())

	xml, _ := Parse([]byte("image/svg+xml"))
	assert.True(t, xml.IsXML())

	html, _ := Parse([]byte("text/html"))
	assert.True(t, html.IsHTML())
	assert.True(t, html.IsScriptable())

	pdf, _ := Parse([]byte("application/pdf"))
	assert.True(t, pdf.IsScriptable())

	js, _ := Parse([]byte("APPLICATION/JAVASCRIPT"))
	assert.True(t, js.IsJavaScript())

	json, _ := Parse([]byte("application/ld+json"))
	assert.True(t, json.IsJSON())
}

func TestMinimize(t *testing.T) {
	js, _ := Parse([]byte("application/javascript"))
	assert.Equal(t, []byte("text/javascript"), Minimize(js))

	json, _ := Parse([]byte("application/ld+json"))
	assert.Equal(t, []byte("application/json"), Minimize(json))

	svg, _ := Parse([]byte("image/svg+xml"))
	assert.Equal(t, []byte("image/svg+xml"), Minimize(svg))

	xml, _ := Parse([]byte("application/atom+xml"))
	assert.Equal(t, []byte("application/xml"), Minimize(xml))

	other, _ := Parse([]byte("image/png"))
	assert.Equal(t, []byte("image/png"), Minimize(other))
}

func TestBorrowedEqualsOwnedWhenSemanticallyEqual(t *testing.T) {
	owned, _ := Parse([]byte("image/png"))
	borrowed := NewBorrowed("image", "png")
	assert.True(t, owned.Equal(borrowed))
	assert.False(t, owned.Borrowed())
	assert.True(t, borrowed.Borrowed())
}
