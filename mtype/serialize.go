/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package mtype

import (
	"bytes"

	"github.com/badu/mimesniff/token"
)

// Serialize renders v back to an HTTP Content-Type value, quoting
// parameter values only when required.
func (v Value) Serialize() []byte {
	var buf bytes.Buffer
	buf.WriteString(v.typ)
	buf.WriteByte('/')
	buf.WriteString(v.subtype)
	for _, p := range v.params.entries {
		buf.WriteByte(';')
		buf.WriteString(p.Name)
		buf.WriteByte('=')
		if isBareToken(p.Value) {
			buf.WriteString(p.Value)
		} else {
			buf.WriteByte('"')
			for i := 0; i < len(p.Value); i++ {
				b := p.Value[i]
				if b == '"' || b == '\\' {
					buf.WriteByte('\\')
				}
				buf.WriteByte(b)
			}
			buf.WriteByte('"')
		}
	}
	return buf.Bytes()
}

func (v Value) String() string {
	return string(v.Serialize())
}

// isBareToken reports whether s can be written unquoted: non-empty
// and every byte an HTTP token.
func isBareToken(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !token.IsHTTPToken(s[i]) {
			return false
		}
	}
	return true
}
