// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2023, Cogent Core. All rights reserved.

// Package jsonx provides JSON-based input / output of objects,
// using the [iox] helpers.
package jsonx

import (
	"encoding/json"
	"io"
	"io/fs"

	"github.com/NGWi/matplotlib/base/iox"
)

// Open reads the given object from the given filename using JSON encoding.
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// OpenFS reads the given object from the given filename using JSON encoding,
// within the given [fs.FS] filesystem (e.g., for embedded files).
func OpenFS(v any, fsys fs.FS, filename string) error {
	return iox.OpenFS(v, fsys, filename, iox.NewDecoderFunc(json.NewDecoder))
}

// Read reads the given object from the given reader using JSON encoding.
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(json.NewDecoder))
}

// ReadBytes reads the given object from the given bytes using JSON encoding.
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(json.NewDecoder))
}

// Save writes the given object to the given filename using JSON encoding.
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(json.NewEncoder))
}

// SaveIndent writes the given object to the given filename using
// JSON encoding, with indentation making it human-readable.
func SaveIndent(v any, filename string) error {
	return iox.Save(v, filename, indentEncoderFunc)
}

// Write writes the given object to the given writer using JSON encoding.
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(json.NewEncoder))
}

// WriteBytes writes the given object to returned bytes using JSON encoding.
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(json.NewEncoder))
}

// indentEncoderFunc returns JSON encoders configured for tab indentation.
var indentEncoderFunc = iox.NewEncoderFunc(func(w io.Writer) *json.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
})
