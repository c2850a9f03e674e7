// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from cogentcore.org/core:
// Copyright (c) 2024, Cogent Core. All rights reserved.

package metadata

import "github.com/NGWi/matplotlib/base/errors"

// Metadataer is an interface for types that include a metadata [Data] map.
type Metadataer interface {
	// Metadata returns the metadata map for this object,
	// initializing it if necessary.
	Metadata() *Data
}

// GetData returns the metadata [Data] map from the given object,
// if it implements the [Metadataer] interface.
// Returns nil otherwise.
func GetData(obj any) *Data {
	if md, ok := obj.(Metadataer); ok {
		return md.Metadata()
	}
	return nil
}

// SetTo sets the given key to the given value in the metadata
// for the given object, if it implements the [Metadataer] interface.
// Returns an error if it does not.
func SetTo(obj any, key string, value any) error {
	md := GetData(obj)
	if md == nil {
		return errors.New("metadata.SetTo: object does not implement the Metadataer interface")
	}
	md.Set(key, value)
	return nil
}

// GetFrom gets the value of the given type for the given key from the
// metadata for the given object, if it implements the [Metadataer]
// interface. Returns an error if the object does not have metadata,
// or the key is not present, or the value is of a different type.
func GetFrom[T any](obj any, key string) (T, error) {
	md := GetData(obj)
	if md == nil {
		var z T
		return z, errors.New("metadata.GetFrom: object does not implement the Metadataer interface")
	}
	return Get[T](*md, key)
}
