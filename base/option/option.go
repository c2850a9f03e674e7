// Copyright (c) 2026, The Matplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package option provides optional (nullable) types.
package option

// Option represents an optional (nullable) type. If Valid is true, Option
// represents Value. Otherwise, it represents an unset value.
type Option[T any] struct {
	Valid bool
	Value T
}

// New returns a new [Option] set to the given value.
func New[T any](v T) *Option[T] {
	o := &Option[T]{}
	o.Set(v)
	return o
}

// Set sets the value to the given value.
func (o *Option[T]) Set(v T) *Option[T] {
	o.Value = v
	o.Valid = true
	return o
}

// Clear marks the value as unset.
func (o *Option[T]) Clear() *Option[T] {
	o.Valid = false
	return o
}

// Or returns the value of the option if it is set,
// and the given fallback value otherwise.
func (o *Option[T]) Or(or T) T {
	if o.Valid {
		return o.Value
	}
	return or
}
