// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intrusive

import (
	"fmt"

	"buf.build/go/intrusive/internal/debug"
)

// UnsafeRef is an unchecked shared pointer.
//
// It behaves like an [Rc], except that no count is kept: copies are free, and
// nothing ever destroys the value on UnsafeRef's behalf. Whoever created the
// value (typically the collection it lives in) is responsible for deciding
// when it is dead, and for destroying it via [UnsafeRef.IntoBox] if it came
// from a [Box].
//
// For as long as any UnsafeRef to a value exists, the caller must ensure that
// the value is not destroyed and is not mutated through any other pointer.
// None of this is checked. Sharing an UnsafeRef across goroutines is only
// sound if concurrent reads of T are.
type UnsafeRef[T any] struct {
	raw Raw[T]
}

// UnsafeRefFromRaw wraps an address.
//
// raw must be non-nil, and the caller takes on the obligations documented on
// [UnsafeRef].
func UnsafeRefFromRaw[T any](raw Raw[T]) UnsafeRef[T] {
	debug.Assert(!raw.IsNil(), "nil UnsafeRef")
	return UnsafeRef[T]{raw}
}

// UnsafeRefFromBox converts an owned value into an unchecked one. The value
// is not destroyed until it is converted back with [UnsafeRef.IntoBox].
func UnsafeRefFromBox[T any](b Box[T]) UnsafeRef[T] {
	return UnsafeRefFromRaw(b.IntoRaw())
}

// IntoRaw returns the wrapped address.
func (r UnsafeRef[T]) IntoRaw() Raw[T] {
	return r.raw
}

// IntoBox converts this pointer back into the [Box] it was made from.
//
// This must be the last live UnsafeRef to the value, the value must not be
// part of any collection, and it must have come from [UnsafeRefFromBox].
func (r UnsafeRef[T]) IntoBox() Box[T] {
	return BoxFromRaw(r.raw)
}

// Clone returns a copy of this pointer. No count is incremented.
func (r UnsafeRef[T]) Clone() UnsafeRef[T] {
	return r
}

// Get returns a pointer to the referent, which must only be read through.
func (r UnsafeRef[T]) Get() *T {
	return r.raw.Get()
}

// Format implements [fmt.Formatter] by formatting the referent.
func (r UnsafeRef[T]) Format(state fmt.State, verb rune) {
	formatReferent(state, verb, r.raw)
}

// UnsafeMut is an unchecked unique pointer.
//
// It behaves like a [Box], except that it never destroys the value: the
// caller is responsible for doing so, via [UnsafeMut.IntoBox] if it came from
// a Box.
//
// UnsafeMut has no Clone, and must be treated as unique: for as long as it
// exists, the caller must ensure the value is not destroyed and is not
// accessed through any other pointer, from any goroutine. None of this is
// checked.
type UnsafeMut[T any] struct {
	raw Raw[T]
}

// UnsafeMutFromRaw wraps an address.
//
// raw must be non-nil, and the caller takes on the obligations documented on
// [UnsafeMut].
func UnsafeMutFromRaw[T any](raw Raw[T]) UnsafeMut[T] {
	debug.Assert(!raw.IsNil(), "nil UnsafeMut")
	return UnsafeMut[T]{raw}
}

// UnsafeMutFromBox converts an owned value into an unchecked one. The value
// is not destroyed until it is converted back with [UnsafeMut.IntoBox].
func UnsafeMutFromBox[T any](b Box[T]) UnsafeMut[T] {
	return UnsafeMutFromRaw(b.IntoRaw())
}

// IntoRaw returns the wrapped address.
func (m UnsafeMut[T]) IntoRaw() Raw[T] {
	return m.raw
}

// IntoBox converts this pointer back into the [Box] it was made from.
//
// The value must not be part of any collection, and must have come from
// [UnsafeMutFromBox].
func (m UnsafeMut[T]) IntoBox() Box[T] {
	return BoxFromRaw(m.raw)
}

// Get returns a pointer to the referent, for reading or writing.
func (m UnsafeMut[T]) Get() *T {
	return m.raw.Get()
}

// Format implements [fmt.Formatter] by formatting the referent.
func (m UnsafeMut[T]) Format(state fmt.State, verb rune) {
	formatReferent(state, verb, m.raw)
}

func formatReferent[T any](state fmt.State, verb rune, raw Raw[T]) {
	format := fmt.FormatString(state, verb)
	if u, ok := any(raw.Get()).(unsized); ok {
		fmt.Fprintf(state, format, u.elems(raw.Len()))
		return
	}
	fmt.Fprintf(state, format, *raw.Get())
}
