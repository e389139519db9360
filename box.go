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

import "buf.build/go/intrusive/internal/debug"

// Ref is a borrowed pointer. It never owns its referent, and handing it to a
// collection transfers nothing.
type Ref[T any] struct {
	raw Raw[T]
}

// Borrow borrows p.
func Borrow[T any](p *T) Ref[T] {
	return Ref[T]{RawOf(p)}
}

// BorrowSlice borrows the elements of s as a [VLA].
func BorrowSlice[E any](s []E) Ref[VLA[E]] {
	return Ref[VLA[E]]{RawSlice(s)}
}

// Get returns a pointer to the referent.
func (r Ref[T]) Get() *T {
	return r.raw.Get()
}

// Peek returns the address of the referent.
func (r Ref[T]) Peek() Raw[T] {
	return r.raw
}

// Box is a uniquely owned pointer.
//
// Exactly one Box may refer to a value at a time. Copying a Box value does
// not duplicate ownership: after handing a Box to [BoxOps.IntoRaw] or calling
// [Box.Drop], neither it nor any copy of it may be used again.
type Box[T any] struct {
	raw Raw[T]
}

// NewBox allocates v and returns its owner.
func NewBox[T any](v T) Box[T] {
	p := new(T)
	*p = v
	return Box[T]{RawOf(p)}
}

// NewBoxSlice allocates a [VLA] holding a copy of s and returns its owner.
func NewBoxSlice[E any](s []E) Box[VLA[E]] {
	return Box[VLA[E]]{RawSlice(append(make([]E, 0, len(s)), s...))}
}

// BoxFromRaw takes ownership of a value previously released with
// [Box.IntoRaw].
func BoxFromRaw[T any](raw Raw[T]) Box[T] {
	debug.Assert(!raw.IsNil(), "nil Box")
	return Box[T]{raw}
}

// IntoRaw releases ownership of the value and returns its address.
func (b Box[T]) IntoRaw() Raw[T] {
	return b.raw
}

// Get returns a pointer to the owned value.
func (b Box[T]) Get() *T {
	return b.raw.Get()
}

// Peek returns the address of the owned value without releasing it.
func (b Box[T]) Peek() Raw[T] {
	return b.raw
}

// Drop destroys the owned value, calling [Dropper.Drop] if it implements it.
func (b Box[T]) Drop() {
	dropInPlace(b.raw)
}
