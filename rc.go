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
	"buf.build/go/intrusive/internal/debug"
	"buf.build/go/intrusive/internal/sync2"
)

// Rc is a reference-counted shared pointer.
//
// Every Rc returned by [NewRc] or [Rc.Clone] is one strong reference, which
// must eventually be released with [Rc.Drop] or handed to [RcOps.IntoRaw].
// Once the last one is dropped, the value's [Dropper.Drop] runs.
//
// The count is not atomic: an Rc and its clones must stay on one goroutine.
// Use [Arc] to share across goroutines.
type Rc[T any] struct {
	raw Raw[T]
}

// NewRc allocates v with a strong count of one.
func NewRc[T any](v T) Rc[T] {
	count, raw := allocCounted[sync2.Count, T](0)
	count.Init()
	*raw.Get() = v
	return Rc[T]{raw}
}

// NewRcSlice allocates a [VLA] holding a copy of s with a strong count of one.
func NewRcSlice[E any](s []E) Rc[VLA[E]] {
	count, raw := allocCounted[sync2.Count, VLA[E]](uintptr(len(s)))
	count.Init()
	copy(Elems(raw), s)
	return Rc[VLA[E]]{raw}
}

// RcFromRaw reclaims a strong reference previously released with
// [Rc.IntoRaw].
func RcFromRaw[T any](raw Raw[T]) Rc[T] {
	debug.Assert(!raw.IsNil(), "nil Rc")
	return Rc[T]{raw}
}

// IntoRaw releases this strong reference without dropping it, and returns the
// address of the shared value. The count is unchanged.
func (r Rc[T]) IntoRaw() Raw[T] {
	return r.raw
}

// Get returns a pointer to the shared value.
//
// Mutating through this pointer while other references exist is the caller's
// problem; prefer [Rc.GetMut] or [Rc.MakeMut].
func (r Rc[T]) Get() *T {
	return r.raw.Get()
}

// Peek returns the address of the shared value without releasing anything.
func (r Rc[T]) Peek() Raw[T] {
	return r.raw
}

// Clone returns a new strong reference to the same value.
func (r Rc[T]) Clone() Rc[T] {
	r.count().Inc()
	return r
}

// Drop releases this strong reference. If it was the last, the value is
// destroyed.
func (r Rc[T]) Drop() {
	n := r.count().Dec()
	debug.Assert(n >= 0, "Rc at %v dropped too many times", r.raw)
	if n == 0 {
		dropInPlace(r.raw)
	}
}

// StrongCount returns the number of live strong references.
func (r Rc[T]) StrongCount() int {
	return r.count().Load()
}

// IsUnique returns whether this is the only strong reference.
func (r Rc[T]) IsUnique() bool {
	return r.count().IsUnique()
}

// GetMut returns a pointer to the shared value if this is the only strong
// reference.
func (r Rc[T]) GetMut() (*T, bool) {
	if !r.IsUnique() {
		return nil, false
	}
	return r.Get(), true
}

// MakeMut returns a mutable pointer to the value, first replacing *r with a
// deep copy if the value is shared.
//
// The other references keep the original.
func (r *Rc[T]) MakeMut() *T {
	if r.IsUnique() {
		return r.Get()
	}

	count, raw := allocCounted[sync2.Count, T](r.raw.meta)
	count.Init()
	deepCopy(raw, r.raw)
	r.Drop()
	*r = Rc[T]{raw}
	return r.Get()
}

// TryUnwrap moves the value out if this is the only strong reference,
// consuming it. Otherwise, returns false and leaves r untouched.
//
// The value's [Dropper.Drop] does not run: the caller now owns it.
//
// A [VLA] has no size of its own, so it can never be moved out.
func (r Rc[T]) TryUnwrap() (T, bool) {
	var v T
	if isUnsized[T]() || !r.IsUnique() {
		return v, false
	}

	v = *r.Get()
	r.count().Dec()
	return v, true
}

// PtrEq returns whether r and that refer to the same value.
func (r Rc[T]) PtrEq(that Rc[T]) bool {
	return r.raw == that.raw
}

func (r Rc[T]) count() *sync2.Count {
	return countOf[sync2.Count](r.raw)
}
