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

// Arc is an atomically reference-counted shared pointer.
//
// Every Arc returned by [NewArc] or [Arc.Clone] is one strong reference, which
// must eventually be released with [Arc.Drop] or handed to [ArcOps.IntoRaw].
// Once the last one is dropped, the value's [Dropper.Drop] runs.
//
// The count is atomic, so clones may be made and dropped on any goroutine.
// Access to the value itself is not synchronized.
type Arc[T any] struct {
	raw Raw[T]
}

// NewArc allocates v with a strong count of one.
func NewArc[T any](v T) Arc[T] {
	count, raw := allocCounted[sync2.AtomicCount, T](0)
	count.Init()
	*raw.Get() = v
	return Arc[T]{raw}
}

// NewArcSlice allocates a [VLA] holding a copy of s with a strong count of one.
func NewArcSlice[E any](s []E) Arc[VLA[E]] {
	count, raw := allocCounted[sync2.AtomicCount, VLA[E]](uintptr(len(s)))
	count.Init()
	copy(Elems(raw), s)
	return Arc[VLA[E]]{raw}
}

// ArcFromRaw reclaims a strong reference previously released with
// [Arc.IntoRaw].
func ArcFromRaw[T any](raw Raw[T]) Arc[T] {
	debug.Assert(!raw.IsNil(), "nil Arc")
	return Arc[T]{raw}
}

// IntoRaw releases this strong reference without dropping it, and returns the
// address of the shared value. The count is unchanged.
func (r Arc[T]) IntoRaw() Raw[T] {
	return r.raw
}

// Get returns a pointer to the shared value.
//
// Mutating through this pointer while other references exist is the caller's
// problem; prefer [Arc.GetMut] or [Arc.MakeMut].
func (r Arc[T]) Get() *T {
	return r.raw.Get()
}

// Peek returns the address of the shared value without releasing anything.
func (r Arc[T]) Peek() Raw[T] {
	return r.raw
}

// Clone returns a new strong reference to the same value.
func (r Arc[T]) Clone() Arc[T] {
	r.count().Inc()
	return r
}

// Drop releases this strong reference. If it was the last, the value is
// destroyed.
func (r Arc[T]) Drop() {
	n := r.count().Dec()
	debug.Assert(n >= 0, "Arc at %v dropped too many times", r.raw)
	if n == 0 {
		dropInPlace(r.raw)
	}
}

// StrongCount returns the number of live strong references.
func (r Arc[T]) StrongCount() int {
	return r.count().Load()
}

// IsUnique returns whether this is the only strong reference.
//
// The check is a single atomic load, so it cannot race with clones or drops
// of other references on other goroutines.
func (r Arc[T]) IsUnique() bool {
	return r.count().IsUnique()
}

// GetMut returns a pointer to the shared value if this is the only strong
// reference.
func (r Arc[T]) GetMut() (*T, bool) {
	if !r.IsUnique() {
		return nil, false
	}
	return r.Get(), true
}

// MakeMut returns a mutable pointer to the value, first replacing *r with a
// deep copy if the value is shared.
//
// The other references keep the original.
func (r *Arc[T]) MakeMut() *T {
	if r.IsUnique() {
		return r.Get()
	}

	count, raw := allocCounted[sync2.AtomicCount, T](r.raw.meta)
	count.Init()
	deepCopy(raw, r.raw)
	r.Drop()
	*r = Arc[T]{raw}
	return r.Get()
}

// TryUnwrap moves the value out if this is the only strong reference,
// consuming it. Otherwise, returns false and leaves r untouched.
//
// The value's [Dropper.Drop] does not run: the caller now owns it.
//
// A [VLA] has no size of its own, so it can never be moved out.
func (r Arc[T]) TryUnwrap() (T, bool) {
	var v T
	if isUnsized[T]() || !r.IsUnique() {
		return v, false
	}

	v = *r.Get()
	r.count().Dec()
	return v, true
}

// PtrEq returns whether r and that refer to the same value.
func (r Arc[T]) PtrEq(that Arc[T]) bool {
	return r.raw == that.raw
}

func (r Arc[T]) count() *sync2.AtomicCount {
	return countOf[sync2.AtomicCount](r.raw)
}
