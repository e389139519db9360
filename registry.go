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

var (
	_ PointerOps[int, Ref[int]]                = RefOps[int]{}
	_ ExclusivePointerOps[int, Box[int]]       = BoxOps[int]{}
	_ ExclusivePointerOps[int, UnsafeMut[int]] = UnsafeMutOps[int]{}
	_ PointerOps[int, UnsafeRef[int]]          = UnsafeRefOps[int]{}
	_ TryExclusivePointerOps[int, Rc[int]]     = RcOps[int]{}
	_ TryExclusivePointerOps[int, Arc[int]]    = ArcOps[int]{}
)

// RefOps is the [PointerOps] for [Ref].
//
// Collections using it own nothing; the values must outlive them.
type RefOps[T any] struct{}

// FromRaw implements [PointerOps].
func (RefOps[T]) FromRaw(raw Raw[T]) Ref[T] {
	logRaw("from_raw", "Ref", raw)
	return Ref[T]{raw}
}

// IntoRaw implements [PointerOps].
func (RefOps[T]) IntoRaw(ptr Ref[T]) Raw[T] {
	logRaw("into_raw", "Ref", ptr.raw)
	return ptr.raw
}

// BoxOps is the [ExclusivePointerOps] for [Box].
type BoxOps[T any] struct {
	Exclusive[T]
}

// FromRaw implements [PointerOps].
func (BoxOps[T]) FromRaw(raw Raw[T]) Box[T] {
	logRaw("from_raw", "Box", raw)
	return BoxFromRaw(raw)
}

// IntoRaw implements [PointerOps].
func (BoxOps[T]) IntoRaw(ptr Box[T]) Raw[T] {
	logRaw("into_raw", "Box", ptr.raw)
	return ptr.IntoRaw()
}

// UnsafeMutOps is the [ExclusivePointerOps] for [UnsafeMut].
type UnsafeMutOps[T any] struct {
	Exclusive[T]
}

// FromRaw implements [PointerOps].
func (UnsafeMutOps[T]) FromRaw(raw Raw[T]) UnsafeMut[T] {
	logRaw("from_raw", "UnsafeMut", raw)
	return UnsafeMutFromRaw(raw)
}

// IntoRaw implements [PointerOps].
func (UnsafeMutOps[T]) IntoRaw(ptr UnsafeMut[T]) Raw[T] {
	logRaw("into_raw", "UnsafeMut", ptr.raw)
	return ptr.IntoRaw()
}

// UnsafeRefOps is the [PointerOps] for [UnsafeRef].
type UnsafeRefOps[T any] struct{}

// FromRaw implements [PointerOps].
func (UnsafeRefOps[T]) FromRaw(raw Raw[T]) UnsafeRef[T] {
	logRaw("from_raw", "UnsafeRef", raw)
	return UnsafeRefFromRaw(raw)
}

// IntoRaw implements [PointerOps].
func (UnsafeRefOps[T]) IntoRaw(ptr UnsafeRef[T]) Raw[T] {
	logRaw("into_raw", "UnsafeRef", ptr.raw)
	return ptr.IntoRaw()
}

// RcOps is the [TryExclusivePointerOps] for [Rc]. Mutable access is granted
// while the collection holds the only strong reference.
type RcOps[T any] struct{}

// FromRaw implements [PointerOps].
func (RcOps[T]) FromRaw(raw Raw[T]) Rc[T] {
	logRaw("from_raw", "Rc", raw)
	return RcFromRaw(raw)
}

// IntoRaw implements [PointerOps].
func (RcOps[T]) IntoRaw(ptr Rc[T]) Raw[T] {
	logRaw("into_raw", "Rc", ptr.raw)
	return ptr.IntoRaw()
}

// TryGetMut implements [TryExclusivePointerOps].
func (RcOps[T]) TryGetMut(raw Raw[T]) (Raw[T], bool) {
	rc := RcFromRaw(raw)
	defer rc.IntoRaw()
	if !rc.IsUnique() {
		return Raw[T]{}, false
	}
	return raw, true
}

// ArcOps is the [TryExclusivePointerOps] for [Arc]. Mutable access is granted
// while the collection holds the only strong reference, as observed by an
// atomic load of the count.
type ArcOps[T any] struct{}

// FromRaw implements [PointerOps].
func (ArcOps[T]) FromRaw(raw Raw[T]) Arc[T] {
	logRaw("from_raw", "Arc", raw)
	return ArcFromRaw(raw)
}

// IntoRaw implements [PointerOps].
func (ArcOps[T]) IntoRaw(ptr Arc[T]) Raw[T] {
	logRaw("into_raw", "Arc", ptr.raw)
	return ptr.IntoRaw()
}

// TryGetMut implements [TryExclusivePointerOps].
func (ArcOps[T]) TryGetMut(raw Raw[T]) (Raw[T], bool) {
	arc := ArcFromRaw(raw)
	defer arc.IntoRaw()
	if !arc.IsUnique() {
		return Raw[T]{}, false
	}
	return raw, true
}

func logRaw[T any](op, kind string, raw Raw[T]) {
	if debug.Enabled {
		debug.Log([]any{"%s", kind}, op, "%v", raw)
	}
}
