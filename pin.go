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

import "fmt"

var (
	_ PointerOps[int, Pin[Ref[int]]]                = PinRefOps[int]{}
	_ ExclusivePointerOps[int, Pin[Box[int]]]       = PinBoxOps[int]{}
	_ ExclusivePointerOps[int, Pin[UnsafeMut[int]]] = PinUnsafeMutOps[int]{}
	_ PointerOps[int, Pin[UnsafeRef[int]]]          = PinUnsafeRefOps[int]{}
	_ TryExclusivePointerOps[int, Pin[Rc[int]]]     = PinRcOps[int]{}
	_ TryExclusivePointerOps[int, Pin[Arc[int]]]    = PinArcOps[int]{}
)

// Pin wraps a pointer whose referent is promised not to move for as long as
// the pointer, or any raw address made from it, is live.
//
// Go's garbage collector does not move heap objects, so Pin enforces nothing.
// It records the promise in the type, for collections whose values hold
// addresses of each other.
type Pin[P any] struct {
	ptr P
}

// NewPin pins ptr.
func NewPin[P any](ptr P) Pin[P] {
	return Pin[P]{ptr}
}

// Pointer returns the pinned pointer, which remains pinned.
func (p Pin[P]) Pointer() P {
	return p.ptr
}

// IntoInner unwraps the pointer, giving up the pin.
//
// The caller must keep honoring the promise made by [NewPin] for the
// referent, since other pinned pointers to it may still exist.
func (p Pin[P]) IntoInner() P {
	return p.ptr
}

// Clone clones the pinned pointer, which must implement [Cloner].
//
// Panics if P has no Clone method.
func (p Pin[P]) Clone() Pin[P] {
	c, ok := any(p.ptr).(Cloner[P])
	if !ok {
		panic(fmt.Sprintf("intrusive: cannot clone %T", p.ptr))
	}
	return Pin[P]{c.Clone()}
}

// PinOps adapts the [PointerOps] for P into one for Pin[P]. Raw addresses
// are handled identically.
type PinOps[T, P any, O PointerOps[T, P]] struct {
	ops O
}

// FromRaw implements [PointerOps].
func (o PinOps[T, P, O]) FromRaw(raw Raw[T]) Pin[P] {
	return Pin[P]{o.ops.FromRaw(raw)}
}

// IntoRaw implements [PointerOps].
func (o PinOps[T, P, O]) IntoRaw(ptr Pin[P]) Raw[T] {
	return o.ops.IntoRaw(ptr.ptr)
}

// PinRefOps is the [PointerOps] for Pin[Ref[T]].
type PinRefOps[T any] struct {
	PinOps[T, Ref[T], RefOps[T]]
}

// PinBoxOps is the [ExclusivePointerOps] for Pin[Box[T]].
type PinBoxOps[T any] struct {
	PinOps[T, Box[T], BoxOps[T]]
	Exclusive[T]
}

// PinUnsafeMutOps is the [ExclusivePointerOps] for Pin[UnsafeMut[T]].
type PinUnsafeMutOps[T any] struct {
	PinOps[T, UnsafeMut[T], UnsafeMutOps[T]]
	Exclusive[T]
}

// PinUnsafeRefOps is the [PointerOps] for Pin[UnsafeRef[T]].
type PinUnsafeRefOps[T any] struct {
	PinOps[T, UnsafeRef[T], UnsafeRefOps[T]]
}

// PinRcOps is the [TryExclusivePointerOps] for Pin[Rc[T]].
type PinRcOps[T any] struct {
	PinOps[T, Rc[T], RcOps[T]]
}

// TryGetMut implements [TryExclusivePointerOps].
func (PinRcOps[T]) TryGetMut(raw Raw[T]) (Raw[T], bool) {
	return RcOps[T]{}.TryGetMut(raw)
}

// PinArcOps is the [TryExclusivePointerOps] for Pin[Arc[T]].
type PinArcOps[T any] struct {
	PinOps[T, Arc[T], ArcOps[T]]
}

// TryGetMut implements [TryExclusivePointerOps].
func (PinArcOps[T]) TryGetMut(raw Raw[T]) (Raw[T], bool) {
	return ArcOps[T]{}.TryGetMut(raw)
}
