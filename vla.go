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
	"reflect"
	"unsafe"

	"buf.build/go/intrusive/internal/xunsafe"
)

// VLA is a variable-length array of E: a value whose size is only known at
// runtime.
//
// A VLA has no size of its own. Its length travels as the metadata of the
// [Raw], and hence of every handle, that addresses it. A VLA must only ever
// be used behind a pointer.
type VLA[E any] [0]E

// At returns a pointer to the nth element of this array.
func (a *VLA[E]) At(n int) *E {
	return xunsafe.Add(xunsafe.Cast[E](a), n)
}

// Slice converts this VLA into a slice of the given length.
func (a *VLA[E]) Slice(n int) []E {
	return unsafe.Slice(xunsafe.Cast[E](a), n)
}

// unsized is implemented by every *VLA[E], and lets code that is generic over
// the value type get at the elements.
type unsized interface {
	elemType() reflect.Type
	elems(n int) any
	dropElems(n int)
}

func (a *VLA[E]) elemType() reflect.Type {
	return reflect.TypeFor[E]()
}

func (a *VLA[E]) elems(n int) any {
	return a.Slice(n)
}

func (a *VLA[E]) dropElems(n int) {
	s := a.Slice(n)
	for i := range s {
		dropOne(&s[i])
	}
}

// isUnsized returns whether T is a VLA.
func isUnsized[T any]() bool {
	_, ok := any((*T)(nil)).(unsized)
	return ok
}

// shapeOf returns the reflection type of the storage for a T with the given
// metadata.
func shapeOf[T any](meta uintptr) reflect.Type {
	if u, ok := any((*T)(nil)).(unsized); ok {
		return reflect.ArrayOf(int(meta), u.elemType())
	}
	return reflect.TypeFor[T]()
}
