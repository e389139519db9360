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
	"unsafe"

	"buf.build/go/intrusive/internal/xunsafe"
)

// Raw is an ownership-free address of a T.
//
// For values whose size is only known at runtime ([VLA]), a Raw also carries
// the element count as metadata. Two Raws are == only if both halves match.
//
// A Raw keeps its referent reachable for the garbage collector, but owns
// nothing: which handle type may turn it back into a pointer is decided by
// whoever produced it.
type Raw[T any] struct {
	ptr  unsafe.Pointer
	meta uintptr
}

// RawOf returns the raw address of p.
func RawOf[T any](p *T) Raw[T] {
	return Raw[T]{ptr: unsafe.Pointer(p)}
}

// RawSlice returns the raw address of the elements of s, viewed as a [VLA]
// of length len(s).
func RawSlice[E any](s []E) Raw[VLA[E]] {
	return Raw[VLA[E]]{
		ptr:  unsafe.Pointer(unsafe.SliceData(s)),
		meta: uintptr(len(s)),
	}
}

// Elems returns the elements addressed by r.
func Elems[E any](r Raw[VLA[E]]) []E {
	return r.Get().Slice(r.Len())
}

// Get returns the address as a pointer.
func (r Raw[T]) Get() *T {
	return (*T)(r.ptr)
}

// Meta returns the metadata half of this address.
//
// This is the element count for a [VLA], and zero for everything else.
func (r Raw[T]) Meta() uintptr {
	return r.meta
}

// Len returns the metadata interpreted as an element count.
func (r Raw[T]) Len() int {
	return int(r.meta)
}

// Addr returns the address half of this address, as an integer.
func (r Raw[T]) Addr() uintptr {
	return uintptr(r.ptr)
}

// IsNil returns whether this is the zero Raw.
func (r Raw[T]) IsNil() bool {
	return r.ptr == nil
}

// Format implements [fmt.Formatter].
func (r Raw[T]) Format(state fmt.State, verb rune) {
	addr := xunsafe.AddrOf(r.Get())
	if verb != 'v' {
		addr.Format(state, verb)
		return
	}

	if isUnsized[T]() {
		fmt.Fprintf(state, "%v[%d]", addr, r.meta)
		return
	}
	fmt.Fprintf(state, "%v", addr)
}
