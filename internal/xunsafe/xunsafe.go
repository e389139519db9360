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

// Package xunsafe collects the pointer arithmetic that the ownership layer
// needs, so that nothing else in the module has to spell it out.
package xunsafe

import (
	"unsafe"

	"buf.build/go/intrusive/internal/xunsafe/layout"
)

// Int is any integer type.
type Int = layout.Int

// Cast casts one pointer type to another.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// Add adds the given offset to p, scaled by the size of E.
func Add[P ~*E, E any, I Int](p P, n I) P {
	return P(unsafe.Add(unsafe.Pointer(p), layout.Size[E]()*int(n)))
}

// ByteAdd adds the given unscaled offset to p, which may be negative.
//
// It also throws in a cast for free.
func ByteAdd[T any, I Int](p unsafe.Pointer, n I) *T {
	return (*T)(unsafe.Add(p, int(n)))
}

// Header returns a pointer to the H that precedes the T at p, assuming that
// both were allocated together as
//
//	struct {
//	  header H
//	  value  T
//	}
//
// This is how counted pointers find their counts from the address of the
// value they manage.
func Header[H, T any](p unsafe.Pointer) *H {
	return ByteAdd[H](p, -layout.Trailing[H, T]())
}
