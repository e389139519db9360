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
	"reflect"
	"unsafe"

	"github.com/tiendc/go-deepcopy"

	"buf.build/go/intrusive/internal/debug"
	"buf.build/go/intrusive/internal/xsync"
	"buf.build/go/intrusive/internal/xunsafe"
	"buf.build/go/intrusive/internal/xunsafe/layout"
)

// allocCounted allocates a count of type H immediately followed by storage
// for a T with the given metadata. The storage is zeroed.
//
// The value always lives at [layout.Trailing][H, T] bytes past the count, so
// that [countOf] can recover the count from the value's address alone.
func allocCounted[H, T any](meta uintptr) (*H, Raw[T]) {
	if !isUnsized[T]() {
		p := new(struct {
			count H
			value T
		})
		return &p.count, RawOf(&p.value)
	}

	// A VLA needs a weirdly-shaped allocation: a count followed by a
	// runtime-sized array. This has to be built with reflection, so that
	// the GC knows where any pointers in the elements are.
	shape := countedShape(reflect.TypeFor[H](), shapeOf[T](meta))
	base := reflect.New(shape).UnsafePointer()
	offset := shape.Field(1).Offset

	debug.Assert(int(offset) == layout.Trailing[H, T](),
		"misplaced VLA in %v: %d != %d", shape, offset, layout.Trailing[H, T]())

	raw := Raw[T]{ptr: unsafe.Add(base, offset), meta: meta}
	return (*H)(base), raw
}

// countedShapes caches the allocation shapes built by [countedShape].
var countedShapes xsync.Map[[2]reflect.Type, reflect.Type]

// countedShape returns a struct type containing a header followed by data.
func countedShape(header, data reflect.Type) reflect.Type {
	shape, _ := countedShapes.LoadOrStore([2]reflect.Type{header, data}, func() reflect.Type {
		return reflect.StructOf([]reflect.StructField{
			{Name: "Count", Type: header},
			{Name: "Data", Type: data},
		})
	})
	return shape
}

// countOf recovers the count allocated alongside r by [allocCounted].
func countOf[H, T any](r Raw[T]) *H {
	return xunsafe.Header[H, T](r.ptr)
}

// deepCopy copies the value at src into dst, which must have been allocated
// with the same metadata.
func deepCopy[T any](dst, src Raw[T]) {
	var to, from any = dst.Get(), src.Get()
	if isUnsized[T]() {
		shape := shapeOf[T](src.meta)
		to = reflect.NewAt(shape, dst.ptr).Interface()
		from = reflect.NewAt(shape, src.ptr).Interface()
	}

	if err := deepcopy.Copy(to, from); err != nil {
		panic(fmt.Errorf("intrusive: cannot clone value at %v: %w", src, err))
	}
}
