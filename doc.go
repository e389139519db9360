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

// Package intrusive defines how intrusive collections take ownership of the
// values they hold.
//
// An intrusive collection stores its links inside the values themselves, so
// all it keeps is a raw address ([Raw]) per value. This package is the
// contract for turning owning pointers into those addresses and back,
// regardless of how the pointer owns its value:
//
//   - [PointerOps] converts between a pointer type P and [Raw] addresses of
//     its value type T.
//   - [TryExclusivePointerOps] and [ExclusivePointerOps] negotiate mutable
//     access to a value while the collection still owns it.
//   - [CloneFromRaw] makes a new owning pointer out of an address the
//     collection is holding, without disturbing it.
//
// One stateless policy type implements these for each supported kind of
// pointer:
//
//	policy        pointer       ownership                 mutable access
//	RefOps        Ref           borrowed                  none
//	BoxOps        Box           unique                    always
//	UnsafeMutOps  UnsafeMut     unique, unchecked         always
//	UnsafeRefOps  UnsafeRef     shared, unchecked         none
//	RcOps         Rc            counted                   while count == 1
//	ArcOps        Arc           atomically counted        while count == 1
//
// plus a Pin* variant of each, for [Pin] of that pointer.
//
// # Values of runtime size
//
// A [VLA] is an array whose length is only known at runtime. Its length is
// stored next to the address in every [Raw] and handle, and survives every
// conversion unchanged.
//
// # Destruction
//
// Memory is always reclaimed by the garbage collector. What the pointer kinds
// control is when a value is considered dead: at that point, if the value
// implements [Dropper], its Drop method is called, exactly once.
//
// # Safety
//
// Nothing in this package checks that a [Raw] is handed back to the policy
// that produced it, or that it is rebuilt only once. Doing either wrong is
// undefined behavior, in the same way as misusing package unsafe. Building
// with -tags debug turns on tracing of every conversion and some cheap
// assertions.
package intrusive
