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

// PointerOps converts owning pointers of type P to raw addresses of their T,
// and back.
//
// Operations which insert a value into an intrusive collection accept a P and
// keep only the [Raw] returned by IntoRaw. Operations which remove a value
// hand back the P rebuilt by FromRaw.
//
// Implementations are stateless: every value of an implementing type behaves
// the same, so the zero value is always ready to use.
type PointerOps[T, P any] interface {
	// FromRaw rebuilds an owning pointer from a raw address.
	//
	// raw must have been returned by IntoRaw on an implementation for the
	// same P, and must not have been passed to FromRaw since. This is not
	// checked. FromRaw must never panic.
	FromRaw(raw Raw[T]) P

	// IntoRaw consumes an owning pointer and returns the address of the value
	// it owns. Ownership passes to whoever holds the result.
	IntoRaw(ptr P) Raw[T]
}

// TryExclusivePointerOps is a [PointerOps] that can sometimes hand out
// mutable access to a value still owned by a collection.
type TryExclusivePointerOps[T, P any] interface {
	PointerOps[T, P]

	// TryGetMut returns raw and true if the owner of raw is provably the only
	// owner of its value right now, and false otherwise. It never changes
	// any observable bookkeeping.
	//
	// raw must be an address currently held by the caller, as for
	// [PointerOps.FromRaw].
	TryGetMut(raw Raw[T]) (Raw[T], bool)
}

// ExclusivePointerOps is a [PointerOps] for pointers that are always unique,
// so mutable access to a value held by a collection is always available.
//
// Types that embed [Exclusive] get both methods for free. For a custom GetMut,
// use [DeriveExclusive], which supplies the matching TryGetMut.
type ExclusivePointerOps[T, P any] interface {
	TryExclusivePointerOps[T, P]

	// GetMut returns a mutable view of the value at raw.
	GetMut(raw Raw[T]) Raw[T]
}

// Exclusive provides the default [ExclusivePointerOps] methods, for embedding
// into policies for pointer types that are unique by construction.
//
// GetMut is the identity: the raw address is already the only one, so it can
// be used for mutation as-is.
type Exclusive[T any] struct{}

// GetMut implements [ExclusivePointerOps].
func (Exclusive[T]) GetMut(raw Raw[T]) Raw[T] {
	return raw
}

// TryGetMut implements [TryExclusivePointerOps]. It always succeeds.
func (e Exclusive[T]) TryGetMut(raw Raw[T]) (Raw[T], bool) {
	return e.GetMut(raw), true
}

// DeriveExclusive builds an [ExclusivePointerOps] from a conversion policy and
// a GetMut function. If getMut is nil, the default from [Exclusive] is used.
//
// The result's TryGetMut always calls getMut and succeeds.
func DeriveExclusive[T, P any, O PointerOps[T, P]](ops O, getMut func(Raw[T]) Raw[T]) ExclusivePointerOps[T, P] {
	if getMut == nil {
		getMut = Exclusive[T]{}.GetMut
	}
	return derived[T, P, O]{ops: ops, getMut: getMut}
}

type derived[T, P any, O PointerOps[T, P]] struct {
	ops    O
	getMut func(Raw[T]) Raw[T]
}

func (d derived[T, P, O]) FromRaw(raw Raw[T]) P     { return d.ops.FromRaw(raw) }
func (d derived[T, P, O]) IntoRaw(ptr P) Raw[T]     { return d.ops.IntoRaw(ptr) }
func (d derived[T, P, O]) GetMut(raw Raw[T]) Raw[T] { return d.getMut(raw) }
func (d derived[T, P, O]) TryGetMut(raw Raw[T]) (Raw[T], bool) {
	return d.GetMut(raw), true
}
