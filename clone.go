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

// Cloner is a pointer type that can be duplicated, such as [Rc], [Arc] or
// [UnsafeRef].
type Cloner[P any] interface {
	Clone() P
}

// CloneFromRaw returns a new owning pointer to the value at raw, which stays
// owned by whoever holds it.
//
// raw must currently be owned through ops, e.g. stored in a collection that
// inserted it with ops.IntoRaw.
//
// The pointer rebuilt from raw to call Clone on is always converted back with
// ops.IntoRaw, even if Clone panics. A panic propagates to the caller, with raw
// still valid and its owner's count as Clone left it.
func CloneFromRaw[T any, P Cloner[P], O PointerOps[T, P]](ops O, raw Raw[T]) P {
	if debug.Enabled {
		debug.Log(nil, "clone_from_raw", "%v", raw)
	}

	held := ops.FromRaw(raw)
	defer func() {
		// Give the borrowed reference back to raw's owner. Nothing has dropped
		// it, so this leaves the count exactly as Clone left it.
		back := ops.IntoRaw(held)
		debug.Assert(back == raw, "%v changed address to %v", raw, back)
	}()

	return held.Clone()
}
