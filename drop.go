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

// Dropper is implemented by values that must release something when their
// last owning handle goes away.
//
// The layer calls Drop exactly once per value: when a [Box] is dropped, or
// when the last [Rc] or [Arc] referencing it is dropped. Borrowed and
// unchecked handles never call it. For a [VLA], Drop is called on every
// element whose pointer implements it.
type Dropper interface {
	Drop()
}

// dropInPlace runs the drop hooks for the value at r.
func dropInPlace[T any](r Raw[T]) {
	if debug.Enabled {
		debug.Log(nil, "drop", "%v", r)
	}

	if u, ok := any(r.Get()).(unsized); ok {
		u.dropElems(r.Len())
		return
	}
	dropOne(r.Get())
}

func dropOne[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	}

	if debug.Enabled {
		// Poison the value so that use-after-drop shows up as zeros.
		var z T
		*p = z
	}
}
