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

	"buf.build/go/intrusive/internal/dbg"
)

// Format implements [fmt.Formatter].
func (b Box[T]) Format(s fmt.State, verb rune) {
	dbg.Dict("Box", "ptr", b.raw).Format(s, verb)
}

// Format implements [fmt.Formatter].
func (r Rc[T]) Format(s fmt.State, verb rune) {
	if r.raw.IsNil() {
		dbg.Dict("Rc", "ptr", r.raw).Format(s, verb)
		return
	}
	dbg.Dict("Rc", "ptr", r.raw, "strong", r.StrongCount()).Format(s, verb)
}

// Format implements [fmt.Formatter].
func (a Arc[T]) Format(s fmt.State, verb rune) {
	if a.raw.IsNil() {
		dbg.Dict("Arc", "ptr", a.raw).Format(s, verb)
		return
	}
	dbg.Dict("Arc", "ptr", a.raw, "strong", a.StrongCount()).Format(s, verb)
}

// Format implements [fmt.Formatter].
func (p Pin[P]) Format(s fmt.State, verb rune) {
	dbg.Fprintf("Pin(%v)", p.ptr).Format(s, verb)
}
