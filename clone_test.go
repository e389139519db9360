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

package intrusive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buf.build/go/intrusive"
	"buf.build/go/intrusive/internal/debug"
)

func TestCloneFromRaw(t *testing.T) {
	t.Parallel()
	defer debug.WithTesting(t)()

	t.Run("rc", func(t *testing.T) {
		ops := intrusive.RcOps[int]{}
		slot := ops.IntoRaw(intrusive.NewRc(42))

		clone := intrusive.CloneFromRaw[int, intrusive.Rc[int]](ops, slot)
		assert.Equal(t, 2, clone.StrongCount())
		assert.Equal(t, slot, clone.Peek())

		held := ops.FromRaw(slot)
		assert.Equal(t, 42, *held.Get())
		assert.True(t, held.PtrEq(clone))

		clone.Drop()
		assert.Equal(t, 1, held.StrongCount())
	})

	t.Run("arc", func(t *testing.T) {
		ops := intrusive.ArcOps[int]{}
		slot := ops.IntoRaw(intrusive.NewArc(42))

		clone := intrusive.CloneFromRaw[int, intrusive.Arc[int]](ops, slot)
		assert.Equal(t, 2, clone.StrongCount())

		held := ops.FromRaw(slot)
		assert.Equal(t, slot, held.Peek())
		clone.Drop()
		assert.Equal(t, 1, held.StrongCount())
	})

	t.Run("pin", func(t *testing.T) {
		ops := intrusive.PinRcOps[int]{}
		slot := ops.IntoRaw(intrusive.NewPin(intrusive.NewRc(42)))

		clone := intrusive.CloneFromRaw[int, intrusive.Pin[intrusive.Rc[int]]](ops, slot)
		assert.Equal(t, 2, clone.Pointer().StrongCount())

		arcs := intrusive.PinArcOps[int]{}
		slot = arcs.IntoRaw(intrusive.NewPin(intrusive.NewArc(42)))
		aclone := intrusive.CloneFromRaw[int, intrusive.Pin[intrusive.Arc[int]]](arcs, slot)
		assert.Equal(t, 2, aclone.IntoInner().StrongCount())
	})

	t.Run("vla", func(t *testing.T) {
		ops := intrusive.RcOps[intrusive.VLA[int]]{}
		slot := ops.IntoRaw(intrusive.NewRcSlice([]int{1, 2, 3}))

		clone := intrusive.CloneFromRaw[intrusive.VLA[int], intrusive.Rc[intrusive.VLA[int]]](ops, slot)
		assert.Equal(t, slot, clone.Peek())
		assert.Equal(t, uintptr(3), clone.Peek().Meta())
		assert.Equal(t, 2, clone.StrongCount())
	})

	t.Run("unsafe-ref", func(t *testing.T) {
		ops := intrusive.UnsafeRefOps[int]{}
		slot := ops.IntoRaw(intrusive.UnsafeRefFromBox(intrusive.NewBox(42)))

		clone := intrusive.CloneFromRaw[int, intrusive.UnsafeRef[int]](ops, slot)
		assert.Equal(t, slot, clone.IntoRaw())
	})

	t.Run("uncloneable", func(t *testing.T) {
		ops := intrusive.PinBoxOps[int]{}
		slot := ops.IntoRaw(intrusive.NewPin(intrusive.NewBox(42)))

		assert.Panics(t, func() {
			intrusive.CloneFromRaw[int, intrusive.Pin[intrusive.Box[int]]](ops, slot)
		})
		assert.Equal(t, 42, *ops.FromRaw(slot).Pointer().Get())
	})
}

// flaky is an Rc whose Clone panics on demand.
type flaky struct {
	rc    intrusive.Rc[int]
	fail  bool
	early bool
}

func (f flaky) Clone() flaky {
	if f.early {
		panic("clone failed")
	}
	c := f.rc.Clone()
	if f.fail {
		c.Drop() // Undo before failing.
		panic("clone failed")
	}
	return flaky{rc: c}
}

// flakyOps counts conversions, so that tests can check that every FromRaw
// has a matching IntoRaw.
type flakyOps struct {
	fail, early bool
	from, into  *int
}

func (o flakyOps) FromRaw(raw intrusive.Raw[int]) flaky {
	*o.from++
	return flaky{rc: intrusive.RcFromRaw(raw), fail: o.fail, early: o.early}
}

func (o flakyOps) IntoRaw(ptr flaky) intrusive.Raw[int] {
	*o.into++
	return ptr.rc.IntoRaw()
}

func TestCloneFromRawPanic(t *testing.T) {
	t.Parallel()
	defer debug.WithTesting(t)()

	tests := []struct {
		name  string
		early bool
	}{
		{name: "before-increment", early: true},
		{name: "after-increment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var from, into int
			ops := flakyOps{fail: true, early: tt.early, from: &from, into: &into}
			slot := intrusive.RcOps[int]{}.IntoRaw(intrusive.NewRc(42))

			assert.PanicsWithValue(t, "clone failed", func() {
				intrusive.CloneFromRaw[int, flaky](ops, slot)
			})
			assert.Equal(t, 1, from)
			assert.Equal(t, 1, into)

			held := intrusive.RcOps[int]{}.FromRaw(slot)
			assert.Equal(t, 1, held.StrongCount())
			assert.Equal(t, 42, *held.Get())

			ops = flakyOps{from: &from, into: &into}
			clone := intrusive.CloneFromRaw[int, flaky](ops, held.IntoRaw())
			require.Equal(t, 2, clone.rc.StrongCount())
			assert.Equal(t, 2, from)
			assert.Equal(t, 2, into)
		})
	}
}
