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

package sync2_test

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/intrusive/internal/sync2"
)

func TestCount(t *testing.T) {
	t.Parallel()

	var c sync2.Count
	c.Init()
	assert.True(t, c.IsUnique())
	assert.Equal(t, 2, c.Inc())
	assert.False(t, c.IsUnique())
	assert.Equal(t, 1, c.Dec())
	assert.True(t, c.IsUnique())
	assert.Equal(t, 0, c.Dec())
	assert.Equal(t, 0, c.Load())

	c = math.MaxInt
	assert.Panics(t, func() { c.Inc() })
}

func TestAtomicCount(t *testing.T) {
	t.Parallel()

	c := new(sync2.AtomicCount)
	c.Init()
	assert.True(t, c.IsUnique())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				c.Inc()
			}
			for range 1000 {
				c.Dec()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, c.Load())
	assert.True(t, c.IsUnique())
	assert.Equal(t, 0, c.Dec())
}

func TestAtomicCountOverflow(t *testing.T) {
	t.Parallel()

	c := new(sync2.AtomicCount)
	(*atomic.Int64)(c).Store(math.MaxInt64)
	assert.PanicsWithValue(t, "intrusive: reference count overflow", func() { c.Inc() })
	assert.Equal(t, math.MaxInt64, c.Load())
	assert.Equal(t, math.MaxInt64-1, c.Dec())
	assert.Equal(t, math.MaxInt64, c.Inc())
}
