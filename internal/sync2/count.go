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

// Package sync2 provides the strong-reference counters used by the counted
// pointer kinds.
package sync2

import (
	"math"
	"sync/atomic"
)

// Count is a non-atomic strong reference count.
//
// A Count must not be shared between goroutines.
type Count int

// Init sets the count to one, i.e. a single freshly allocated owner.
func (c *Count) Init() {
	*c = 1
}

// Load returns the current count.
func (c *Count) Load() int {
	return int(*c)
}

// Inc increments the count and returns the new value.
//
// Panics if the count would overflow.
func (c *Count) Inc() int {
	if *c == math.MaxInt {
		panic("intrusive: reference count overflow")
	}
	*c++
	return int(*c)
}

// Dec decrements the count and returns the new value.
func (c *Count) Dec() int {
	*c--
	return int(*c)
}

// IsUnique returns whether exactly one owner exists.
func (c *Count) IsUnique() bool {
	return *c == 1
}

// AtomicCount is an atomic strong reference count.
type AtomicCount atomic.Int64

// Init sets the count to one, i.e. a single freshly allocated owner.
//
// Init must happen before the count is published to other goroutines.
func (c *AtomicCount) Init() {
	(*atomic.Int64)(c).Store(1)
}

// Load atomically returns the current count.
func (c *AtomicCount) Load() int {
	return int((*atomic.Int64)(c).Load())
}

// Inc atomically increments the count and returns the new value.
//
// Panics if the count would overflow, leaving it unchanged.
func (c *AtomicCount) Inc() int {
	v := (*atomic.Int64)(c)
	for {
		n := v.Load()
		if n == math.MaxInt64 {
			panic("intrusive: reference count overflow")
		}
		if v.CompareAndSwap(n, n+1) {
			return int(n + 1)
		}
	}
}

// Dec atomically decrements the count and returns the new value.
func (c *AtomicCount) Dec() int {
	return int((*atomic.Int64)(c).Add(-1))
}

// IsUnique atomically checks whether exactly one owner exists.
//
// This is a single atomic load, so it is ordered with respect to every Inc
// and Dec on other goroutines. A true result can only be invalidated by the
// caller itself, since the caller is the only one holding a handle that could
// be duplicated.
func (c *AtomicCount) IsUnique() bool {
	return (*atomic.Int64)(c).Load() == 1
}
