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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/intrusive"
)

func TestRaw(t *testing.T) {
	t.Parallel()

	var zero intrusive.Raw[int]
	assert.True(t, zero.IsNil())
	assert.Nil(t, zero.Get())
	assert.Equal(t, 0, zero.Len())

	x := 5
	raw := intrusive.RawOf(&x)
	assert.False(t, raw.IsNil())
	assert.Same(t, &x, raw.Get())
	assert.Equal(t, uintptr(0), raw.Meta())
	assert.Equal(t, fmt.Sprintf("%#x", raw.Addr()), fmt.Sprint(raw))
	assert.Equal(t, intrusive.RawOf(&x), raw)
}

func TestRawSlice(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3, 4}
	raw := intrusive.RawSlice(s)
	assert.Equal(t, uintptr(4), raw.Meta())
	assert.Equal(t, 4, raw.Len())
	assert.Equal(t, s, intrusive.Elems(raw))
	assert.Same(t, &s[2], raw.Get().At(2))
	assert.Equal(t, fmt.Sprintf("%#x[4]", raw.Addr()), fmt.Sprint(raw))

	// Same address, different length.
	assert.NotEqual(t, raw, intrusive.RawSlice(s[:2]))

	intrusive.Elems(raw)[0] = 10
	assert.Equal(t, 10, s[0])
}
