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

package xunsafe_test

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"buf.build/go/intrusive/internal/xunsafe"
)

func TestHeader(t *testing.T) {
	t.Parallel()

	type header struct{ n int }
	p := new(struct {
		header header
		value  [5]byte
	})
	p.header.n = 42

	h := xunsafe.Header[header, [5]byte](unsafe.Pointer(&p.value))
	assert.Same(t, &p.header, h)
	assert.Equal(t, 42, h.n)
}

func TestAdd(t *testing.T) {
	t.Parallel()

	s := []int32{1, 2, 3, 4}
	p := xunsafe.Add(&s[0], 3)
	assert.Same(t, &s[3], p)
	assert.Same(t, &s[1], xunsafe.Add(p, -2))
	assert.Same(t, &s[2], xunsafe.ByteAdd[int32](unsafe.Pointer(&s[0]), 8))
	assert.Equal(t, 12, xunsafe.AddrOf(&s[3]).Offset(xunsafe.AddrOf(&s[0])))
}

func TestAddrFormat(t *testing.T) {
	t.Parallel()

	a := xunsafe.Addr[int](0xabc)
	assert.Equal(t, "0xabc", fmt.Sprint(a))
	assert.Equal(t, "abc", fmt.Sprintf("%x", a))
	assert.Equal(t, "2748", fmt.Sprintf("%d", a))
}
