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

func TestHandleFormat(t *testing.T) {
	t.Parallel()

	rc := intrusive.NewRc(1)
	defer rc.Drop()
	c := rc.Clone()
	defer c.Drop()
	assert.Equal(t, fmt.Sprintf("Rc{ptr: %v, strong: 2}", rc.Peek()), fmt.Sprint(rc))

	arc := intrusive.NewArcSlice([]int{1, 2})
	defer arc.Drop()
	assert.Equal(t, fmt.Sprintf("Arc{ptr: %v, strong: 1}", arc.Peek()), fmt.Sprint(arc))
	assert.Contains(t, fmt.Sprint(arc), "[2]")

	b := intrusive.NewBox(1)
	assert.Equal(t, fmt.Sprintf("Pin(Box{ptr: %v})", b.Peek()), fmt.Sprint(intrusive.NewPin(b)))

	assert.Equal(t, "Rc{ptr: 0x0}", fmt.Sprint(intrusive.Rc[int]{}))
}
