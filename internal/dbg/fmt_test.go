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

package dbg_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"buf.build/go/intrusive/internal/dbg"
)

func TestDict(t *testing.T) {
	t.Parallel()

	d := dbg.Dict("Rc", "ptr", dbg.Fprintf("%d", 5), "strong", 2)
	assert.Equal(t, "Rc{ptr: 5, strong: 2}", fmt.Sprint(d))
	assert.Equal(t, "Rc{\n  ptr: 5\n  strong: 2\n}", fmt.Sprintf("%+v", d))
	assert.Equal(t, "{}", dbg.Dict("").String())
}

func TestFunc(t *testing.T) {
	t.Parallel()

	assert.Contains(t, dbg.Func(TestFunc).String(), "dbg_test.TestFunc")
	assert.Contains(t, dbg.Func(42).String(), "NONFUNC")
}
