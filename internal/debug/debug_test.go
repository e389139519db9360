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

//go:build debug

package debug

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
}

func (r *recorder) Helper()         {}
func (r *recorder) Log(args ...any) { r.lines = append(r.lines, fmt.Sprint(args...)) }

func logValue[T any](v T) {
	Log([]any{"%T", v}, "value", "%v", v)
}

func TestLogCallSite(t *testing.T) {
	t.Parallel()

	r := new(recorder)
	defer WithTesting(r)()

	_, _, line, _ := runtime.Caller(0)
	logValue(42)

	require.Len(t, r.lines, 1)
	assert.Contains(t, r.lines[0], fmt.Sprintf("debug/debug_test.go:%d ", line+1))
	assert.Contains(t, r.lines[0], "] value: 42")
}
