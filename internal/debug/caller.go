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

package debug

import "strings"

// TB is the part of [testing.TB] that logs are routed to.
type TB interface {
	Helper()
	Log(args ...any)
}

// funcName returns the unqualified name of a function from its
// [runtime.Func] name, without any type arguments.
func funcName(qualified string) string {
	qualified = strings.ReplaceAll(qualified, "[...]", "")
	return qualified[strings.LastIndexByte(qualified, '.')+1:]
}
