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

// Package dbg contains lazy formatting helpers for printing internal state.
package dbg

import (
	"fmt"
	"reflect"
	"runtime"
)

// Formatter is a [fmt.Formatter] that just calls a function.
type Formatter func(s fmt.State)

// Format implements [fmt.Formatter].
func (f Formatter) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%%!%c(%T=%v)", verb, f, Func(f))
		return
	}
	f(s)
}

// String implements [fmt.Stringer].
func (f Formatter) String() string { return fmt.Sprint(f) }

// Fprintf is like [fmt.Fprintf], but the printing is delayed until the
// returned value is formatted with %v.
func Fprintf(format string, args ...any) Formatter {
	return Formatter(func(s fmt.State) { fmt.Fprintf(s, format, args...) })
}

// Dict prints name followed by a braced list of key-value pairs.
//
// With %+v, each pair goes on its own line.
func Dict(name string, kv ...any) Formatter {
	return Formatter(func(s fmt.State) {
		multiline := s.Flag('+')
		fmt.Fprintf(s, "%s{", name)
		for i := 0; i+1 < len(kv); i += 2 {
			switch {
			case multiline:
				fmt.Fprint(s, "\n  ")
			case i > 0:
				fmt.Fprint(s, ", ")
			}
			fmt.Fprintf(s, "%v: %v", kv[i], kv[i+1])
		}
		if multiline && len(kv) > 1 {
			fmt.Fprint(s, "\n")
		}
		fmt.Fprint(s, "}")
	})
}

// Func pretty-prints a function value.
func Func(f any) Formatter {
	return Formatter(func(s fmt.State) {
		v := reflect.ValueOf(f)

		var pc uintptr
		switch v.Kind() {
		case reflect.Func:
			pc = uintptr(v.UnsafePointer())
		case reflect.Uintptr:
			pc = uintptr(v.Uint())
		default:
			fmt.Fprintf(s, "%%!v(NONFUNC:%v)", v)
			return
		}

		name := "<unknown>"
		if fn := runtime.FuncForPC(pc); fn != nil && fn.Name() != "" {
			name = fn.Name()
		}
		fmt.Fprintf(s, "%#x:%s", pc, name)
	})
}
