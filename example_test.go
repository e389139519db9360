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

	"buf.build/go/intrusive"
	"buf.build/go/intrusive/list"
)

func Example() {
	ops := intrusive.BoxOps[int]{}

	b := intrusive.NewBox(42)
	addr := b.Peek()

	raw := ops.IntoRaw(b)
	fmt.Println(raw == addr)

	b = ops.FromRaw(raw)
	fmt.Println(*b.Get(), b.Peek() == addr)
	b.Drop()

	// Output:
	// true
	// 42 true
}

type task struct {
	name string
	link list.Link[task]
}

func (t *task) Drop() {
	fmt.Println("done:", t.name)
}

func Example_list() {
	l := list.New[task, intrusive.Rc[task]](intrusive.RcOps[task]{}, func(t *task) *list.Link[task] { return &t.link })
	for _, name := range []string{"a", "b", "c"} {
		l.PushBack(intrusive.NewRc(task{name: name}))
	}

	// Only the list owns each task, so it may hand out mutable access.
	first := l.Front()
	if t, ok := l.Mut(first); ok {
		t.name = "A"
	}

	// A second owner makes the front task read-only to the list.
	shared, _ := list.CloneFront(l)
	_, ok := l.Mut(first)
	fmt.Println("mutable while shared:", ok)

	for rc := range l.Drain() {
		rc.Drop()
	}
	shared.Drop()

	// Output:
	// mutable while shared: false
	// done: b
	// done: c
	// done: A
}
