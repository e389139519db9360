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

// Package list is a doubly-linked intrusive list, generic over how it owns
// its elements.
package list

import (
	"fmt"
	"iter"

	"buf.build/go/intrusive"
	"buf.build/go/intrusive/internal/dbg"
	"buf.build/go/intrusive/internal/debug"
)

// Link is the part of a value that a [List] uses to chain it to its
// neighbors. Embed one in each value type, and pass a function that finds it
// to [New].
//
// A value may be in at most one list per Link it contains.
type Link[T any] struct {
	next, prev intrusive.Raw[T]
	linked     bool
}

// IsLinked returns whether the value containing l is in a list.
func (l *Link[T]) IsLinked() bool {
	return l.linked
}

// List is an intrusive doubly-linked list of T, which takes ownership of the
// pointers of type P inserted into it through O.
//
// A zero List is not usable; use [New].
type List[T, P any, O intrusive.PointerOps[T, P]] struct {
	ops  O
	link func(*T) *Link[T]

	head, tail intrusive.Raw[T]
	len        int
}

// New returns an empty list that finds the [Link] of each value with link.
func New[T, P any, O intrusive.PointerOps[T, P]](ops O, link func(*T) *Link[T]) *List[T, P, O] {
	return &List[T, P, O]{ops: ops, link: link}
}

// Len returns the number of values in the list.
func (l *List[T, P, O]) Len() int {
	return l.len
}

// Front returns the first value, or nil if the list is empty.
func (l *List[T, P, O]) Front() *T {
	return l.head.Get()
}

// Back returns the last value, or nil if the list is empty.
func (l *List[T, P, O]) Back() *T {
	return l.tail.Get()
}

// PushFront inserts ptr at the front of the list.
//
// Panics if ptr's value is already linked.
func (l *List[T, P, O]) PushFront(ptr P) {
	raw := l.acquire(ptr)
	l.link(raw.Get()).next = l.head
	if l.head.IsNil() {
		l.tail = raw
	} else {
		l.link(l.head.Get()).prev = raw
	}
	l.head = raw
}

// PushBack inserts ptr at the back of the list.
//
// Panics if ptr's value is already linked.
func (l *List[T, P, O]) PushBack(ptr P) {
	raw := l.acquire(ptr)
	l.link(raw.Get()).prev = l.tail
	if l.tail.IsNil() {
		l.head = raw
	} else {
		l.link(l.tail.Get()).next = raw
	}
	l.tail = raw
}

// PopFront removes the first value and returns its pointer.
func (l *List[T, P, O]) PopFront() (P, bool) {
	if l.head.IsNil() {
		var z P
		return z, false
	}
	return l.release(l.head), true
}

// PopBack removes the last value and returns its pointer.
func (l *List[T, P, O]) PopBack() (P, bool) {
	if l.tail.IsNil() {
		var z P
		return z, false
	}
	return l.release(l.tail), true
}

// Remove removes v, which must be in this list, and returns its pointer.
//
// Panics if v is not linked.
func (l *List[T, P, O]) Remove(v *T) P {
	if !l.link(v).linked {
		panic("intrusive/list: removing a value that is not linked")
	}
	return l.release(l.stored(v))
}

// All returns an iterator over the values in the list, front to back.
//
// The list must not be modified while iterating.
func (l *List[T, P, O]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for raw := l.head; !raw.IsNil(); raw = l.link(raw.Get()).next {
			if !yield(raw.Get()) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes values from the front of the list
// and yields their pointers. Stopping early leaves the rest in the list.
func (l *List[T, P, O]) Drain() iter.Seq[P] {
	return func(yield func(P) bool) {
		for {
			ptr, ok := l.PopFront()
			if !ok || !yield(ptr) {
				return
			}
		}
	}
}

// Mut returns v for mutation, if the list's pointer kind can prove that the
// list is v's only owner. v must be in this list.
func (l *List[T, P, O]) Mut(v *T) (*T, bool) {
	ops, ok := any(l.ops).(intrusive.TryExclusivePointerOps[T, P])
	if !ok || !l.link(v).linked {
		return nil, false
	}
	raw, ok := ops.TryGetMut(l.stored(v))
	return raw.Get(), ok
}

// CloneFront returns a new pointer to the first value, leaving the list as it
// was.
func CloneFront[T any, P intrusive.Cloner[P], O intrusive.PointerOps[T, P]](l *List[T, P, O]) (P, bool) {
	if l.head.IsNil() {
		var z P
		return z, false
	}
	return intrusive.CloneFromRaw[T, P](l.ops, l.head), true
}

// Format implements [fmt.Formatter].
//
// With %+v, this also prints the address of every value.
func (l *List[T, P, O]) Format(s fmt.State, verb rune) {
	kv := []any{"len", l.len, "link", dbg.Func(l.link)}
	if s.Flag('+') {
		kv = append(kv, "head", l.head, "tail", l.tail)
	}
	dbg.Dict(fmt.Sprintf("List[%T]", l.ops), kv...).Format(s, verb)
}

// stored returns the address the list holds for v, which carries v's
// metadata. v must be linked into l.
func (l *List[T, P, O]) stored(v *T) intrusive.Raw[T] {
	raw := l.head
	if prev := l.link(v).prev; !prev.IsNil() {
		raw = l.link(prev.Get()).next
	}
	debug.Assert(raw.Get() == v, "%v is not in %p", intrusive.RawOf(v), l)
	return raw
}

// acquire takes ownership of ptr and marks its value linked.
func (l *List[T, P, O]) acquire(ptr P) intrusive.Raw[T] {
	raw := l.ops.IntoRaw(ptr)
	link := l.link(raw.Get())
	if link.linked {
		// Drop the duplicate reference that ptr held.
		ptr = l.ops.FromRaw(raw)
		if _, shared := any(ptr).(intrusive.Cloner[P]); shared {
			if d, ok := any(ptr).(intrusive.Dropper); ok {
				d.Drop()
			}
		}
		panic("intrusive/list: inserting a value that is already linked")
	}
	link.linked = true
	l.len++

	if debug.Enabled {
		debug.Log([]any{"%p", l}, "link", "%v, len=%d", raw, l.len)
	}
	return raw
}

// release unlinks raw and hands ownership back as a pointer.
func (l *List[T, P, O]) release(raw intrusive.Raw[T]) P {
	link := l.link(raw.Get())
	if link.prev.IsNil() {
		l.head = link.next
	} else {
		l.link(link.prev.Get()).next = link.next
	}
	if link.next.IsNil() {
		l.tail = link.prev
	} else {
		l.link(link.next.Get()).prev = link.prev
	}
	*link = Link[T]{}
	l.len--

	if debug.Enabled {
		debug.Log([]any{"%p", l}, "unlink", "%v, len=%d", raw, l.len)
	}
	return l.ops.FromRaw(raw)
}
