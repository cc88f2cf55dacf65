// Copyright © 2025 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package common

// nodeRef is a 1-based index into a nodeArena. The zero value refers to no node,
// which keeps the zero value of LinkedList an empty list.
type nodeRef int32

const (
	nilNodeRef nodeRef = 0

	// beforeBeginNodeRef never names a slot. It marks the virtual position in front of the head.
	beforeBeginNodeRef nodeRef = -1
)

type linkedListElement[T any] struct {
	next       nodeRef
	generation uint32 // bumped every time the slot is released
	inUse      bool
	data       T
}

// nodeArena stores the nodes of one list in a growable slice. Released slots are
// threaded into a free list through their next field and reused before the slice grows.
// Not thread safe.
type nodeArena[T any] struct {
	elements []linkedListElement[T]
	freeHead nodeRef

	allocated uint64
	released  uint64
}

func (a *nodeArena[T]) reserve(capacity int) {
	if capacity > cap(a.elements) {
		grown := make([]linkedListElement[T], len(a.elements), capacity)
		copy(grown, a.elements)
		a.elements = grown
	}
}

// alloc returns a live slot holding data. The slot is not linked into any chain yet.
// grew reports whether the backing slice had to be extended.
func (a *nodeArena[T]) alloc(data T) (ref nodeRef, grew bool) {
	if a.freeHead != nilNodeRef {
		ref = a.freeHead
		e := a.get(ref)
		a.freeHead = e.next
		e.next = nilNodeRef
		e.inUse = true
		e.data = data
	} else {
		grew = len(a.elements) == cap(a.elements)
		a.elements = append(a.elements, linkedListElement[T]{inUse: true, data: data})
		ref = nodeRef(len(a.elements))
	}
	a.allocated++
	return ref, grew
}

// release frees a live slot and hands back the value it held.
func (a *nodeArena[T]) release(ref nodeRef) T {
	e := a.get(ref)
	data := e.data

	var zero T
	e.data = zero
	e.inUse = false
	e.generation++
	e.next = a.freeHead
	a.freeHead = ref

	a.released++
	return data
}

func (a *nodeArena[T]) get(ref nodeRef) *linkedListElement[T] {
	return &a.elements[ref-1]
}

// live reports whether ref still names the node that was observed at generation gen.
func (a *nodeArena[T]) live(ref nodeRef, gen uint32) bool {
	if ref <= nilNodeRef || int(ref) > len(a.elements) {
		return false
	}
	e := a.get(ref)
	return e.inUse && e.generation == gen
}

func (a *nodeArena[T]) inUse() uint64 {
	return a.allocated - a.released
}

// drop forgets every slot. Callers must have released all live slots first.
func (a *nodeArena[T]) drop() {
	a.elements = nil
	a.freeHead = nilNodeRef
}
