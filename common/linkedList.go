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

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Singly linked list backed by a node arena. Not thread safe; concurrent readers are fine
// only while nobody mutates the list.

type LinkedListOptions[T any] struct {
	// InitialCapacity pre-sizes the node arena.
	InitialCapacity int

	// OnRelease is called exactly once for every node the list releases, whichever
	// operation released it (EraseAfter, PopFront, Clear, Destroy).
	OnRelease func(T)

	// Logger receives debug and warning messages. Nil disables logging.
	Logger ILogger
}

// LinkedList is a forward-only sequence of T. The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	arena nodeArena[T]
	head  nodeRef
	tail  nodeRef // kept equal to the last node so PushBack is O(1)
	len   int64
	epoch uint32 // bumped by Destroy, which invalidates every outstanding iterator

	onRelease func(T)
	logger    ILogger
}

// LinkedListCounter reports node bookkeeping of a single list.
type LinkedListCounter struct {
	AllocatedNodes uint64
	ReleasedNodes  uint64
	InUseNodes     uint64
	ArenaSlots     int
}

func NewLinkedList[T comparable](values ...T) *LinkedList[T] {
	return NewLinkedListWithOptions(LinkedListOptions[T]{}, values...)
}

// NewLinkedListWithOptions creates a list and appends values in order.
func NewLinkedListWithOptions[T comparable](opts LinkedListOptions[T], values ...T) *LinkedList[T] {
	l := &LinkedList[T]{
		onRelease: opts.OnRelease,
		logger:    opts.Logger,
	}
	l.arena.reserve(max(opts.InitialCapacity, len(values)))

	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// CollectLinkedList appends every value produced by seq. If seq reports an error, or
// panics, the nodes created so far are released before returning.
func CollectLinkedList[T comparable](seq iter.Seq2[T, error], opts LinkedListOptions[T]) (*LinkedList[T], error) {
	l := NewLinkedListWithOptions(opts)

	completed := false
	defer func() {
		if !completed {
			l.Destroy()
		}
	}()

	for v, err := range seq {
		if err != nil {
			return nil, errors.Wrapf(err, "failed to produce element %d", l.len+1)
		}
		l.PushBack(v)
	}

	completed = true
	return l, nil
}

func (l *LinkedList[T]) Len() int64 {
	return l.len
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nilNodeRef
}

func (l *LinkedList[T]) Front() (T, error) {
	if l.head == nilNodeRef {
		var zero T
		return zero, errors.Wrap(ErrEmptyList, "front")
	}
	return l.arena.get(l.head).data, nil
}

func (l *LinkedList[T]) Back() (T, error) {
	if l.tail == nilNodeRef {
		var zero T
		return zero, errors.Wrap(ErrEmptyList, "back")
	}
	return l.arena.get(l.tail).data, nil
}

func (l *LinkedList[T]) Counter() LinkedListCounter {
	return LinkedListCounter{
		AllocatedNodes: l.arena.allocated,
		ReleasedNodes:  l.arena.released,
		InUseNodes:     l.arena.inUse(),
		ArenaSlots:     len(l.arena.elements),
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (l *LinkedList[T]) PushFront(data T) {
	l.linkFront(l.newNode(data))
}

func (l *LinkedList[T]) PushBack(data T) {
	ref := l.newNode(data)
	if l.tail == nilNodeRef {
		l.head = ref
		l.tail = ref
		return
	}

	l.arena.get(l.tail).next = ref
	l.tail = ref
}

// InsertAfter links a new node holding data right after pos and returns an iterator to it.
// Inserting after BeforeBegin prepends.
func (l *LinkedList[T]) InsertAfter(pos Position[T], data T) (Iterator[T], error) {
	c := pos.position()
	if err := l.checkAnchor("insert after", c); err != nil {
		return l.End(), err
	}

	// allocate first: nothing is relinked until the node exists
	ref := l.newNode(data)
	if c.ref == beforeBeginNodeRef {
		l.linkFront(ref)
		return Iterator[T]{c: l.cursorAt(ref)}, nil
	}

	prev := l.arena.get(c.ref)
	l.arena.get(ref).next = prev.next
	prev.next = ref
	if l.tail == c.ref {
		l.tail = ref
	}
	return Iterator[T]{c: l.cursorAt(ref)}, nil
}

// EraseAfter removes the node following pos and reports whether one was removed.
// Erasing after the last node is a no-op. Erasing after BeforeBegin removes the head and
// fails with ErrEmptyList on an empty list.
func (l *LinkedList[T]) EraseAfter(pos Position[T]) (bool, error) {
	c := pos.position()
	if err := l.checkAnchor("erase after", c); err != nil {
		return false, err
	}

	if c.ref == beforeBeginNodeRef {
		if l.head == nilNodeRef {
			return false, errors.Wrap(ErrEmptyList, "erase after")
		}
		l.unlinkFront()
		return true, nil
	}

	prev := l.arena.get(c.ref)
	victim := prev.next
	if victim == nilNodeRef {
		return false, nil
	}

	prev.next = l.arena.get(victim).next
	if victim == l.tail {
		l.tail = c.ref
		l.logf(LogDebug, "erased the last node, tail moved back to its predecessor")
	}
	l.releaseNode(victim)
	return true, nil
}

// PopFront removes the first element and returns it.
func (l *LinkedList[T]) PopFront() (T, error) {
	if l.head == nilNodeRef {
		var zero T
		return zero, errors.Wrap(ErrEmptyList, "pop front")
	}
	return l.unlinkFront(), nil
}

// Clear releases every node, front to back. The arena keeps its storage for reuse.
func (l *LinkedList[T]) Clear() {
	for l.head != nilNodeRef {
		l.unlinkFront()
	}
}

// Destroy releases every node and drops the arena storage. Every iterator obtained before
// the call is invalidated. The list can still be used afterwards.
func (l *LinkedList[T]) Destroy() {
	l.Clear()
	l.arena.drop()
	l.epoch++
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Find returns an iterator to the first element equal to data, or End.
func (l *LinkedList[T]) Find(data T) Iterator[T] {
	return Iterator[T]{c: l.find(func(v T) bool { return v == data })}
}

// CFind is the read-only form of Find.
func (l *LinkedList[T]) CFind(data T) ConstIterator[T] {
	return ConstIterator[T]{c: l.find(func(v T) bool { return v == data })}
}

func (l *LinkedList[T]) FindFunc(match func(T) bool) Iterator[T] {
	return Iterator[T]{c: l.find(match)}
}

func (l *LinkedList[T]) find(match func(T) bool) cursor[T] {
	for ref := l.head; ref != nilNodeRef; ref = l.arena.get(ref).next {
		if match(l.arena.get(ref).data) {
			return l.cursorAt(ref)
		}
	}
	return l.cursorAt(nilNodeRef)
}

func (l *LinkedList[T]) Begin() Iterator[T] {
	return Iterator[T]{c: l.cursorAt(l.head)}
}

func (l *LinkedList[T]) End() Iterator[T] {
	return Iterator[T]{c: l.cursorAt(nilNodeRef)}
}

func (l *LinkedList[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{c: l.cursorAt(l.head)}
}

func (l *LinkedList[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{c: l.cursorAt(nilNodeRef)}
}

// BeforeBegin returns the marker in front of the first element. It is only meaningful as
// an argument to InsertAfter and EraseAfter, or as a starting point for Next.
func (l *LinkedList[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{c: l.cursorAt(beforeBeginNodeRef)}
}

func (l *LinkedList[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{c: l.cursorAt(beforeBeginNodeRef)}
}

// All yields the elements front to back. The list must not be modified while ranging.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := l.head; ref != nilNodeRef; ref = l.arena.get(ref).next {
			if !yield(l.arena.get(ref).data) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.len)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String renders the list as "[ a b c ]".
func (l *LinkedList[T]) String() string {
	return FormatBracketed(l.All())
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

func (l *LinkedList[T]) cursorAt(ref nodeRef) cursor[T] {
	c := cursor[T]{list: l, ref: ref, epoch: l.epoch}
	if ref > nilNodeRef {
		c.gen = l.arena.get(ref).generation
	}
	return c
}

// checkAnchor validates a position used as the predecessor of an insert or erase.
func (l *LinkedList[T]) checkAnchor(op string, c cursor[T]) error {
	var err error
	switch {
	case c.isEnd():
		return errors.Wrap(ErrEndIterator, op)
	case c.list != l:
		err = ErrForeignIterator
	case c.ref == beforeBeginNodeRef:
		return nil
	case c.epoch != l.epoch || !l.arena.live(c.ref, c.gen):
		err = ErrStaleIterator
	default:
		return nil
	}

	l.logf(LogWarning, "%s rejected an iterator: %v", op, err)
	return errors.Wrap(err, op)
}

func (l *LinkedList[T]) newNode(data T) nodeRef {
	ref, grew := l.arena.alloc(data)
	if grew {
		l.logf(LogDebug, "node arena grew to %d slots", cap(l.arena.elements))
	}
	l.len++
	return ref
}

func (l *LinkedList[T]) linkFront(ref nodeRef) {
	l.arena.get(ref).next = l.head
	l.head = ref
	if l.tail == nilNodeRef {
		l.tail = ref
	}
}

func (l *LinkedList[T]) unlinkFront() T {
	victim := l.head
	l.head = l.arena.get(victim).next
	if l.head == nilNodeRef {
		l.tail = nilNodeRef
	}
	return l.releaseNode(victim)
}

func (l *LinkedList[T]) releaseNode(ref nodeRef) T {
	data := l.arena.release(ref)
	l.len--
	if l.onRelease != nil {
		l.onRelease(data)
	}
	return data
}

func (l *LinkedList[T]) logf(level LogLevel, format string, a ...any) {
	if l.logger != nil && l.logger.ShouldLog(level) {
		l.logger.Log(level, fmt.Sprintf(format, a...))
	}
}
