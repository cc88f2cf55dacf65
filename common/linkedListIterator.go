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

// Position is a place in a LinkedList. Both ConstIterator and Iterator are positions, so
// either can be handed to LinkedList.InsertAfter and LinkedList.EraseAfter.
type Position[T comparable] interface {
	IsEnd() bool
	IsBeforeBegin() bool
	position() cursor[T]
}

// cursor is the traversal state shared by both iterator kinds. It does not own anything;
// gen and epoch are snapshots used to tell whether the referenced node is still alive.
type cursor[T comparable] struct {
	list  *LinkedList[T]
	ref   nodeRef
	gen   uint32
	epoch uint32
}

func (c cursor[T]) isEnd() bool {
	return c.list == nil || c.ref == nilNodeRef
}

func (c cursor[T]) isBeforeBegin() bool {
	return c.list != nil && c.ref == beforeBeginNodeRef
}

func (c cursor[T]) element() (*linkedListElement[T], error) {
	switch {
	case c.isEnd():
		return nil, ErrEndIterator
	case c.ref == beforeBeginNodeRef:
		return nil, ErrBeforeBeginIterator
	case c.epoch != c.list.epoch || !c.list.arena.live(c.ref, c.gen):
		return nil, ErrStaleIterator
	}
	return c.list.arena.get(c.ref), nil
}

func (c *cursor[T]) advance() error {
	if c.isEnd() {
		return ErrEndIterator
	}

	next := c.list.head
	if c.ref != beforeBeginNodeRef {
		e, err := c.element()
		if err != nil {
			return err
		}
		next = e.next
	}

	*c = c.list.cursorAt(next)
	return nil
}

func (c cursor[T]) equal(other cursor[T]) bool {
	if c.isEnd() || other.isEnd() {
		return c.isEnd() && other.isEnd()
	}
	return c == other
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// ConstIterator is a read-only cursor into a LinkedList.
// The zero value is an end iterator.
type ConstIterator[T comparable] struct {
	c cursor[T]
}

// Value returns the element the iterator refers to.
func (it ConstIterator[T]) Value() (T, error) {
	e, err := it.c.element()
	if err != nil {
		var zero T
		return zero, err
	}
	return e.data, nil
}

// Next moves the iterator to the following element, or to the end.
// Advancing the before-begin marker moves it to the first element.
func (it *ConstIterator[T]) Next() error {
	return it.c.advance()
}

func (it ConstIterator[T]) IsEnd() bool {
	return it.c.isEnd()
}

func (it ConstIterator[T]) IsBeforeBegin() bool {
	return it.c.isBeforeBegin()
}

// Equal reports whether both positions refer to the same node, or are both at the end.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.c.equal(other.position())
}

func (it ConstIterator[T]) position() cursor[T] {
	return it.c
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

// Iterator is a cursor that can also modify the element it refers to.
// It can be used wherever a ConstIterator is accepted, via Position or Const.
type Iterator[T comparable] struct {
	c cursor[T]
}

func (it Iterator[T]) Value() (T, error) {
	return it.Const().Value()
}

func (it *Iterator[T]) Next() error {
	return it.c.advance()
}

func (it Iterator[T]) IsEnd() bool {
	return it.c.isEnd()
}

func (it Iterator[T]) IsBeforeBegin() bool {
	return it.c.isBeforeBegin()
}

func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.c.equal(other.position())
}

// Set replaces the element the iterator refers to.
func (it Iterator[T]) Set(data T) error {
	e, err := it.c.element()
	if err != nil {
		return err
	}
	e.data = data
	return nil
}

// Update lets fn modify the element in place. The pointer must not be retained after fn
// returns, since later insertions may move the node storage.
func (it Iterator[T]) Update(fn func(*T)) error {
	e, err := it.c.element()
	if err != nil {
		return err
	}
	fn(&e.data)
	return nil
}

// Const drops the write capability.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{c: it.c}
}

func (it Iterator[T]) position() cursor[T] {
	return it.c
}
