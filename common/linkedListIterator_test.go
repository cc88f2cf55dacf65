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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIterator_EndCannotBeDereferencedOrAdvanced(t *testing.T) {
	l, a := setupListTest(t, 1)

	end := l.End()
	_, err := end.Value()
	a.True(errors.Is(err, ErrEndIterator))
	a.True(errors.Is(end.Next(), ErrEndIterator))
	a.True(errors.Is(end.Set(3), ErrEndIterator))

	var zero ConstIterator[int]
	a.True(zero.IsEnd())
	a.True(zero.Equal(l.CEnd()))
	_, err = zero.Value()
	a.True(errors.Is(err, ErrEndIterator))
}

func TestIterator_BeforeBegin(t *testing.T) {
	l, a := setupListTest(t, 1, 2)

	it := l.BeforeBegin()
	a.True(it.IsBeforeBegin())
	a.False(it.IsEnd())
	_, err := it.Value()
	a.True(errors.Is(err, ErrBeforeBeginIterator))
	a.True(errors.Is(it.Set(0), ErrBeforeBeginIterator))

	a.NoError(it.Next())
	a.True(it.Equal(l.Begin()))

	// before-begin of an empty list advances straight to the end
	empty := NewLinkedList[int]()
	cit := empty.CBeforeBegin()
	a.NoError(cit.Next())
	a.True(cit.IsEnd())
}

func TestIterator_SetAndUpdate(t *testing.T) {
	l, a := setupListTest(t, 1, 2, 3)

	it := l.Find(2)
	a.NoError(it.Set(20))
	a.NoError(l.Begin().Update(func(v *int) { *v += 10 }))

	a.Equal([]int{11, 20, 3}, l.Values())

	v, err := it.Const().Value()
	a.NoError(err)
	a.Equal(20, v)
}

func TestIterator_ConstIteratorIsAcceptedAsPosition(t *testing.T) {
	l, a := setupListTest(t, 1, 2, 3)

	_, err := l.InsertAfter(l.CFind(1), 5)
	a.NoError(err)
	removed, err := l.EraseAfter(l.CBegin())
	a.NoError(err)
	a.True(removed)
	a.Equal([]int{1, 2, 3}, l.Values())

	// and a mutable iterator wherever a const one is compared
	a.True(l.CBegin().Equal(l.Begin()))
	a.True(l.Begin().Const().Equal(l.CBegin()))
}

func TestIterator_Equality(t *testing.T) {
	a := assert.New(t)
	first := NewLinkedList(1, 2)
	second := NewLinkedList(1, 2)

	a.True(first.End().Equal(second.End()))
	a.False(first.Begin().Equal(second.Begin()))
	a.False(first.Begin().Equal(first.End()))
	a.False(first.BeforeBegin().Equal(first.Begin()))
	a.True(first.BeforeBegin().Equal(first.CBeforeBegin()))
}

func TestIterator_StaleAfterErase(t *testing.T) {
	l, a := setupListTest(t, 1, 2, 3)

	it := l.Find(2)
	_, err := l.EraseAfter(l.Find(1))
	a.NoError(err)

	_, err = it.Value()
	a.True(errors.Is(err, ErrStaleIterator))
	a.True(errors.Is(it.Next(), ErrStaleIterator))

	// the freed slot is reused, the old iterator must not see the new value
	l.PushBack(9)
	_, err = it.Value()
	a.True(errors.Is(err, ErrStaleIterator))

	_, err = l.InsertAfter(it, 4)
	a.True(errors.Is(err, ErrStaleIterator))
	_, err = l.EraseAfter(it)
	a.True(errors.Is(err, ErrStaleIterator))
	a.Equal([]int{1, 3, 9}, l.Values())
}

func TestIterator_StaleAfterDestroy(t *testing.T) {
	l, a := setupListTest(t, 1)

	it := l.Begin()
	l.Destroy()
	l.PushBack(1)

	_, err := it.Value()
	a.True(errors.Is(err, ErrStaleIterator))
	a.False(it.Equal(l.Begin()))
}

func TestIterator_ForeignPositionIsRejected(t *testing.T) {
	var buf bytes.Buffer
	a := assert.New(t)
	mine := NewLinkedListWithOptions(LinkedListOptions[int]{Logger: NewStreamLogger(&buf, LogWarning)}, 1)
	theirs := NewLinkedList(1)

	_, err := mine.InsertAfter(theirs.Begin(), 2)
	a.True(errors.Is(err, ErrForeignIterator))
	_, err = mine.EraseAfter(theirs.BeforeBegin())
	a.True(errors.Is(err, ErrForeignIterator))

	a.Equal([]int{1}, mine.Values())
	a.Equal([]int{1}, theirs.Values())
	a.Contains(buf.String(), "Warning: insert after rejected an iterator")
}
