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

package listops

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/wastore/forwardlist/common"
)

// Executor runs scripts against one list. It keeps a cursor that find, begin,
// before_begin, next and insert_after move, and that insert_after, erase_after and set act on.
// An Executor is not safe for concurrent use.
type Executor[T comparable] struct {
	list   *common.LinkedList[T]
	cursor common.Iterator[T]
	parse  func(string) (T, error)
}

func NewExecutor[T comparable](parse func(string) (T, error), opts common.LinkedListOptions[T], initial ...T) *Executor[T] {
	list := common.NewLinkedListWithOptions(opts, initial...)
	return &Executor[T]{
		list:   list,
		cursor: list.BeforeBegin(),
		parse:  parse,
	}
}

func (e *Executor[T]) List() *common.LinkedList[T] {
	return e.list
}

func (e *Executor[T]) Cursor() common.ConstIterator[T] {
	return e.cursor.Const()
}

// Run applies steps in order and returns the lines printed by print, front, back and len.
// It stops at the first failing step; the lines printed before it are still returned.
func (e *Executor[T]) Run(ctx context.Context, steps []Step) ([]string, error) {
	var transcript []string

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return transcript, err
		}

		line, printed, err := e.apply(step)
		if err != nil {
			return transcript, errors.Wrapf(err, "line %d: %s", step.Line, step)
		}
		if printed {
			transcript = append(transcript, line)
		}
	}

	return transcript, nil
}

func (e *Executor[T]) apply(step Step) (string, bool, error) {
	var arg T
	if step.Op.TakesArgument() {
		var err error
		if arg, err = e.parse(step.Arg); err != nil {
			return "", false, err
		}
	}

	switch step.Op {
	case EOperation.PushFront():
		e.list.PushFront(arg)
	case EOperation.PushBack():
		e.list.PushBack(arg)
	case EOperation.InsertAfter():
		inserted, err := e.list.InsertAfter(e.cursor, arg)
		if err != nil {
			return "", false, err
		}
		e.cursor = inserted
	case EOperation.EraseAfter():
		if _, err := e.list.EraseAfter(e.cursor); err != nil {
			return "", false, err
		}
	case EOperation.PopFront():
		if _, err := e.list.PopFront(); err != nil {
			return "", false, err
		}
	case EOperation.Clear():
		e.list.Clear()
		e.cursor = e.list.BeforeBegin()
	case EOperation.Find():
		e.cursor = e.list.Find(arg)
	case EOperation.Begin():
		e.cursor = e.list.Begin()
	case EOperation.BeforeBegin():
		e.cursor = e.list.BeforeBegin()
	case EOperation.Next():
		return "", false, e.cursor.Next()
	case EOperation.Set():
		return "", false, e.cursor.Set(arg)
	case EOperation.Print():
		return e.list.String(), true, nil
	case EOperation.Front():
		v, err := e.list.Front()
		if err != nil {
			return "", false, err
		}
		return fmt.Sprint(v), true, nil
	case EOperation.Back():
		v, err := e.list.Back()
		if err != nil {
			return "", false, err
		}
		return fmt.Sprint(v), true, nil
	case EOperation.Len():
		return strconv.FormatInt(e.list.Len(), 10), true, nil
	default:
		return "", false, errors.Wrapf(ErrUnknownOperation, "%d", uint8(step.Op))
	}

	return "", false, nil
}
