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
	"iter"

	"github.com/pkg/errors"

	"github.com/wastore/forwardlist/common"
)

// DemoScript walks a list built from DemoValues through every kind of mutation.
const DemoScript = `
print
find 2
insert_after 4     # [ 1 2 4 3 ]
print
find 1
erase_after        # removes the 2 that follows 1
print
push_front 5
push_back 6
print
pop_front
print
clear
print
`

var (
	DemoValues      = []int{1, 2, 3}
	DemoConstValues = []int{2, 4, 6}
)

// RunDemo runs DemoScript, then prints a second list through read-only iterators.
func RunDemo(ctx context.Context, opts common.LinkedListOptions[int]) ([]string, error) {
	steps, err := ParseScript(DemoScript)
	common.PanicIfErr(err)

	executor := NewExecutor(ParseInt, opts, DemoValues...)
	defer executor.List().Destroy()

	transcript, err := executor.Run(ctx, steps)
	if err != nil {
		return transcript, err
	}

	constList := common.NewLinkedListWithOptions(opts, DemoConstValues...)
	defer constList.Destroy()

	return append(transcript, common.FormatBracketed(ConstValues(constList))), nil
}

// ConstValues yields the elements of l using only a ConstIterator.
func ConstValues[T comparable](l *common.LinkedList[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.CBegin(); !it.Equal(l.CEnd()); {
			v, err := it.Value()
			if err != nil || !yield(v) {
				return
			}
			if it.Next() != nil {
				return
			}
		}
	}
}

// RunScript parses script and runs it against a fresh list of the given element type.
func RunScript(ctx context.Context, elementType ElementType, script string, logger common.ILogger) ([]string, error) {
	steps, err := ParseScript(script)
	if err != nil {
		return nil, err
	}

	switch elementType {
	case EElementType.Int():
		return runSteps(ctx, ParseInt, steps, logger)
	case EElementType.Text():
		return runSteps(ctx, ParseString, steps, logger)
	default:
		return nil, errors.Wrapf(ErrBadArgument, "unsupported element type %d", uint8(elementType))
	}
}

func runSteps[T comparable](ctx context.Context, parse func(string) (T, error), steps []Step, logger common.ILogger) ([]string, error) {
	executor := NewExecutor(parse, common.LinkedListOptions[T]{Logger: logger})
	defer executor.List().Destroy()

	return executor.Run(ctx, steps)
}
