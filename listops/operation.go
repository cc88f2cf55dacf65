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
	"reflect"
	"strconv"
	"strings"

	"github.com/JeffreyRichter/enum/enum"
	"github.com/pkg/errors"
)

var EOperation = Operation(0)

// Operation is one statement kind of a list script.
type Operation uint8

func (Operation) PushFront() Operation   { return Operation(0) }
func (Operation) PushBack() Operation    { return Operation(1) }
func (Operation) InsertAfter() Operation { return Operation(2) } // at the cursor, which then moves to the new node
func (Operation) EraseAfter() Operation  { return Operation(3) } // at the cursor
func (Operation) PopFront() Operation    { return Operation(4) }
func (Operation) Clear() Operation       { return Operation(5) }
func (Operation) Find() Operation        { return Operation(6) } // moves the cursor
func (Operation) Begin() Operation       { return Operation(7) }
func (Operation) BeforeBegin() Operation { return Operation(8) }
func (Operation) Next() Operation        { return Operation(9) }
func (Operation) Set() Operation         { return Operation(10) } // writes through the cursor
func (Operation) Print() Operation       { return Operation(11) }
func (Operation) Front() Operation       { return Operation(12) }
func (Operation) Back() Operation        { return Operation(13) }
func (Operation) Len() Operation         { return Operation(14) }

var operationSeparators = strings.NewReplacer("_", "", "-", "")

// Parse accepts the operation name in any case, with or without underscores or dashes,
// so push_back, push-back and PushBack are the same.
func (o *Operation) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(o), operationSeparators.Replace(s), true)
	if err == nil {
		*o = val.(Operation)
	}
	return err
}

func (o Operation) String() string {
	return enum.StringInt(o, reflect.TypeOf(o))
}

// TakesArgument reports whether the operation needs exactly one value argument.
func (o Operation) TakesArgument() bool {
	switch o {
	case EOperation.PushFront(), EOperation.PushBack(), EOperation.InsertAfter(), EOperation.Find(), EOperation.Set():
		return true
	default:
		return false
	}
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

var EElementType = ElementType(0)

// ElementType selects how script arguments are turned into list elements.
type ElementType uint8

func (ElementType) Int() ElementType  { return ElementType(0) }
func (ElementType) Text() ElementType { return ElementType(1) }

func (et *ElementType) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(et), s, true)
	if err == nil {
		*et = val.(ElementType)
	}
	return err
}

func (et ElementType) String() string {
	return enum.StringInt(et, reflect.TypeOf(et))
}

func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "%q is not an integer", s)
	}
	return v, nil
}

func ParseString(s string) (string, error) {
	return s, nil
}
