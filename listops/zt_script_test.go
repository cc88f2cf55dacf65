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
	"github.com/pkg/errors"
	chk "gopkg.in/check.v1"
)

type scriptSuite struct{}

var _ = chk.Suite(&scriptSuite{})

func (s *scriptSuite) TestParseScript(c *chk.C) {
	steps, err := ParseScript("push_back 1; PushFront 2\n# comment only\n\nInsert-After 3 # trailing\nprint")
	c.Assert(err, chk.IsNil)

	c.Assert(steps, chk.DeepEquals, []Step{
		{Op: EOperation.PushBack(), Arg: "1", Line: 1},
		{Op: EOperation.PushFront(), Arg: "2", Line: 1},
		{Op: EOperation.InsertAfter(), Arg: "3", Line: 4},
		{Op: EOperation.Print(), Line: 5},
	})
}

func (s *scriptSuite) TestParseScriptRejectsUnknownOperation(c *chk.C) {
	_, err := ParseScript("print\nsort")
	c.Assert(errors.Is(err, ErrUnknownOperation), chk.Equals, true)
	c.Assert(err, chk.ErrorMatches, `line 2: "sort": unknown operation`)
}

func (s *scriptSuite) TestParseScriptChecksArity(c *chk.C) {
	_, err := ParseScript("push_back")
	c.Assert(errors.Is(err, ErrArgumentCount), chk.Equals, true)

	_, err = ParseScript("pop_front 1")
	c.Assert(errors.Is(err, ErrArgumentCount), chk.Equals, true)
}

func (s *scriptSuite) TestOperationNames(c *chk.C) {
	c.Assert(EOperation.EraseAfter().String(), chk.Equals, "EraseAfter")
	c.Assert(Step{Op: EOperation.Find(), Arg: "2"}.String(), chk.Equals, "Find 2")

	var et ElementType
	c.Assert(et.Parse("TEXT"), chk.IsNil)
	c.Assert(et, chk.Equals, EElementType.Text())
	c.Assert(et.Parse("float"), chk.NotNil)
}
