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
	"testing"

	"github.com/pkg/errors"
	chk "gopkg.in/check.v1"

	"github.com/wastore/forwardlist/common"
)

// Hookup to the testing framework
func Test(t *testing.T) { chk.TestingT(t) }

type executorSuite struct{}

var _ = chk.Suite(&executorSuite{})
var ctx = context.Background()

func (s *executorSuite) TestDemoTranscript(c *chk.C) {
	released := 0
	transcript, err := RunDemo(ctx, common.LinkedListOptions[int]{OnRelease: func(int) { released++ }})
	c.Assert(err, chk.IsNil)

	c.Assert(transcript, chk.DeepEquals, []string{
		"[ 1 2 3 ]",
		"[ 1 2 4 3 ]",
		"[ 1 4 3 ]",
		"[ 5 1 4 3 6 ]",
		"[ 1 4 3 6 ]",
		"[ ]",
		"[ 2 4 6 ]",
	})

	// 3 initial + 3 pushed/inserted in the script, plus the 3 element const list
	c.Assert(released, chk.Equals, 9)
}

func (s *executorSuite) TestCursorFollowsInsertions(c *chk.C) {
	steps, err := ParseScript("push_back 1; push_back 5; find 1; insert_after 2; insert_after 3; next; set 4; print; len")
	c.Assert(err, chk.IsNil)

	executor := NewExecutor(ParseInt, common.LinkedListOptions[int]{})
	transcript, err := executor.Run(ctx, steps)
	c.Assert(err, chk.IsNil)
	c.Assert(transcript, chk.DeepEquals, []string{"[ 1 2 3 4 ]", "4"})

	v, err := executor.Cursor().Value()
	c.Assert(err, chk.IsNil)
	c.Assert(v, chk.Equals, 4)
}

func (s *executorSuite) TestBeforeBeginPrependsAndErasesHead(c *chk.C) {
	steps, err := ParseScript(`
		before_begin
		insert_after b
		before_begin
		insert_after a
		print
		before_begin
		erase_after
		front
		back
	`)
	c.Assert(err, chk.IsNil)

	executor := NewExecutor(ParseString, common.LinkedListOptions[string]{})
	transcript, err := executor.Run(ctx, steps)
	c.Assert(err, chk.IsNil)
	c.Assert(transcript, chk.DeepEquals, []string{"[ a b ]", "b", "b"})
}

func (s *executorSuite) TestEraseAfterTailIsNoOp(c *chk.C) {
	transcript, err := RunScript(ctx, EElementType.Int(), "push_back 1; push_back 2; find 2; erase_after; len; push_back 3; print", nil)
	c.Assert(err, chk.IsNil)
	c.Assert(transcript, chk.DeepEquals, []string{"2", "[ 1 2 3 ]"})
}

func (s *executorSuite) TestStopsAtFirstFailure(c *chk.C) {
	transcript, err := RunScript(ctx, EElementType.Int(), "push_back 1\nprint\nfind 7\ninsert_after 2\nprint", nil)

	c.Assert(errors.Is(err, common.ErrEndIterator), chk.Equals, true)
	c.Assert(err, chk.ErrorMatches, "line 4: InsertAfter 2: .*")
	c.Assert(transcript, chk.DeepEquals, []string{"[ 1 ]"})
}

func (s *executorSuite) TestPopFrontOnEmptyList(c *chk.C) {
	_, err := RunScript(ctx, EElementType.Text(), "pop_front", nil)
	c.Assert(errors.Is(err, common.ErrEmptyList), chk.Equals, true)
}

func (s *executorSuite) TestBadArgument(c *chk.C) {
	_, err := RunScript(ctx, EElementType.Int(), "push_back seven", nil)
	c.Assert(errors.Is(err, ErrBadArgument), chk.Equals, true)
}

func (s *executorSuite) TestCancelledContext(c *chk.C) {
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	transcript, err := RunScript(cancelled, EElementType.Int(), "push_back 1; print", nil)
	c.Assert(errors.Is(err, context.Canceled), chk.Equals, true)
	c.Assert(transcript, chk.HasLen, 0)
}
