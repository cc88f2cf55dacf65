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
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArgumentCount    = errors.New("wrong number of arguments")
	ErrBadArgument      = errors.New("invalid argument")
)

// Step is one parsed statement of a script.
type Step struct {
	Op   Operation
	Arg  string
	Line int // 1-based line of the script the statement came from
}

func (s Step) String() string {
	if s.Op.TakesArgument() {
		return s.Op.String() + " " + s.Arg
	}
	return s.Op.String()
}

// ParseScript splits a script into steps. Statements are separated by newlines or
// semicolons, and '#' starts a comment that runs to the end of the line.
func ParseScript(script string) ([]Step, error) {
	var steps []Step

	for i, line := range strings.Split(script, "\n") {
		if comment := strings.IndexByte(line, '#'); comment >= 0 {
			line = line[:comment]
		}

		for _, statement := range strings.Split(line, ";") {
			fields := strings.Fields(statement)
			if len(fields) == 0 {
				continue
			}

			step := Step{Line: i + 1}
			if err := step.Op.Parse(fields[0]); err != nil {
				return nil, errors.Wrapf(ErrUnknownOperation, "line %d: %q", step.Line, fields[0])
			}

			want := 0
			if step.Op.TakesArgument() {
				want = 1
			}
			if len(fields)-1 != want {
				return nil, errors.Wrapf(ErrArgumentCount, "line %d: %s takes %d, got %d", step.Line, step.Op, want, len(fields)-1)
			}
			if want == 1 {
				step.Arg = fields[1]
			}

			steps = append(steps, step)
		}
	}

	return steps, nil
}
