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

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunScriptFromArgument(t *testing.T) {
	a := assert.New(t)

	result := runCommand("", "run", "push_back 1; push_back 3; find 1; insert_after 2; print; back")
	a.Equal(EExitCode.Success(), result.exitCode)
	a.Equal("[ 1 2 3 ]\n3\n", result.stdout)
}

func TestRunScriptFromStdin(t *testing.T) {
	a := assert.New(t)

	result := runCommand("push_front b\npush_front a\nprint\n", "run", "--type", "text")
	a.Equal(EExitCode.Success(), result.exitCode)
	a.Equal("[ a b ]\n", result.stdout)
}

func TestRunScriptFromFile(t *testing.T) {
	a := assert.New(t)
	scriptFile := filepath.Join(t.TempDir(), "script.txt")
	a.NoError(os.WriteFile(scriptFile, []byte("push_back 4 # first\npush_back 5\nlen\n"), 0644))

	result := runCommand("", "run", "--script-file", scriptFile)
	a.Equal(EExitCode.Success(), result.exitCode)
	a.Equal("2\n", result.stdout)
}

func TestRunRejectsTwoScripts(t *testing.T) {
	a := assert.New(t)

	result := runCommand("", "run", "print", "--script-file", "script.txt")
	a.Equal(EExitCode.Error(), result.exitCode)
	a.Contains(result.stderr, "not both")
}

func TestRunRejectsUnknownType(t *testing.T) {
	a := assert.New(t)

	result := runCommand("", "run", "print", "--type", "float")
	a.Equal(EExitCode.Error(), result.exitCode)
	a.Contains(result.stderr, "the choices are int and text")
}

func TestRunKeepsOutputBeforeFailure(t *testing.T) {
	a := assert.New(t)

	result := runCommand("", "run", "push_back 1; print\npop_front\npop_front\nprint")
	a.Equal(EExitCode.Error(), result.exitCode)
	a.Equal("[ 1 ]\n", result.stdout)
	a.Contains(result.stderr, "line 3: PopFront")
	a.Contains(result.stderr, "list is empty")
}

func TestRunErrorAsJson(t *testing.T) {
	a := assert.New(t)

	result := runCommand("", "run", "sort", "--output-type", "json")
	a.Equal(EExitCode.Error(), result.exitCode)
	a.Empty(result.stderr)

	messages := decodeJsonLines(a, result.stdout)
	a.Len(messages, 1)
	if len(messages) == 1 {
		a.Equal("Error", messages[0].MessageType)
		a.Contains(messages[0].MessageContent, "unknown operation")
	}
}
