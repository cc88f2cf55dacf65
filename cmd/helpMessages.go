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

const environmentVariableNotice = "If you want to change the default values of the global flags, please look at the environment variables listed by `forwardlist env`."

const rootCmdShortDescription = "ForwardList exercises an arena-backed singly-linked list from the command line"

const rootCmdLongDescription = `ForwardList drives a generic singly-linked list through small scripts.
It can replay the reference scenario, run your own scripts, and benchmark many independent lists in parallel.

Run logs are written only when a log location is set. Each run gets its own file, named after the run ID.
` + environmentVariableNotice

const demoCmdShortDescription = "Run the reference list scenario"

const demoCmdLongDescription = `Builds the list [ 1 2 3 ], then inserts after 2, erases after 1, pushes at both ends,
pops the front and clears it, printing the list after each stage. A read-only traversal of [ 2 4 6 ] is printed last.`

const runCmdShortDescription = "Run a list script"

const runCmdLongDescription = `Runs a list script given as the argument, read from --script-file, or read from standard input.

Statements are separated by new lines or semicolons, and # starts a comment.
The list starts empty and a cursor starts before the first element.

  push_front V, push_back V   add V at either end
  find V                      move the cursor to the first V, or to the end
  begin, before_begin, next   move the cursor
  insert_after V              insert V after the cursor and move the cursor to it
  erase_after                 remove the element after the cursor
  set V                       overwrite the element at the cursor
  pop_front, clear            remove the first element, or all of them
  print, front, back, len     write one output line

Running stops at the first failing statement.`

const runCmdExample = `forwardlist run "push_back 1; push_back 3; find 1; insert_after 2; print"

forwardlist run --type text --script-file ./script.txt

echo "push_front 7; front" | forwardlist run`

const benchCmdShortDescription = "Benchmark independent lists in parallel"

const benchCmdLongDescription = `Drives one list per worker through push, find, insert, erase and pop rounds, then destroys it.
Reports throughput, node accounting and the resident memory of the process.
Fails if any list did not release every node it allocated.`

const envCmdShortDescription = "Shows the environment variables that you can use to configure the behavior of ForwardList."

const envCmdLongDescription = `Shows the environment variables that you can use to configure the behavior of ForwardList.
Command line flags take precedence over the matching environment variable.`
