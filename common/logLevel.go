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
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
)

type LogLevel uint8

const (
	LogNone LogLevel = iota
	LogPanic
	LogError
	LogWarning
	LogInfo
	LogDebug
)

var ELogLevel = LogLevel(0)

func (LogLevel) None() LogLevel    { return LogNone }
func (LogLevel) Panic() LogLevel   { return LogPanic }
func (LogLevel) Error() LogLevel   { return LogError }
func (LogLevel) Warning() LogLevel { return LogWarning }
func (LogLevel) Info() LogLevel    { return LogInfo }
func (LogLevel) Debug() LogLevel   { return LogDebug }

func (ll *LogLevel) Parse(s string) error {
	val, err := enum.Parse(reflect.TypeOf(ll), s, true)
	if err == nil {
		*ll = val.(LogLevel)
	}
	return err
}

func (ll LogLevel) String() string {
	return enum.StringInt(ll, reflect.TypeOf(ll))
}
