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
	"os"
)

type EnvironmentVariable struct {
	Name         string
	DefaultValue string
	Description  string
}

// This array needs to be updated when a new public environment variable is added
var VisibleEnvironmentVariables = []EnvironmentVariable{
	EEnvironmentVariable.LogLevel(),
	EEnvironmentVariable.LogLocation(),
	EEnvironmentVariable.OutputType(),
	EEnvironmentVariable.BenchWorkers(),
}

var EEnvironmentVariable = EnvironmentVariable{}

func (EnvironmentVariable) LogLevel() EnvironmentVariable {
	return EnvironmentVariable{
		Name:         "FORWARDLIST_LOG_LEVEL",
		DefaultValue: "Warning",
		Description:  "Minimum severity written to the run log. One of None, Panic, Error, Warning, Info, Debug.",
	}
}

func (EnvironmentVariable) LogLocation() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "FORWARDLIST_LOG_LOCATION",
		Description: "Folder for run log files. If unset, no log file is written.",
	}
}

func (EnvironmentVariable) OutputType() EnvironmentVariable {
	return EnvironmentVariable{
		Name:         "FORWARDLIST_OUTPUT_TYPE",
		DefaultValue: "text",
		Description:  "Format of the command output. One of text, json.",
	}
}

func (EnvironmentVariable) BenchWorkers() EnvironmentVariable {
	return EnvironmentVariable{
		Name:        "FORWARDLIST_BENCH_WORKERS",
		Description: "Default number of lists the bench command drives in parallel. Defaults to the number of logical cores.",
	}
}

// GetEnvironmentVariable returns the variable's value, or its default when unset or empty.
func GetEnvironmentVariable(env EnvironmentVariable) string {
	if value, ok := LookupEnvironmentVariable(env); ok {
		return value
	}
	return env.DefaultValue
}

// LookupEnvironmentVariable reports whether the variable is set to a non-empty value.
func LookupEnvironmentVariable(env EnvironmentVariable) (string, bool) {
	value := os.Getenv(env.Name)
	return value, value != ""
}
