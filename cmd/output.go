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
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/wastore/forwardlist/common"
)

// used for output types that are not simple strings, such as the bench summary
// a given format(text,json) is passed in, and the appropriate string is returned
type OutputBuilder func(OutputFormat) string

// defines the general output template when the format is set to json
type jsonOutputTemplate struct {
	TimeStamp      time.Time
	MessageType    string
	MessageContent string // a simple string for Info and Error, a serialized JSON for EndOfJob
	RunID          common.RunID
}

type outputWriter struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	format OutputFormat
	runID  common.RunID
}

func newOutputWriter(stdout, stderr io.Writer) *outputWriter {
	return &outputWriter{stdout: stdout, stderr: stderr, format: EOutputFormat.Text()}
}

func (o *outputWriter) SetOutputFormat(format OutputFormat) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.format = format
}

func (o *outputWriter) Info(msg string) {
	o.output(EOutputMessageType.Info(), func(OutputFormat) string { return msg })
}

func (o *outputWriter) EndOfJob(builder OutputBuilder) {
	o.output(EOutputMessageType.EndOfJob(), builder)
}

func (o *outputWriter) Error(err error) {
	o.output(EOutputMessageType.Error(), func(OutputFormat) string { return err.Error() })
}

func (o *outputWriter) output(msgType OutputMessageType, builder OutputBuilder) {
	o.mu.Lock()
	defer o.mu.Unlock()

	content := builder(o.format)
	switch o.format {
	case EOutputFormat.None():
		return
	case EOutputFormat.Json():
		_, _ = fmt.Fprintln(o.stdout, GetJsonStringFromTemplate(jsonOutputTemplate{
			TimeStamp:      time.Now(),
			MessageType:    msgType.String(),
			MessageContent: content,
			RunID:          o.runID,
		}))
	default:
		w := o.stdout
		if msgType == EOutputMessageType.Error() {
			w = o.stderr
		}
		_, _ = fmt.Fprintln(w, content)
	}
}

func GetJsonStringFromTemplate(template interface{}) string {
	jsonOutput, err := json.Marshal(template)
	common.PanicIfErr(err)

	return string(jsonOutput)
}
