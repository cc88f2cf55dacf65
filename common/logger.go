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
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

type ILogger interface {
	ShouldLog(level LogLevel) bool
	Log(level LogLevel, msg string)
	Panic(err error)
}

type ILoggerCloser interface {
	ILogger
	CloseLog()
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

const maxLogSize = 100 * 1024 * 1024

type streamLogger struct {
	minimumLevelToLog LogLevel // messages less severe than this are dropped
	logger            *log.Logger
	closer            io.Closer // nil when the stream is not owned by the logger
}

// NewStreamLogger logs to w without taking ownership of it.
func NewStreamLogger(w io.Writer, minimumLevelToLog LogLevel) ILoggerCloser {
	return &streamLogger{
		minimumLevelToLog: minimumLevelToLog,
		logger:            log.New(w, "", log.LstdFlags|log.LUTC),
	}
}

// NewRunLogger opens <logFileFolder>/<runID>.log and writes the standard header to it.
// With LogNone nothing is opened and every message is dropped.
func NewRunLogger(runID RunID, minimumLevelToLog LogLevel, logFileFolder string) (ILoggerCloser, error) {
	if minimumLevelToLog == LogNone {
		return NewStreamLogger(io.Discard, LogNone), nil
	}

	file, err := NewRotatingWriter(filepath.Join(logFileFolder, runID.String()+".log"), maxLogSize)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file for run %s", runID)
	}

	sl := &streamLogger{
		minimumLevelToLog: minimumLevelToLog,
		logger:            log.New(file, "", log.LstdFlags|log.LUTC),
		closer:            file,
	}
	sl.logger.Println("ForwardListVersion ", ForwardListVersion)
	sl.logger.Println("OS-Environment ", runtime.GOOS)
	sl.logger.Println("OS-Architecture ", runtime.GOARCH)
	sl.logger.Printf("Log times are in UTC. Local time is %s", time.Now().Format("2 Jan 2006 15:04:05"))
	return sl, nil
}

func (sl *streamLogger) ShouldLog(level LogLevel) bool {
	if level == LogNone {
		return false
	}
	return level <= sl.minimumLevelToLog
}

func (sl *streamLogger) Log(level LogLevel, msg string) {
	if !sl.ShouldLog(level) {
		return
	}

	prefix := ""
	if level <= LogWarning {
		prefix = fmt.Sprintf("%s: ", level) // serious ones are easy to grep, informational ones stay uncluttered
	}
	sl.logger.Println(prefix + msg)
}

func (sl *streamLogger) Panic(err error) {
	sl.logger.Println(err)
	panic(err)
}

func (sl *streamLogger) CloseLog() {
	if sl.closer == nil {
		return
	}

	sl.logger.Println("Closing Log")
	_ = sl.closer.Close()
}

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
