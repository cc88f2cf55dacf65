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
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func logFileNames(a *assert.Assertions, dir string) []string {
	entries, err := os.ReadDir(dir)
	a.NoError(err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestRotatingWriter(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	chunk := []byte("0123456789")

	w, err := NewRotatingWriter(filepath.Join(dir, "run.log"), 100)
	a.NoError(err)

	// exactly at the limit, no rotation yet
	for i := 0; i < 10; i++ {
		n, err := w.Write(chunk)
		a.NoError(err)
		a.Equal(10, n)
	}
	a.Equal([]string{"run.log"}, logFileNames(a, dir))

	_, err = w.Write(chunk)
	a.NoError(err)
	a.Equal([]string{"run.0.log", "run.log"}, logFileNames(a, dir))

	rotated, err := os.ReadFile(filepath.Join(dir, "run.0.log"))
	a.NoError(err)
	a.Len(rotated, 100)

	// 10 bytes in the live file; 80 more leaves room for one more chunk before the next rotation
	for i := 0; i < 8; i++ {
		_, _ = w.Write(chunk)
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2; j++ {
				n, err := w.Write(chunk)
				a.Equal(10, n)
				a.NoError(err)
			}
		}()
	}
	wg.Wait()

	a.NoError(w.Close())
	a.Equal([]string{"run.0.log", "run.1.log", "run.log"}, logFileNames(a, dir))
}

func TestRotatingWriter_AppendsToExistingFile(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "existing.log")
	a.NoError(os.WriteFile(path, make([]byte, 95), 0644))

	w, err := NewRotatingWriter(path, 100)
	a.NoError(err)
	_, err = w.Write([]byte("0123456789"))
	a.NoError(err)
	a.NoError(w.Close())

	_, err = os.Stat(filepath.Join(filepath.Dir(path), "existing.0.log"))
	a.NoError(err)
}
