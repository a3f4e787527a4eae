// Copyright 2026 The vmtranslate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lineio provides the output-side line writer shared by the CLI
// driver: a single persistent sink across every input file of a run.
package lineio

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Writer wraps a bufio.Writer and latches the first write error, so that
// callers can push many lines across many files without checking every
// individual Write call; WriteLines keeps returning the same error once
// one occurs.
type Writer struct {
	w   *bufio.Writer
	Err error
}

// New returns a Writer sinking to w.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteLines writes each line followed by a newline. It is a no-op once
// the Writer has latched an error.
func (lw *Writer) WriteLines(lines []string) error {
	if lw.Err != nil {
		return lw.Err
	}
	for _, l := range lines {
		if _, err := lw.w.WriteString(l); err != nil {
			lw.Err = errors.Wrap(err, "write failed")
			return lw.Err
		}
		if err := lw.w.WriteByte('\n'); err != nil {
			lw.Err = errors.Wrap(err, "write failed")
			return lw.Err
		}
	}
	return nil
}

// Flush flushes the underlying buffer. It returns the latched error, if
// any, without attempting to flush.
func (lw *Writer) Flush() error {
	if lw.Err != nil {
		return lw.Err
	}
	if err := lw.w.Flush(); err != nil {
		lw.Err = errors.Wrap(err, "flush failed")
		return lw.Err
	}
	return nil
}
