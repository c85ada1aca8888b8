package pprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"
)

// Sink is the character target of a printer. The printer owns its sink for
// the printer's lifetime and calls it strictly sequentially; any error a
// sink returns aborts emission and surfaces unchanged from the facade
// operation during which it occurred.
type Sink interface {
	// WriteString accepts the next run of output characters.
	WriteString(s string) error
	// WriteSpaces accepts n space characters. n may be zero.
	WriteSpaces(n int) error
}

// blanks is a slab of spaces for indentation writes.
const blanks = "                                                                "

// StringSink collects output in memory. The zero value is an empty sink,
// ready for use. StringSink never fails.
type StringSink struct {
	sb strings.Builder
}

// WriteString appends s to the accumulated output.
func (ss *StringSink) WriteString(s string) error {
	ss.sb.WriteString(s)
	return nil
}

// WriteSpaces appends n space characters.
func (ss *StringSink) WriteSpaces(n int) error {
	ss.sb.Grow(n)
	for n > 0 {
		k := n
		if k > len(blanks) {
			k = len(blanks)
		}
		ss.sb.WriteString(blanks[:k])
		n -= k
	}
	return nil
}

// String returns the output accumulated so far.
func (ss *StringSink) String() string {
	return ss.sb.String()
}

// WriterSink streams output to an io.Writer. Errors from the writer are the
// writer's own and are handed through verbatim.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps an io.Writer as a printer sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Writer returns the wrapped writer.
func (ws *WriterSink) Writer() io.Writer {
	return ws.w
}

func (ws *WriterSink) WriteString(s string) error {
	_, err := io.WriteString(ws.w, s)
	return err
}

func (ws *WriterSink) WriteSpaces(n int) error {
	for n > 0 {
		k := n
		if k > len(blanks) {
			k = len(blanks)
		}
		if _, err := io.WriteString(ws.w, blanks[:k]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}
