package pprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "unicode/utf8"

// MaxWidth is the largest accepted line width, in columns.
const MaxWidth = maxWidth

// MeasureFunc maps a text fragment to its width in columns.
type MeasureFunc func(s string) int

// Printer is a streaming pretty-printing engine. Clients feed it a sequence
// of events—text, breakable spaces, forced newlines, and nested groups—and
// the printer emits a layout that respects the configured line width,
// writing to its sink as soon as layout decisions become final.
//
// A Printer is single-threaded: all operations must be issued from one
// goroutine, in document order.
//
// Error regime: every operation reports errors of the underlying sink
// unchanged. After a sink error the printer is poisoned—each subsequent
// operation, including Finish, returns the first error again and emits
// nothing. Errors returned by a Group body do not poison the printer; the
// group is closed regardless and the body's error is handed through.
type Printer struct {
	scan     *scanner
	emit     *emitter
	sink     Sink
	measure  MeasureFunc
	depth    int // open client groups
	err      error
	finished bool
	finErr   error // result of the first Finish, re-reported on later calls
}

// New creates a printer writing to sink with the given maximum line width.
//
// Panics if margin is not between 1 and MaxWidth, or if sink is nil.
func New(sink Sink, margin int) *Printer {
	assert(sink != nil, "printer needs a sink")
	assert(margin > 0 && margin <= MaxWidth, "line width must be between 1 and 65536")
	em := newEmitter(sink, margin)
	p := &Printer{
		scan:    newScanner(em, margin),
		emit:    em,
		sink:    sink,
		measure: utf8.RuneCountInString,
	}
	// An implicit root group makes top-level breaks behave like breaks in
	// any other group: they turn into newlines iff the document overflows.
	p.scan.scanBegin(0)
	return p
}

// SetMeasure installs the column measure used by Text. The default counts
// runes, treating input as columnar ASCII-like text. Installing a measure
// mid-document only affects subsequent fragments.
func (p *Printer) SetMeasure(m MeasureFunc) {
	if m != nil {
		p.measure = m
	}
}

// Text emits a literal fragment. The fragment's width is determined by the
// printer's measure function; it must not contain newline characters, as
// those would bypass the printer's column bookkeeping.
func (p *Printer) Text(s string) error {
	return p.TextWidth(s, p.measure(s))
}

// TextWidth emits a literal fragment with a caller-supplied column width,
// for clients that do their own width computation.
func (p *Printer) TextWidth(s string, w int) error {
	if p.err != nil {
		return p.err
	}
	return p.fail(p.scan.scanText(s, w))
}

// Space emits a breakable position rendered as a single space when the
// enclosing group is flat, and as a newline plus indentation when it is
// broken.
func (p *Printer) Space() error {
	return p.Break(1, 0)
}

// Spaces emits a breakable position rendered as n spaces when flat.
func (p *Printer) Spaces(n int) error {
	return p.Break(n, 0)
}

// ZeroBreak emits a breakable position with no flat rendering: invisible in
// a flat group, a newline in a broken one.
func (p *Printer) ZeroBreak() error {
	return p.Break(0, 0)
}

// Break emits the general breakable position: width spaces when flat. When
// realized as a newline, the continuation column is the enclosing group's
// indentation plus offset; offset may be negative and the column is clamped
// at zero.
func (p *Printer) Break(width int, offset int) error {
	if p.err != nil {
		return p.err
	}
	if width < 0 {
		width = 0
	}
	return p.fail(p.scan.scanBreak(width, offset, false))
}

// HardBreak emits an unconditional newline. All enclosing groups are forced
// to break from here on: a group containing a forced newline cannot be laid
// out flat, whatever its width.
func (p *Printer) HardBreak() error {
	if p.err != nil {
		return p.err
	}
	return p.fail(p.scan.scanBreak(0, 0, true))
}

// Group opens a group with indentation delta offset, runs body, and closes
// the group again. The closing is guaranteed on every exit path: if body
// returns an error, the group is closed first and the error returned after.
// Breaks directly inside the group render as newlines iff the group's
// content does not fit on the remaining line.
func (p *Printer) Group(offset int, body func(pp *Printer) error) error {
	if p.err != nil {
		return p.err
	}
	p.scan.scanBegin(offset)
	p.depth++
	var bodyErr error
	if body != nil {
		bodyErr = body(p)
	}
	p.depth--
	endErr := p.err
	if endErr == nil {
		endErr = p.fail(p.scan.scanEnd())
	}
	if bodyErr != nil {
		return bodyErr
	}
	return endErr
}

// Finish flushes all pending tokens and returns the sink. It fails with
// ErrUnclosedGroup when called inside an open Group, and with the sink's
// error when flushing fails. Finish is idempotent: a second call re-returns
// the same sink and the same error without emitting anything. The exception
// is ErrUnclosedGroup: such a call leaves the printer open, and a later
// Finish, after the groups are closed, flushes as usual.
func (p *Printer) Finish() (Sink, error) {
	if p.finished {
		return p.sink, p.finErr
	}
	if p.err != nil {
		p.finished, p.finErr = true, p.err
		return p.sink, p.finErr
	}
	if p.depth > 0 {
		return p.sink, ErrUnclosedGroup
	}
	if err := p.fail(p.scan.scanEnd()); err != nil { // close the implicit root group
		p.finished, p.finErr = true, err
		return p.sink, err
	}
	assert(len(p.scan.scanStack) == 0, "scan stack not empty after flush")
	assert(p.scan.ring.empty(), "token ring not empty after flush")
	p.finished = true
	p.err = ErrPrinterFinished
	tracer().Debugf("printer finished, peak ring occupancy %d tokens / %d text bytes",
		p.scan.ring.peakLen, p.scan.ring.peakBytes)
	return p.sink, nil
}

// fail latches the first sink error.
func (p *Printer) fail(err error) error {
	if err != nil && p.err == nil {
		p.err = err
	}
	return err
}
