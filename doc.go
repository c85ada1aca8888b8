/*
Package pprint implements a streaming pretty-printer with bounded memory.

Pretty-Printing

A pretty-printer arranges structured text within a maximum line width. Clients
describe their output as a sequence of events—text fragments, breakable
spaces, forced line breaks, and nested groups carrying indentation—and the
printer decides for each breakable position whether to render it as a space or
as a newline plus indentation. A group is laid out on a single line if its
entire content fits into the space remaining on the current line; otherwise
every breakable position directly inside it becomes a line break. Nested
groups decide for themselves and may still be laid out flat.

The algorithm goes back to a classic paper:

Derek C. Oppen, Prettyprinting, ACM Transactions on Programming Languages and
Systems, Vol. 2, No. 4, 1980.

Oppen's insight is that the layout decision for a group only needs lookahead
bounded by the line width: as soon as pending material grows wider than a
line, the enclosing groups cannot possibly fit and may be declared broken
without seeing the rest of the input. Later work recast the algorithm in a
purely functional setting and proved its linear, bounded behavior:

S. Doaitse Swierstra and Olaf Chitil, Linear, bounded, functional
pretty-printing, Journal of Functional Programming 19(1), 2009.

This package follows Oppen's imperative formulation. A scanner annotates
incoming events with the horizontal size of the material they precede,
buffering at most a line's worth of undecided tokens in a ring; a printer
consumes the annotated tokens in order and writes characters to a sink.
Output streams as soon as decisions become final, and working memory is
proportional to the line width, not to the document.

There deliberately is no document type in this package. Structure flows
through the client's control flow—nested calls to Group—and tokens leave the
printer as soon as their layout is decided. A reified document tree would
forfeit the bounded-memory property that is the point of the exercise.

	pp := pprint.New(&pprint.StringSink{}, 30)
	pp.Group(2, func(pp *pprint.Printer) error {
	    pp.Text("func")
	    pp.Space()
	    return pp.Text("main()")
	})
	sink, err := pp.Finish()

Clients dealing with wide characters may plug in a different width measure,
for example textwidth.Measure from the accompanying subpackage.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package pprint

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pprint'
func tracer() tracing.Trace {
	return tracing.Select("pprint")
}

var (
	// ErrUnclosedGroup signals a call to Finish while groups are still open.
	ErrUnclosedGroup = errors.New("pprint: unclosed group")
	// ErrPrinterFinished signals an event sent to a printer after Finish.
	ErrPrinterFinished = errors.New("pprint: printer is finished")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
