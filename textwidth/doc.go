/*
Package textwidth measures the display width of text in fixed-width columns.

The pretty-printer treats text fragments as opaque runs of columns and by
default simply counts runes. That is fine for ASCII-ish output, but breaks
down for combining characters and for East Asian wide and ambiguous
characters. This package provides a measure that segments text into grapheme
clusters and resolves their width according to UAX#11, suitable for plugging
into a printer via SetMeasure.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textwidth

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pprint'
func tracer() tracing.Trace {
	return tracing.Select("pprint")
}
