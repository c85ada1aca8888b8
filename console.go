package pprint

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"os"

	"golang.org/x/term"
)

// MarginFromTerminal is a simple helper for choosing a line width. It checks
// wether stdout is a terminal, and if so it reads the terminal's width and
// derives a usable margin from it. Without a terminal the margin falls back
// to 65 columns.
func MarginFromTerminal() int {
	margin := 65
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil {
			switch {
			case w > 65:
				margin = w - 10
			case w > 30:
				margin = w - 5
			case w > 10:
				margin = w
			default:
				margin = 10
			}
		}
	}
	tracer().P("format", "console").Infof("setting line width to %d en", margin)
	return margin
}
