package pprint_test

import (
	"fmt"
	"os"

	"github.com/npillmayer/pprint"
)

// sexp is a minimal S-expression: either an atom or a list.
type sexp struct {
	atom string
	list []sexp
}

func printSExp(pp *pprint.Printer, e sexp) error {
	if e.list == nil {
		return pp.Text(e.atom)
	}
	return pp.Group(1, func(pp *pprint.Printer) error {
		pp.Text("(")
		for i, sub := range e.list {
			if i > 0 {
				pp.Space()
			}
			if err := printSExp(pp, sub); err != nil {
				return err
			}
		}
		return pp.Text(")")
	})
}

func ExamplePrinter() {
	exp := sexp{list: []sexp{
		{list: []sexp{{atom: "1"}}},
		{list: []sexp{{atom: "2"}, {atom: "3"}}},
		{list: []sexp{{atom: "4"}, {atom: "5"}, {atom: "6"}}},
	}}
	pp := pprint.New(pprint.NewWriterSink(os.Stdout), 10)
	if err := printSExp(pp, exp); err != nil {
		fmt.Println(err)
		return
	}
	pp.Finish()
	// Output:
	// ((1)
	//  (2 3)
	//  (4 5 6))
}

func ExampleStringSink() {
	sink := &pprint.StringSink{}
	pp := pprint.New(sink, 14)
	pp.Group(4, func(pp *pprint.Printer) error {
		pp.Text("a rather long")
		pp.Space()
		return pp.Text("sentence")
	})
	pp.Finish()
	fmt.Println(sink.String())
	// Output:
	// a rather long
	//     sentence
}
