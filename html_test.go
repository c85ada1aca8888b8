package pprint_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/pprint"
	"golang.org/x/net/html"
)

// renderHTML walks a parsed HTML subtree and emits a normalized layout:
// every element is a group, inlined when tag and content fit the line.
func renderHTML(pp *pprint.Printer, n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		if s := strings.TrimSpace(n.Data); s != "" {
			return pp.Text(s)
		}
		return nil
	case html.ElementNode:
		return pp.Group(2, func(pp *pprint.Printer) error {
			pp.Text("<" + n.Data + ">")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				pp.ZeroBreak()
				if err := renderHTML(pp, c); err != nil {
					return err
				}
			}
			if n.FirstChild != nil {
				pp.Break(0, -2)
			}
			return pp.Text("</" + n.Data + ">")
		})
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := renderHTML(pp, c); err != nil {
				return err
			}
		}
		return nil
	}
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestHTMLPrinting(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<ul><li>one</li><li>two</li></ul>"))
	if err != nil {
		t.Fatal(err)
	}
	ul := findElement(doc, "ul")
	if ul == nil {
		t.Fatal("no <ul> in parsed document")
	}
	sink := &pprint.StringSink{}
	pp := pprint.New(sink, 20)
	if err := renderHTML(pp, ul); err != nil {
		t.Fatalf("printing failed: %v", err)
	}
	if _, err := pp.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	want := strings.Join([]string{
		"<ul>",
		"  <li>one</li>",
		"  <li>two</li>",
		"</ul>",
	}, "\n")
	if got := sink.String(); got != want {
		t.Errorf("output mismatch:\ngot  =\n%s\nwant =\n%s", got, want)
	}
}

func TestHTMLPrintingInline(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<p>hi</p>"))
	if err != nil {
		t.Fatal(err)
	}
	p := findElement(doc, "p")
	if p == nil {
		t.Fatal("no <p> in parsed document")
	}
	sink := &pprint.StringSink{}
	pp := pprint.New(sink, 40)
	if err := renderHTML(pp, p); err != nil {
		t.Fatalf("printing failed: %v", err)
	}
	if _, err := pp.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if got := sink.String(); got != "<p>hi</p>" {
		t.Errorf("unexpected output %q", got)
	}
}
