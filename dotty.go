package pprint

import (
	"fmt"
	"io"
)

// Ring2Dot outputs the printer's pending token window in Graphviz DOT format
// (for debugging purposes). Ring entries form a chain in logical order;
// tokens whose size is still unresolved are additionally linked from a scan
// stack node.
func Ring2Dot(p *Printer, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	fmt.Fprintf(w, "\tlabel=\"margin=%d space=%d indent=%d\";\n",
		p.emit.margin, p.emit.space, p.emit.indent)
	nodelist, edgelist := "", ""
	r := p.scan.ring
	prev := -1
	for i := r.tail; i < r.head; i++ {
		t := r.at(i)
		label := tokenDotLabel(i, t)
		styles := "shape=box"
		if !t.resolved() {
			styles = "shape=box,style=dashed"
		}
		nodelist += fmt.Sprintf("\"t%d\" [label=\"%s\" %s];\n", i, label, styles)
		if prev >= 0 {
			edgelist += fmt.Sprintf("\"t%d\" -> \"t%d\";\n", prev, i)
		}
		prev = i
	}
	for k, i := range p.scan.scanStack {
		nodelist += fmt.Sprintf("\"s%d\" [label=\"#%d\",shape=circle,fixedsize=true,width=.4];\n", k, k)
		edgelist += fmt.Sprintf("\"s%d\" -> \"t%d\" [style=dotted];\n", k, i)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func tokenDotLabel(i int, t *token) string {
	switch t.kind {
	case tokText:
		return fmt.Sprintf("%d @%d\\n“%s”", t.width, i, t.text)
	case tokBreak:
		if t.hard {
			return fmt.Sprintf("hard @%d", i)
		}
		return fmt.Sprintf("brk %d+%d @%d\\nsize=%d", t.width, t.offset, i, t.size)
	case tokBegin:
		return fmt.Sprintf("begin +%d @%d\\nsize=%d", t.offset, i, t.size)
	default:
		return fmt.Sprintf("end @%d", i)
	}
}
