package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of AST nodes, used by the parse/resolve
// debug commands to dump a tree for inspection.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// Lines, if true, prefixes each node with the source line range it spans.
	Lines bool
}

// Print pretty-prints the AST node n as an indented tree.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, lines: p.Lines}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	lines bool
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	prefix := strings.Repeat(". ", indent)
	if p.lines {
		start, end := n.Span()
		if start == end {
			_, p.err = fmt.Fprintf(p.w, "%s[%d] %v\n", prefix, start, n)
		} else {
			_, p.err = fmt.Fprintf(p.w, "%s[%d:%d] %v\n", prefix, start, end, n)
		}
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%v\n", prefix, n)
}
