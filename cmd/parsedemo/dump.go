package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/odvcencio/increparse"
)

// symbolName looks up a printable name for sym, falling back to the two
// reserved sentinels the language's own SymbolNames table never covers.
func symbolName(names []string, sym increparse.Symbol) string {
	switch sym {
	case increparse.ErrorSymbol:
		return "ERROR"
	case increparse.DocumentSymbol:
		return "DOCUMENT"
	}
	if int(sym) < len(names) {
		return names[sym]
	}
	return fmt.Sprintf("sym%d", sym)
}

// dumpTree writes a minimal s-expression rendering of root to w: this is a
// host-side debug aid, not a library-level pretty-printer (tree formatting
// is the caller's business, not the runtime's).
func dumpTree(w io.Writer, root *increparse.Node, names []string, src []byte) {
	cursor := increparse.ZeroLength
	dumpNode(w, root, names, src, &cursor, 0)
	fmt.Fprintln(w)
}

func dumpNode(w io.Writer, n *increparse.Node, names []string, src []byte, cursor *increparse.Length, depth int) {
	if n == nil {
		return
	}
	start := *cursor
	contentStart := increparse.AddLength(start, n.Padding())

	fmt.Fprintf(w, "\n%s(%s", strings.Repeat("  ", depth), symbolName(names, n.Symbol()))
	if n.IsExtra() {
		fmt.Fprint(w, " extra")
	}
	if n.IsFragileLeft() || n.IsFragileRight() {
		fmt.Fprint(w, " fragile")
	}
	if n.IsHidden() {
		fmt.Fprint(w, " hidden")
	}

	if n.IsLeaf() {
		contentEnd := increparse.AddLength(contentStart, n.Size())
		if contentEnd.Chars <= uint32(len(src)) {
			fmt.Fprintf(w, " %q", string(src[contentStart.Chars:contentEnd.Chars]))
		}
	} else {
		childCursor := start
		for _, c := range n.Children() {
			dumpNode(w, c, names, src, &childCursor, depth+1)
		}
	}
	fmt.Fprint(w, ")")

	*cursor = increparse.AddLength(start, n.TotalSize())
}
