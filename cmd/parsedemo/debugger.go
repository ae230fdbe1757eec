package main

import (
	"fmt"
	"io"

	"github.com/odvcencio/increparse"
)

// traceDebugger is the demo's increparse.Debugger: it writes one line per
// event to an io.Writer, tagged with the Parser-assigned session id that
// increparse already folds into the message.
type traceDebugger struct {
	out io.Writer
}

func (d *traceDebugger) Receive(t increparse.DebugType, message string) {
	fmt.Fprintf(d.out, "trace: %-6s %s\n", t, message)
}

func (d *traceDebugger) Release() {
	fmt.Fprintln(d.out, "trace: session closed")
}
