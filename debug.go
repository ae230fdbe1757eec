package increparse

import "github.com/google/uuid"

// DebugType classifies a trace event emitted to an attached Debugger.
type DebugType uint8

const (
	DebugLex DebugType = iota
	DebugShift
	DebugReduce
	DebugError
	DebugReuse
)

func (t DebugType) String() string {
	switch t {
	case DebugLex:
		return "lex"
	case DebugShift:
		return "shift"
	case DebugReduce:
		return "reduce"
	case DebugError:
		return "error"
	case DebugReuse:
		return "reuse"
	default:
		return "unknown"
	}
}

// Debugger is an optional tracing sink a host attaches to a Parser.
// Receive is called for every event; Release is called once when the
// debugger is detached (by SetDebugger(nil) or by Destroy), so the host
// can flush or close whatever backs it.
type Debugger interface {
	Receive(t DebugType, message string)
	Release()
}

// debugSink wraps a host Debugger with a session id, so trace lines from several concurrently-edited
// documents in one process can be told apart.
type debugSink struct {
	sessionID string
	debugger  Debugger
}

func newDebugSink(d Debugger) *debugSink {
	if d == nil {
		return nil
	}
	return &debugSink{sessionID: uuid.NewString(), debugger: d}
}

func (s *debugSink) emit(t DebugType, message string) {
	if s == nil || s.debugger == nil {
		return
	}
	s.debugger.Receive(t, "["+s.sessionID+"] "+message)
}

func (s *debugSink) release() {
	if s == nil || s.debugger == nil {
		return
	}
	s.debugger.Release()
}
