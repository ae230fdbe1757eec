package increparse

// StateID is a parser state index into the Language's parse table.
type StateID uint16

// LexStateID selects which lexer DFA state a state's token recognition
// begins in ("lex_states[state] -> LexStateId").
type LexStateID uint16

// ParseActionType identifies the kind of action a parse table cell holds.
type ParseActionType uint8

const (
	ActionError ParseActionType = iota
	ActionShift
	ActionShiftExtra
	ActionReduce
	ActionReduceExtra
	ActionReduceFragile
	ActionAccept
)

// ParseAction is one table cell's action. For Shift/ShiftExtra,
// ToState is the target state. For the Reduce variants, Symbol and
// ChildCount name the production (ChildCount excludes extras already
// shifted onto the stack; the driver walks down to absorb them).
type ParseAction struct {
	Type       ParseActionType
	ToState    StateID
	Symbol     Symbol
	ChildCount uint8
}

// GetAction looks up the parse table cell for (state, sym). Only the first
// entry of the cell's action list is ever consulted — this runtime is not
// GLR (GLOSSARY: "Single lookahead per cell"). sym must be an ordinary
// grammar symbol (0..SymbolCount-1); the ERROR pseudo-symbol is looked up
// via GetErrorAction instead, since its reserved numeric value is far
// outside any language's dense column range.
func (l *Language) GetAction(state StateID, sym Symbol) (ParseAction, bool) {
	if int(state) >= len(l.ParseTable) {
		return ParseAction{}, false
	}
	row := l.ParseTable[state]
	if int(sym) >= len(row) {
		return ParseAction{}, false
	}
	actions := row[sym]
	if len(actions) == 0 {
		return ParseAction{}, false
	}
	return actions[0], true
}

// GetErrorAction looks up the Shift-on-ERROR action for state, consulted
// by error recovery scanning down the stack for an anchor that can
// absorb the ERROR pseudo-symbol. A language with no recovery path from a
// given state simply omits an entry (or leaves it zero-valued).
func (l *Language) GetErrorAction(state StateID) (ParseAction, bool) {
	if int(state) >= len(l.ErrorActions) {
		return ParseAction{}, false
	}
	a := l.ErrorActions[state]
	if a.Type == ActionError {
		return ParseAction{}, false
	}
	return a, true
}

// LexFunc emits the next terminal from the lexer's current position,
// running in the given lexer state. This is the language's own token
// recognizer, an external capability this runtime consumes but does not
// implement. A real LexFunc reads through the Lexer's Advance/Lookahead
// primitives and returns a leaf built with MakeLeaf.
type LexFunc func(lexer *Lexer, state LexStateID) *Node

// Language is the compiled parse table and lexer descriptor this runtime
// consumes as data. Building one, whether by hand or by compiling it from
// a grammar source, is out of scope for this module.
type Language struct {
	SymbolCount int
	StateCount  int

	// SymbolNames is debug-only.
	SymbolNames []string
	// HiddenSymbolFlags[symbol] reports whether a non-terminal is elided
	// from anonymous/named traversals.
	HiddenSymbolFlags []bool
	// LexStates[state] selects the lexer DFA entry state for that parser state.
	LexStates []LexStateID
	// ErrorLexState is the lex state used while skipping input during error
	// recovery: unlike LexStates, it is not indexed by parser state.
	ErrorLexState LexStateID

	// ParseTable is a dense state_count x symbol_count grid; a nil cell
	// means Error.
	ParseTable [][][]ParseAction
	// ErrorActions[state] is the Shift action taken on the ERROR
	// pseudo-symbol from that state, consulted only by error recovery;
	// a zero-value entry means no recovery anchors there.
	ErrorActions []ParseAction

	Lex LexFunc
}

// IsHidden reports whether sym is a hidden non-terminal in this language.
func (l *Language) IsHidden(sym Symbol) bool {
	if int(sym) < len(l.HiddenSymbolFlags) {
		return l.HiddenSymbolFlags[sym]
	}
	return false
}
