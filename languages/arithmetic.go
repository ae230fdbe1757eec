// Package languages holds hand-built Language descriptors used to exercise
// the increparse runtime end to end. Compiling a Language from an actual
// grammar source is its own project, out of scope here; these descriptors
// are written by hand instead, the way a runtime's own test suite hand-
// builds small fixture grammars.
package languages

import "github.com/odvcencio/increparse"

// Arithmetic symbols. 0 is the runtime's reserved END terminal.
const (
	SymEnd  = increparse.Symbol(0)
	SymInt  = increparse.Symbol(1)
	SymPlus = increparse.Symbol(2)
	SymStar = increparse.Symbol(3)
	SymWS   = increparse.Symbol(4)
	SymSum  = increparse.Symbol(5)

	arithmeticSymbolCount = 6
)

// Arithmetic states:
//
//	0  (start):                INT -> shift 1, SUM -> goto 2, WS -> extra
//	1  (saw bare INT):         PLUS -> shift 8, STAR -> shift 9, WS -> extra,
//	                           END -> reduce SUM -> INT (no operator follows)
//	2  (saw SUM):              END -> accept, PLUS -> shift 3, STAR -> shift 4, WS -> extra
//	3  (saw SUM +):            INT -> shift 5, WS -> extra
//	4  (saw SUM *):            INT -> shift 6, WS -> extra
//	5  (saw SUM + INT):        reduce(fragile) SUM -> SUM PLUS INT       (repeat)
//	6  (saw SUM * INT):        reduce(fragile) SUM -> SUM STAR INT       (repeat)
//	7  (error landing):        END -> accept
//	8  (saw INT +):            INT -> shift 10, WS -> extra
//	9  (saw INT *):            INT -> shift 11, WS -> extra
//	10 (saw INT + INT):        reduce(fragile) SUM -> INT PLUS INT       (first application, flat)
//	11 (saw INT * INT):        reduce(fragile) SUM -> INT STAR INT       (first application, flat)
//
// A bare INT is reduced to a SUM of its own only once END shows that no
// operator follows it. Without states 8-11, state 1 would have to reduce SUM -> INT
// unconditionally before knowing whether an operator follows, and the
// first operator application would then reduce over [SUM, op, INT]
// instead of [INT, op, INT] — nesting a SUM inside a SUM for something
// as simple as "1+2". States 8-11 let the parser keep the left INT
// unreduced until it knows whether it's building a one-token expression
// or an operator application, so the first application comes out flat;
// only the second and later operators in a chain reduce over an
// already-formed SUM (states 3-6).
//
// State 7 is never reached by ordinary shifts; it's the target of the
// ERROR recovery shift registered from states 1 and 2, used when an
// operand or an established SUM is followed by a dangling operator with
// no right operand.
func Arithmetic() *increparse.Language {
	shift := func(to increparse.StateID) []increparse.ParseAction {
		return []increparse.ParseAction{{Type: increparse.ActionShift, ToState: to}}
	}
	shiftExtra := func() []increparse.ParseAction {
		return []increparse.ParseAction{{Type: increparse.ActionShiftExtra}}
	}
	reduce := func(childCount uint8) []increparse.ParseAction {
		return []increparse.ParseAction{{Type: increparse.ActionReduce, Symbol: SymSum, ChildCount: childCount}}
	}
	reduceFragile := func(childCount uint8) []increparse.ParseAction {
		return []increparse.ParseAction{{Type: increparse.ActionReduceFragile, Symbol: SymSum, ChildCount: childCount}}
	}
	accept := []increparse.ParseAction{{Type: increparse.ActionAccept}}

	const stateCount = 12

	table := make([][][]increparse.ParseAction, stateCount)
	for i := range table {
		table[i] = make([][]increparse.ParseAction, arithmeticSymbolCount)
	}

	// State 0: start.
	table[0][SymInt] = shift(1)
	table[0][SymSum] = shift(2)
	table[0][SymWS] = shiftExtra()

	// State 1: saw a bare INT. Shift past it if an operator follows
	// (building the flat first-application form); otherwise it's the
	// whole expression, so reduce it to SUM now.
	table[1][SymPlus] = shift(8)
	table[1][SymStar] = shift(9)
	table[1][SymEnd] = reduce(1)
	table[1][SymWS] = shiftExtra()

	// State 2: saw SUM.
	table[2][SymEnd] = accept
	table[2][SymPlus] = shift(3)
	table[2][SymStar] = shift(4)
	table[2][SymWS] = shiftExtra()

	// State 3: saw SUM +.
	table[3][SymInt] = shift(5)
	table[3][SymWS] = shiftExtra()

	// State 4: saw SUM *.
	table[4][SymInt] = shift(6)
	table[4][SymWS] = shiftExtra()

	// State 5: saw SUM + INT, reduce fragile (repeat application).
	r5 := reduceFragile(3)
	table[5][SymEnd] = r5
	table[5][SymPlus] = r5
	table[5][SymStar] = r5
	table[5][SymWS] = r5

	// State 6: saw SUM * INT, reduce fragile (repeat application).
	r6 := reduceFragile(3)
	table[6][SymEnd] = r6
	table[6][SymPlus] = r6
	table[6][SymStar] = r6
	table[6][SymWS] = r6

	// State 7: error-recovery landing state, only reachable via ErrorActions.
	table[7][SymEnd] = accept

	// State 8: saw INT +.
	table[8][SymInt] = shift(10)
	table[8][SymWS] = shiftExtra()

	// State 9: saw INT *.
	table[9][SymInt] = shift(11)
	table[9][SymWS] = shiftExtra()

	// State 10: saw INT + INT, reduce fragile (first application, flat).
	r10 := reduceFragile(3)
	table[10][SymEnd] = r10
	table[10][SymPlus] = r10
	table[10][SymStar] = r10
	table[10][SymWS] = r10

	// State 11: saw INT * INT, reduce fragile (first application, flat).
	r11 := reduceFragile(3)
	table[11][SymEnd] = r11
	table[11][SymPlus] = r11
	table[11][SymStar] = r11
	table[11][SymWS] = r11

	errorActions := make([]increparse.ParseAction, stateCount)
	errorActions[1] = increparse.ParseAction{Type: increparse.ActionShift, ToState: 7}
	errorActions[2] = increparse.ParseAction{Type: increparse.ActionShift, ToState: 7}

	lexStates := make([]increparse.LexStateID, stateCount)

	return &increparse.Language{
		SymbolCount:       arithmeticSymbolCount,
		StateCount:        stateCount,
		SymbolNames:       []string{"END", "INT", "PLUS", "STAR", "WS", "SUM"},
		HiddenSymbolFlags: []bool{false, false, false, false, false, false},
		LexStates:         lexStates,
		ErrorLexState:     0,
		ParseTable:        table,
		ErrorActions:      errorActions,
		Lex:               arithmeticLex,
	}
}

// arithmeticLex recognizes INT ([0-9]+), PLUS ('+'), STAR ('*'), and runs
// of whitespace as their own WS tokens, by hand, the way a grammar's
// generated scanner would — but written directly in Go since compiling a
// DFA from a grammar source is out of scope (see package doc). Whitespace
// is returned as a standalone token rather than folded into the padding
// of whatever follows, so the driver's ShiftExtra action lifts it into
// the tree as its own extra-flagged node: every token
// this function returns therefore has zero padding.
func arithmeticLex(l *increparse.Lexer, _ increparse.LexStateID) *increparse.Node {
	l.MarkTokenStart()
	b, ok := l.Lookahead()
	if !ok {
		l.MarkTokenEnd()
		return increparse.MakeLeaf(SymEnd, increparse.ZeroLength, increparse.ZeroLength)
	}

	switch {
	case isSpace(b):
		for {
			b, ok := l.Lookahead()
			if !ok || !isSpace(b) {
				break
			}
			l.Advance()
		}
		l.MarkTokenEnd()
		return increparse.MakeLeaf(SymWS, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	case isDigit(b):
		for {
			b, ok := l.Lookahead()
			if !ok || !isDigit(b) {
				break
			}
			l.Advance()
		}
		l.MarkTokenEnd()
		return increparse.MakeLeaf(SymInt, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	case b == '+':
		l.Advance()
		l.MarkTokenEnd()
		return increparse.MakeLeaf(SymPlus, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	case b == '*':
		l.Advance()
		l.MarkTokenEnd()
		return increparse.MakeLeaf(SymStar, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	default:
		// No rule matches this byte: emit a one-byte ERROR leaf so the
		// driver invokes recovery instead of looping forever.
		l.Advance()
		l.MarkTokenEnd()
		return increparse.MakeErrorLeaf(increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }
