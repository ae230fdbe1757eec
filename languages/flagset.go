package languages

import "github.com/odvcencio/increparse"

// Flagset symbols: a line-oriented "key=value key=value ..." format.
const (
	FSymEnd     = increparse.Symbol(0)
	FSymKey     = increparse.Symbol(1)
	FSymEquals  = increparse.Symbol(2)
	FSymValue   = increparse.Symbol(3)
	FSymWS      = increparse.Symbol(4)
	FSymFlag    = increparse.Symbol(5) // hidden: KEY EQUALS VALUE
	FSymFlagset = increparse.Symbol(6)

	flagsetSymbolCount = 7
)

// Flagset states. FLAG (KEY EQUALS VALUE) is a hidden nonterminal folded
// straight into FLAGSET; FLAGSET itself is left-recursive and reduced via
// ReduceFragile both at the base case and the repeat case, so a single
// edited flag can't get silently reused across an edit that changes
// which flags are present.
//
//	0 (start):                   KEY -> shift 1, WS -> extra, END -> accept
//	1 (saw KEY):                 EQUALS -> shift 2
//	2 (saw KEY EQUALS):          VALUE -> shift 3
//	3 (saw KEY EQUALS VALUE):    reduce FLAG (hidden, 3 children)
//	4 (saw FLAG, below = start): reduce(fragile) FLAGSET -> FLAG (1 child)
//	5 (saw FLAG, below = FLAGSET): reduce(fragile) FLAGSET -> FLAGSET FLAG (2 children)
//	6 (after FLAGSET): KEY -> shift 1, WS -> extra, END -> accept
func Flagset() *increparse.Language {
	shift := func(to increparse.StateID) []increparse.ParseAction {
		return []increparse.ParseAction{{Type: increparse.ActionShift, ToState: to}}
	}
	shiftExtra := func() []increparse.ParseAction {
		return []increparse.ParseAction{{Type: increparse.ActionShiftExtra}}
	}
	reduceFlag := []increparse.ParseAction{{Type: increparse.ActionReduce, Symbol: FSymFlag, ChildCount: 3}}
	reduceFlagsetBase := []increparse.ParseAction{{Type: increparse.ActionReduceFragile, Symbol: FSymFlagset, ChildCount: 1}}
	reduceFlagsetRepeat := []increparse.ParseAction{{Type: increparse.ActionReduceFragile, Symbol: FSymFlagset, ChildCount: 2}}
	accept := []increparse.ParseAction{{Type: increparse.ActionAccept}}

	table := make([][][]increparse.ParseAction, 7)
	for i := range table {
		table[i] = make([][]increparse.ParseAction, flagsetSymbolCount)
	}

	table[0][FSymKey] = shift(1)
	table[0][FSymWS] = shiftExtra()
	table[0][FSymEnd] = accept
	table[0][FSymFlag] = shift(4)

	table[1][FSymEquals] = shift(2)

	table[2][FSymValue] = shift(3)

	for _, col := range []increparse.Symbol{FSymEnd, FSymKey, FSymWS} {
		table[3][col] = reduceFlag
		table[4][col] = reduceFlagsetBase
		table[5][col] = reduceFlagsetRepeat
	}

	table[6][FSymKey] = shift(1)
	table[6][FSymWS] = shiftExtra()
	table[6][FSymEnd] = accept
	table[6][FSymFlag] = shift(5)

	table[0][FSymFlagset] = shift(6)

	// State 2 (saw KEY EQUALS) lexes in value mode: whatever follows '='
	// is a VALUE token, not re-interpreted as a KEY/EQUALS/WS run. Every
	// other state lexes in the default key/structure mode.
	lexStates := make([]increparse.LexStateID, 7)
	lexStates[2] = flagsetValueLexState

	return &increparse.Language{
		SymbolCount:       flagsetSymbolCount,
		StateCount:        7,
		SymbolNames:       []string{"END", "KEY", "EQUALS", "VALUE", "WS", "FLAG", "FLAGSET"},
		HiddenSymbolFlags: []bool{false, false, false, false, false, true, false},
		LexStates:         lexStates,
		ErrorLexState:     0,
		ParseTable:        table,
		ErrorActions:      make([]increparse.ParseAction, 7),
		Lex:               flagsetLex,
	}
}

const (
	flagsetKeyLexState   increparse.LexStateID = 0
	flagsetValueLexState increparse.LexStateID = 1
)

func flagsetLex(l *increparse.Lexer, state increparse.LexStateID) *increparse.Node {
	l.MarkTokenStart()
	b, ok := l.Lookahead()
	if !ok {
		l.MarkTokenEnd()
		return increparse.MakeLeaf(FSymEnd, increparse.ZeroLength, increparse.ZeroLength)
	}

	if state == flagsetValueLexState {
		return lexFlagsetValue(l)
	}

	switch {
	case isFlagsetSpace(b):
		for {
			b, ok := l.Lookahead()
			if !ok || !isFlagsetSpace(b) {
				break
			}
			l.Advance()
		}
		l.MarkTokenEnd()
		return increparse.MakeLeaf(FSymWS, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	case b == '=':
		l.Advance()
		l.MarkTokenEnd()
		return increparse.MakeLeaf(FSymEquals, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	case isKeyStart(b):
		for {
			b, ok := l.Lookahead()
			if !ok || !isKeyRune(b) {
				break
			}
			l.Advance()
		}
		l.MarkTokenEnd()
		return increparse.MakeLeaf(FSymKey, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))

	default:
		// No KEY/EQUALS/WS rule matches outside of value position: surface
		// it as an error rather than guessing it's a value here.
		l.Advance()
		l.MarkTokenEnd()
		return increparse.MakeErrorLeaf(increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))
	}
}

// lexFlagsetValue scans the VALUE that must follow '=': any run of bytes
// up to the next space or '=', scanned without regard to the KEY/EQUALS
// rules that apply everywhere else.
func lexFlagsetValue(l *increparse.Lexer) *increparse.Node {
	for {
		b, ok := l.Lookahead()
		if !ok || isFlagsetSpace(b) || b == '=' {
			break
		}
		l.Advance()
	}
	if l.Position() == l.TokenStart() {
		// '=' followed immediately by a space or '=': no value
		// there at all, so surface the problem as a one-byte error
		// instead of returning an empty VALUE the grammar can't place.
		l.Advance()
		l.MarkTokenEnd()
		return increparse.MakeErrorLeaf(increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))
	}
	l.MarkTokenEnd()
	return increparse.MakeLeaf(FSymValue, increparse.ZeroLength, increparse.SubLength(l.TokenEnd(), l.TokenStart()))
}

func isFlagsetSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }
func isKeyStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isKeyRune(b byte) bool {
	return isKeyStart(b) || (b >= '0' && b <= '9')
}
