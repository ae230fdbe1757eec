package languages

import (
	"testing"

	"github.com/odvcencio/increparse"
)

func TestFlagset_TableShape(t *testing.T) {
	lang := Flagset()
	if lang.StateCount != 7 {
		t.Fatalf("StateCount = %d, want 7", lang.StateCount)
	}
	if !lang.IsHidden(FSymFlag) {
		t.Errorf("FLAG should be declared hidden")
	}
	if lang.IsHidden(FSymFlagset) {
		t.Errorf("FLAGSET should not be hidden")
	}
}

func TestFlagsetLex_Key(t *testing.T) {
	l := increparse.NewLexer(fakeInput("name=tree"))
	n := flagsetLex(l, 0)
	defer n.Release()

	if n.Symbol() != FSymKey {
		t.Fatalf("symbol = %d, want FSymKey", n.Symbol())
	}
	if n.Size().Chars != 4 {
		t.Errorf("size = %d, want 4 (greedy key run)", n.Size().Chars)
	}
}

func TestFlagsetLex_EqualsAndWhitespace(t *testing.T) {
	l := increparse.NewLexer(fakeInput("=tree"))
	eq := flagsetLex(l, 0)
	defer eq.Release()
	if eq.Symbol() != FSymEquals {
		t.Fatalf("symbol = %d, want FSymEquals", eq.Symbol())
	}

	l2 := increparse.NewLexer(fakeInput("   name"))
	ws := flagsetLex(l2, 0)
	defer ws.Release()
	if ws.Symbol() != FSymWS {
		t.Fatalf("symbol = %d, want FSymWS", ws.Symbol())
	}
	if ws.Size().Chars != 3 {
		t.Errorf("size = %d, want 3", ws.Size().Chars)
	}
}

func TestFlagsetLex_KeyModeIdentifierStaysKey(t *testing.T) {
	// Outside of value-lex mode, an identifier-shaped run is always a KEY,
	// even one that would look like a flag value ("tree") out of context.
	l := increparse.NewLexer(fakeInput("tree count=3"))
	n := flagsetLex(l, flagsetKeyLexState)
	if n.Symbol() != FSymKey {
		t.Fatalf("expected 'tree' to lex as a KEY (identifier-shaped), got symbol %d", n.Symbol())
	}
	n.Release()
}

func TestFlagsetLex_ValueStopsAtSpaceOrEquals(t *testing.T) {
	// In value-lex mode (the state set after EQUALS), the same identifier-
	// shaped run lexes as a VALUE instead, since KEY/EQUALS/WS rules don't
	// apply there.
	l := increparse.NewLexer(fakeInput("tree count=3"))
	n := flagsetLex(l, flagsetValueLexState)
	defer n.Release()

	if n.Symbol() != FSymValue {
		t.Fatalf("symbol = %d, want FSymValue", n.Symbol())
	}
	if n.Size().Chars != 4 {
		t.Errorf("size = %d, want 4 (stops at the space)", n.Size().Chars)
	}
}

func TestFlagsetLex_ValueNonIdentifier(t *testing.T) {
	l := increparse.NewLexer(fakeInput("3 count=4"))
	n := flagsetLex(l, flagsetValueLexState)
	defer n.Release()

	if n.Symbol() != FSymValue {
		t.Fatalf("symbol = %d, want FSymValue", n.Symbol())
	}
	if n.Size().Chars != 1 {
		t.Errorf("size = %d, want 1 (stops at the space)", n.Size().Chars)
	}
}

func TestFlagsetLex_KeyModeUnmatchedByteIsError(t *testing.T) {
	// Outside value-lex mode, a byte that isn't whitespace, '=', or a key
	// start is an error, not a guessed value.
	l := increparse.NewLexer(fakeInput("3 count=4"))
	n := flagsetLex(l, flagsetKeyLexState)
	defer n.Release()

	if !n.IsError() {
		t.Errorf("a digit outside value-lex mode should lex to an ERROR leaf")
	}
}

func TestFlagsetLex_End(t *testing.T) {
	l := increparse.NewLexer(fakeInput(""))
	n := flagsetLex(l, 0)
	defer n.Release()

	if n.Symbol() != FSymEnd {
		t.Fatalf("symbol = %d, want FSymEnd", n.Symbol())
	}
}
