package increparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/increparse"
	"github.com/odvcencio/increparse/languages"
)

type sourceInput string

func (s sourceInput) ByteAt(pos uint32) (byte, bool) {
	if int(pos) >= len(s) {
		return 0, false
	}
	return s[pos], true
}

func sexpr(n *increparse.Node, names []string, src string) string {
	var cursor increparse.Length
	return sexprNode(n, names, src, &cursor)
}

func sexprNode(n *increparse.Node, names []string, src string, cursor *increparse.Length) string {
	start := *cursor
	contentStart := increparse.AddLength(start, n.Padding())

	name := "?"
	switch {
	case n.IsError():
		name = "ERROR"
	case n.IsDocument():
		name = "DOCUMENT"
	case int(n.Symbol()) < len(names):
		name = names[n.Symbol()]
	}

	out := "(" + name
	if n.IsExtra() {
		out += " extra"
	}
	if n.IsFragileLeft() || n.IsFragileRight() {
		out += " fragile"
	}

	if n.IsLeaf() {
		contentEnd := increparse.AddLength(contentStart, n.Size())
		if contentEnd.Chars <= uint32(len(src)) {
			out += " " + strQuote(src[contentStart.Chars:contentEnd.Chars])
		}
	} else {
		childCursor := start
		for _, c := range n.Children() {
			out += " " + sexprNode(c, names, src, &childCursor)
		}
	}
	out += ")"

	*cursor = increparse.AddLength(start, n.TotalSize())
	return out
}

func strQuote(s string) string { return "\"" + s + "\"" }

func TestScenario_BasicAddition(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	tree := p.Parse(sourceInput("1+2"), nil)
	defer tree.Release()

	assert.True(t, tree.IsDocument())
	assert.Equal(t, uint32(3), tree.TotalSize().Chars)
	// The first operator application reduces SUM -> INT PLUS INT directly
	// (flat, not nested) via ReduceFragile (it's operator-sensitive), so
	// the root SUM is fragile even on a first parse, not only after an
	// edit. DOCUMENT has exactly one non-extra child (SUM) and inherits
	// its fragile flags the same way any single-child reduction does.
	assert.Equal(t, "(DOCUMENT fragile (SUM fragile (INT \"1\") (PLUS \"+\") (INT \"2\")))",
		sexpr(tree, languages.Arithmetic().SymbolNames, "1+2"))
}

func TestScenario_DanglingOperatorRecovers(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	tree := p.Parse(sourceInput("1+"), nil)
	defer tree.Release()

	assert.True(t, tree.IsDocument())
	assert.Equal(t, uint32(2), tree.TotalSize().Chars)

	var foundError bool
	var walk func(n *increparse.Node)
	walk = func(n *increparse.Node) {
		if n.IsError() {
			foundError = true
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(tree)
	assert.True(t, foundError, "dangling operator should surface as an ERROR subtree")
}

func TestScenario_WhitespaceIsExtraChild(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	tree := p.Parse(sourceInput("1 + 2"), nil)
	defer tree.Release()

	var extras int
	var walk func(n *increparse.Node)
	walk = func(n *increparse.Node) {
		if n.IsExtra() {
			extras++
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(tree)
	assert.Equal(t, 2, extras, "both runs of whitespace should appear as extra-flagged children")
}

func TestScenario_IncrementalEditAfterRemoval(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	first := p.Parse(sourceInput("1+2"), nil)
	first.Release()

	edit := &increparse.InputEdit{Position: 1, CharsInserted: 0, CharsRemoved: 1}
	tree := p.Parse(sourceInput("12"), edit)
	defer tree.Release()

	assert.Equal(t, "(DOCUMENT (SUM (INT \"12\")))",
		sexpr(tree, languages.Arithmetic().SymbolNames, "12"))
}

func TestScenario_OperatorSwapForcesFragileReduction(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	first := p.Parse(sourceInput("1+3"), nil)
	first.Release()

	edit := &increparse.InputEdit{Position: 1, CharsInserted: 1, CharsRemoved: 1}
	tree := p.Parse(sourceInput("1*3"), edit)
	defer tree.Release()

	assert.Equal(t, "(DOCUMENT fragile (SUM fragile (INT \"1\") (STAR \"*\") (INT \"3\")))",
		sexpr(tree, languages.Arithmetic().SymbolNames, "1*3"))
}

func TestScenario_FlagsetHiddenAndFragile(t *testing.T) {
	p, err := increparse.New(languages.Flagset())
	require.NoError(t, err)
	defer p.Destroy()

	tree := p.Parse(sourceInput("name=tree count=3"), nil)
	defer tree.Release()

	assert.True(t, tree.IsDocument())
	assert.Equal(t, uint32(len("name=tree count=3")), tree.TotalSize().Chars)
	// FLAG (hidden) still appears as an ordinary node here — IsHidden only
	// tells a consumer it may skip the wrapper during its own traversal, it
	// doesn't change the tree shape. The base FLAG reduces into a fragile
	// FLAGSET of one KEY/EQUALS/VALUE group; the second flag reduces the
	// fragile FLAGSET -> FLAGSET FLAG repeat case, which absorbs the
	// whitespace between the two flags as an extra child of that reduction
	// rather than leaving it as a stack entry outside it.
	assert.Equal(t,
		`(DOCUMENT fragile (FLAGSET fragile (FLAGSET fragile (FLAG (KEY "name") (EQUALS "=") (VALUE "tree"))) (WS extra " ") (FLAG (KEY "count") (EQUALS "=") (VALUE "3"))))`,
		sexpr(tree, languages.Flagset().SymbolNames, "name=tree count=3"))
}

func TestNew_RejectsNilLanguage(t *testing.T) {
	_, err := increparse.New(nil)
	require.Error(t, err)
}

func TestNew_RejectsLanguageWithNoLexFunc(t *testing.T) {
	_, err := increparse.New(&increparse.Language{StateCount: 1, ParseTable: make([][][]increparse.ParseAction, 1)})
	require.Error(t, err)
}

func TestSetDebugger_ReceivesEvents(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	var events []increparse.DebugType
	p.SetDebugger(recordingDebugger{events: &events})

	tree := p.Parse(sourceInput("1+2"), nil)
	tree.Release()

	assert.NotEmpty(t, events)
}

func TestScenario_InsertBeforeOperatorReusesOperatorAndRightOperand(t *testing.T) {
	p, err := increparse.New(languages.Arithmetic())
	require.NoError(t, err)
	defer p.Destroy()

	var events []increparse.DebugType
	p.SetDebugger(recordingDebugger{events: &events})

	first := p.Parse(sourceInput("1+2"), nil)
	first.Release()

	events = nil
	edit := &increparse.InputEdit{Position: 1, CharsInserted: 1, CharsRemoved: 0}
	tree := p.Parse(sourceInput("10+2"), edit)
	defer tree.Release()

	assert.Equal(t, "(DOCUMENT fragile (SUM fragile (INT \"10\") (PLUS \"+\") (INT \"2\")))",
		sexpr(tree, languages.Arithmetic().SymbolNames, "10+2"))

	reused := 0
	for _, e := range events {
		if e == increparse.DebugReuse {
			reused++
		}
	}
	assert.GreaterOrEqual(t, reused, 2, "the untouched '+' and '2' should both be spliced back in, not relexed")
}

type recordingDebugger struct {
	events *[]increparse.DebugType
}

func (r recordingDebugger) Receive(t increparse.DebugType, _ string) { *r.events = append(*r.events, t) }
func (r recordingDebugger) Release()                                 {}
