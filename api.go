// Package increparse is an incremental, error-tolerant shift-reduce parser
// runtime: it consumes a compiled Language descriptor (parse table, lexer
// entry points, hidden-symbol flags) and drives it against a host-supplied
// Input capability, producing immutable, reference-counted syntax trees
// that can be cheaply re-parsed after small edits by reusing the parts of
// the previous tree unaffected by the change.
package increparse

import "github.com/pkg/errors"

// InputEdit describes a single text change in characters: position is
// the character offset where the edit begins; CharsInserted/CharsRemoved
// are the lengths of the new and old text at that position. Row/column
// aspects of the edit are re-derived while lexing; callers need not supply
// them.
type InputEdit struct {
	Position      uint32
	CharsInserted uint32
	CharsRemoved  uint32
}

// New constructs a Parser bound to language. language is validated at
// construction time since a malformed descriptor is a host programming
// error, not a parse-time condition the parser is expected to recover
// from.
func New(language *Language) (*Parser, error) {
	if language == nil {
		return nil, errors.New("increparse: nil language")
	}
	if language.Lex == nil {
		return nil, errors.New("increparse: language has no lex function")
	}
	if len(language.ParseTable) != language.StateCount {
		return nil, errors.Errorf("increparse: parse table has %d states, language declares %d", len(language.ParseTable), language.StateCount)
	}
	return &Parser{language: language}, nil
}

// Destroy releases every tree reference the parser still holds and
// detaches its debugger. The parser must not be used afterward. Trees
// already returned from Parse are unaffected — they outlive the parser
// that produced them.
func (p *Parser) Destroy() {
	p.stack.shrink(0)
	p.rightStack.shrink(0)
	if p.lookahead != nil {
		p.lookahead.Release()
		p.lookahead = nil
	}
	if p.debug != nil {
		p.debug.release()
		p.debug = nil
	}
}

// SetDebugger attaches a tracing sink to the parser, replacing (and
// releasing) any previous one. Passing nil detaches the current debugger.
func (p *Parser) SetDebugger(d Debugger) {
	if p.debug != nil {
		p.debug.release()
		p.debug = nil
	}
	p.debug = newDebugSink(d)
}

// GetDebugger returns the currently attached Debugger, or nil if none.
func (p *Parser) GetDebugger() Debugger {
	if p.debug == nil {
		return nil
	}
	return p.debug.debugger
}

// Parse runs a full parse (edit == nil) or an incremental reparse against
// the tree from the parser's previous Parse call (edit != nil). The
// returned tree is always non-nil and caller-owned; on unrecoverable
// input it is rooted at DOCUMENT with ERROR subtrees marking the
// misparsed regions — Parse itself never fails.
func (p *Parser) Parse(input Input, edit *InputEdit) *Node {
	var resumeAt Length
	if edit != nil {
		resumeAt = p.breakDownLeftStack(*edit)
	} else {
		p.stack.shrink(0)
		p.rightStack.shrink(0)
		p.totalChars = 0
		resumeAt = ZeroLength
	}

	if p.lookahead != nil {
		p.lookahead.Release()
		p.lookahead = nil
	}

	p.lexer = NewLexer(input)
	p.lexer.debug = p.debug
	p.lexer.Reset(resumeAt)

	doc := p.drive()

	// Any right-stack entries the driver never reclaimed as lookahead
	// (reuse candidates that turned out unneeded) are discarded here.
	p.rightStack.shrink(0)

	return doc
}
