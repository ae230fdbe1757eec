package increparse

// Input is the host-supplied character stream:
// given a character position, it yields the byte at that position. ok is
// false at or past end of input. The lexer adapter treats this purely as
// a capability — how the host buffers or re-fetches source text is out of
// scope for this module.
type Input interface {
	ByteAt(pos uint32) (b byte, ok bool)
}

// Lexer is the adapter described in: it holds the input callback,
// the current and token-start/end positions, a one-byte lookahead cache,
// and an optional debug sink. The language's LexFunc drives it via
// Lookahead/Advance/MarkTokenStart/MarkTokenEnd to recognize the next
// token; this type never runs a DFA itself.
type Lexer struct {
	input Input
	debug *debugSink

	position   Length
	tokenStart Length
	tokenEnd   Length

	cached      bool
	cachedByte  byte
	cachedOK    bool
}

// NewLexer creates a Lexer reading from input.
func NewLexer(input Input) *Lexer {
	return &Lexer{input: input}
}

// Reset seeks the lexer to position and clears the lookahead byte
func (l *Lexer) Reset(position Length) {
	l.position = position
	l.tokenStart = position
	l.tokenEnd = position
	l.cached = false
}

func (l *Lexer) fetch() {
	if l.cached {
		return
	}
	l.cachedByte, l.cachedOK = l.input.ByteAt(l.position.Chars)
	l.cached = true
}

// Lookahead returns the byte at the current position, or ok=false at EOF.
func (l *Lexer) Lookahead() (b byte, ok bool) {
	l.fetch()
	return l.cachedByte, l.cachedOK
}

// Advance consumes the current lookahead byte, extending the current
// token and updating row/column tracking. A no-op at EOF.
func (l *Lexer) Advance() {
	l.fetch()
	if !l.cachedOK {
		return
	}
	b := l.cachedByte
	l.position.Chars++
	if b == '\n' {
		l.position.Rows++
		l.position.Columns = 0
	} else {
		l.position.Columns++
	}
	l.cached = false
	if l.debug != nil {
		l.debug.emit(DebugLex, "advance")
	}
}

// MarkTokenStart sets the token start to the current position, skipping
// over any padding consumed at token entry.
func (l *Lexer) MarkTokenStart() { l.tokenStart = l.position }

// MarkTokenEnd sets the token end to the position immediately past the
// emitted token.
func (l *Lexer) MarkTokenEnd() { l.tokenEnd = l.position }

// Position returns the lexer's current cursor position.
func (l *Lexer) Position() Length { return l.position }

// TokenStart returns the start position recorded for the token in progress.
func (l *Lexer) TokenStart() Length { return l.tokenStart }

// TokenEnd returns the end position recorded for the token in progress.
func (l *Lexer) TokenEnd() Length { return l.tokenEnd }

// primeAfterReuse re-lays the lexer's cursor against a node reused from the
// right stack: start/end bracket the reused node's content at the
// cursor's current position (padding skipped, then size consumed), the
// lookahead byte is cleared, and a zero-width fetch re-primes it so
// subsequent lex calls start cleanly.
func (l *Lexer) primeAfterReuse(start, end Length) {
	l.tokenStart = start
	l.tokenEnd = end
	l.position = end
	l.cached = false
	l.fetch()
}
