package main

import "github.com/odvcencio/increparse"

// textBuffer is the host-side source buffer: it owns the bytes the lexer
// reads through increparse.Input and is responsible for actually splicing
// an edit into them before Parse is asked to reconcile the tree against it.
type textBuffer struct {
	bytes []byte
}

func newTextBuffer(initial string) *textBuffer {
	return &textBuffer{bytes: []byte(initial)}
}

// ByteAt implements increparse.Input. One char is one byte in this demo:
// scenario sources are restricted to ASCII, so the lexer's Length.Chars
// doubles as a byte offset.
func (b *textBuffer) ByteAt(pos uint32) (byte, bool) {
	if int(pos) >= len(b.bytes) {
		return 0, false
	}
	return b.bytes[pos], true
}

func (b *textBuffer) String() string { return string(b.bytes) }

// apply splices e into the buffer and returns the increparse.InputEdit
// describing the change, for the caller to hand to Parser.Parse.
func (b *textBuffer) apply(e edit) increparse.InputEdit {
	pos := e.Position
	removeEnd := pos + e.Remove
	if int(removeEnd) > len(b.bytes) {
		removeEnd = uint32(len(b.bytes))
	}

	next := make([]byte, 0, len(b.bytes)-int(removeEnd-pos)+len(e.Insert))
	next = append(next, b.bytes[:pos]...)
	next = append(next, e.Insert...)
	next = append(next, b.bytes[removeEnd:]...)
	b.bytes = next

	return increparse.InputEdit{
		Position:      pos,
		CharsInserted: uint32(len(e.Insert)),
		CharsRemoved:  removeEnd - pos,
	}
}
