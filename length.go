package increparse

// Length is a span in the input, carrying both a character count and a
// (row, column) position. Positions and sizes are both represented as
// Length: a position is the length of everything before it.
type Length struct {
	Chars   uint32
	Rows    uint32
	Columns uint32
}

// AddLength concatenates two spans: b comes immediately after a. Rows add;
// columns reset to b's columns when b crosses at least one row, otherwise
// they add within the row. Language lex functions use this (alongside
// SubLength) to compute the padding/size Lengths passed to MakeLeaf.
func AddLength(a, b Length) Length {
	out := Length{
		Chars: a.Chars + b.Chars,
		Rows:  a.Rows + b.Rows,
	}
	if b.Rows > 0 {
		out.Columns = b.Columns
	} else {
		out.Columns = a.Columns + b.Columns
	}
	return out
}

// SubLength is only valid when a dominates b (a.Chars >= b.Chars); callers
// must guarantee this.
func SubLength(a, b Length) Length {
	out := Length{Chars: a.Chars - b.Chars}
	if a.Rows == b.Rows {
		out.Rows = 0
		out.Columns = a.Columns - b.Columns
	} else {
		out.Rows = a.Rows - b.Rows
		out.Columns = a.Columns
	}
	return out
}

// ZeroLength is the additive identity.
var ZeroLength = Length{}
