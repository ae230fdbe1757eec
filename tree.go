package increparse

import "sync"

// Symbol is a grammar symbol id drawn from the language's alphabet, plus
// the two sentinels below.
type Symbol uint16

const (
	// symbolEnd is the end-of-input terminal.
	symbolEnd Symbol = 0
	// symbolError is the ERROR non-terminal used for recovery.
	symbolError Symbol = 65535
	// symbolDocument wraps a completed (or partially recovered) parse.
	symbolDocument Symbol = 65534
)

// ErrorSymbol and DocumentSymbol are exported so a host can recognize the
// two reserved node kinds that never appear in a Language's own symbol
// alphabet: consumers locate problems by walking a parsed tree for
// ErrorSymbol subtrees rather than by a returned error, since Parse itself
// never fails.
const (
	ErrorSymbol    = symbolError
	DocumentSymbol = symbolDocument
)

// IsError reports whether this node is an ERROR node.
func (n *Node) IsError() bool { return n.symbol == symbolError }

// IsDocument reports whether this node is the root DOCUMENT node.
func (n *Node) IsDocument() bool { return n.symbol == symbolDocument }

// nodePool backs Node allocation. Nodes are short-lived in steady-state
// editing (most of a reparse's tree is reused, not reallocated), so a pool
// keeps GC pressure down without an arena-style bulk-free, which doesn't
// fit here: reused subtrees must outlive the rest of the tree they came
// from.
var nodePool = sync.Pool{New: func() any { return new(Node) }}

// Node is an immutable, reference-counted concrete syntax tree node.
type Node struct {
	symbol   Symbol
	padding  Length
	size     Length
	children []*Node

	extra        bool
	fragileLeft  bool
	fragileRight bool
	hidden       bool

	refCount int32
}

// Symbol returns the node's grammar symbol.
func (n *Node) Symbol() Symbol { return n.symbol }

// Padding returns the Length of whitespace/comments preceding this node's content.
func (n *Node) Padding() Length { return n.padding }

// Size returns the Length of this node's own content, excluding padding.
func (n *Node) Size() Length { return n.size }

// TotalSize is padding + size.
func (n *Node) TotalSize() Length { return AddLength(n.padding, n.size) }

// Children returns the node's children in order.
func (n *Node) Children() []*Node { return n.children }

// IsExtra reports whether this is an extra (ubiquitous) token lifted into the tree.
func (n *Node) IsExtra() bool { return n.extra }

// IsEmpty reports whether the node has zero content size.
func (n *Node) IsEmpty() bool { return n.size.Chars == 0 }

// IsFragileLeft reports whether reuse is unsafe at this node's left boundary.
func (n *Node) IsFragileLeft() bool { return n.fragileLeft }

// IsFragileRight reports whether reuse is unsafe at this node's right boundary.
func (n *Node) IsFragileRight() bool { return n.fragileRight }

// IsHidden reports whether this non-terminal is elided from anonymous traversals.
func (n *Node) IsHidden() bool { return n.hidden }

// IsLeaf reports whether this node has no children (a terminal).
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// isReusableLookahead is the reuse predicate: a node may be handed to the
// driver as lookahead only if it is non-empty, non-extra, and not fragile
// on either boundary.
func (n *Node) isReusableLookahead() bool {
	return n != nil && !n.IsEmpty() && !n.extra && !n.fragileLeft && !n.fragileRight
}

func allocNode() *Node {
	n := nodePool.Get().(*Node)
	*n = Node{}
	return n
}

// Retain increments the reference count and returns n, so it can be used
// inline (e.g. `right.push(state, child.Retain())`).
func (n *Node) Retain() *Node {
	if n != nil {
		n.refCount++
	}
	return n
}

// Release drops one reference. When the count reaches zero, each child is
// released exactly once (recursively) and the node is returned to the pool.
// Callers must not touch n after Release.
func (n *Node) Release() {
	if n == nil {
		return
	}
	n.refCount--
	if n.refCount > 0 {
		return
	}
	children := n.children
	n.children = nil
	for _, c := range children {
		c.Release()
	}
	nodePool.Put(n)
}

// MakeLeaf constructs a terminal node. The returned node has refcount 1.
func MakeLeaf(sym Symbol, padding, size Length) *Node {
	n := allocNode()
	n.symbol = sym
	n.padding = padding
	n.size = size
	n.refCount = 1
	return n
}

// MakeErrorLeaf constructs a leaf fragile on both sides, per the invariant
// "ERROR nodes are fragile on both sides".
func MakeErrorLeaf(padding, size Length) *Node {
	n := MakeLeaf(symbolError, padding, size)
	n.fragileLeft = true
	n.fragileRight = true
	return n
}

// MakeNode constructs a non-terminal from children: the first
// non-empty child's padding becomes the new node's padding (its own size
// contributes just size to the parent); remaining children's total_size
// concatenates onto that. Ownership of each child reference transfers to
// the parent (the parent releases them when it is released).
func MakeNode(sym Symbol, children []*Node, hidden bool) *Node {
	n := allocNode()
	n.symbol = sym
	n.hidden = hidden
	n.children = children
	n.refCount = 1

	firstIdx := -1
	for i, c := range children {
		if !c.IsEmpty() {
			firstIdx = i
			break
		}
	}
	if firstIdx == -1 {
		return n
	}
	n.padding = children[firstIdx].padding
	n.size = children[firstIdx].size
	for _, c := range children[firstIdx+1:] {
		n.size = AddLength(n.size, c.TotalSize())
	}
	return n
}

// SetExtra marks a freshly-constructed, unshared node as extra. This must
// only be called on nodes not yet handed to any other owner.
func (n *Node) SetExtra(v bool) { n.extra = v }

// SetFragileLeft marks a freshly-constructed, unshared node fragile on its left boundary.
func (n *Node) SetFragileLeft(v bool) { n.fragileLeft = v }

// SetFragileRight marks a freshly-constructed, unshared node fragile on its right boundary.
func (n *Node) SetFragileRight(v bool) { n.fragileRight = v }
