package increparse

// Parser drives a single-threaded incremental parse against a Language
// descriptor. It owns two stacks (the left parse stack and the
// right reuse buffer), a lexer bound fresh to each Parse call, and at
// most one buffered lookahead node at a time.
type Parser struct {
	language *Language

	stack      parseStack
	rightStack parseStack

	lexer      *Lexer
	lookahead  *Node
	totalChars uint32

	debug *debugSink
}

// shiftNode pushes the buffered lookahead under state and clears it;
// ownership moves from p.lookahead into the stack entry.
func (p *Parser) shiftNode(state StateID) {
	p.stack.push(state, p.lookahead)
	p.lookahead = nil
}

// getNextNode obtains the next lookahead: a node spliced in from the
// right stack if one is usable at the lexer's current position,
// or else a freshly lexed token.
func (p *Parser) getNextNode(lexState LexStateID) *Node {
	if node := p.breakDownRightStack(); node != nil {
		start := AddLength(p.lexer.Position(), node.Padding())
		end := AddLength(start, node.Size())
		p.lexer.primeAfterReuse(start, end)
		if p.debug != nil {
			p.debug.emit(DebugReuse, "reused node")
		}
		return node
	}
	n := p.language.Lex(p.lexer, lexState)
	if p.debug != nil {
		p.debug.emit(DebugLex, "lexed token")
	}
	return n
}

// reduceCore is the shared body behind Reduce/ReduceExtra/ReduceFragile
// and finish's synthetic DOCUMENT reduction.
func (p *Parser) reduceCore(symbol Symbol, declaredChildCount int, extra bool, countExtrasInDeclared bool) *Node {
	childCount := declaredChildCount
	if !countExtrasInDeclared {
		for i := 0; i < childCount; i++ {
			if childCount >= p.stack.len() {
				break
			}
			idx := p.stack.len() - 1 - i
			if p.stack.entries[idx].node.IsExtra() {
				childCount++
			}
		}
	}

	startIndex := p.stack.len() - childCount
	children := make([]*Node, childCount)
	for i := 0; i < childCount; i++ {
		children[i] = p.stack.entries[startIndex+i].node
	}

	parent := MakeNode(symbol, children, p.language.IsHidden(symbol))

	// A reduction with exactly one
	// non-extra child inherits that child's fragile flags, so fragility
	// keeps propagating through chains of single-child reductions instead
	// of being absorbed the first time a wrapping production appears.
	if countNonExtra(children) == 1 {
		for _, c := range children {
			if !c.IsExtra() {
				parent.fragileLeft = parent.fragileLeft || c.fragileLeft
				parent.fragileRight = parent.fragileRight || c.fragileRight
			}
		}
	}

	p.stack.truncate(startIndex)

	var state StateID
	switch {
	case extra:
		state = p.stack.topState()
	case symbol == symbolError:
		if action, ok := p.language.GetErrorAction(p.stack.topState()); ok {
			state = action.ToState
		}
	default:
		if action, ok := p.language.GetAction(p.stack.topState(), symbol); ok {
			state = action.ToState
		}
	}
	p.stack.push(state, parent)
	return parent
}

func countNonExtra(children []*Node) int {
	c := 0
	for _, n := range children {
		if !n.IsExtra() {
			c++
		}
	}
	return c
}

func (p *Parser) reduce(symbol Symbol, childCount int) {
	p.reduceCore(symbol, childCount, false, false)
	if p.debug != nil {
		p.debug.emit(DebugReduce, "reduce")
	}
}

func (p *Parser) reduceExtra(symbol Symbol) {
	n := p.reduceCore(symbol, 1, true, false)
	n.SetExtra(true)
	if p.debug != nil {
		p.debug.emit(DebugReduce, "reduce extra")
	}
}

func (p *Parser) reduceFragile(symbol Symbol, childCount int) {
	n := p.reduceCore(symbol, childCount, false, false)
	n.SetFragileLeft(true)
	n.SetFragileRight(true)
	if p.debug != nil {
		p.debug.emit(DebugReduce, "reduce fragile")
	}
}

// reduceError wraps the top n stack entries into an ERROR node, counting
// extras in n (they're already physically on the stack), and absorbs the
// buffered lookahead's padding into the error node's size.
func (p *Parser) reduceError(n int) *Node {
	errNode := p.reduceCore(symbolError, n, false, true)
	if p.lookahead != nil {
		errNode.size = AddLength(errNode.size, p.lookahead.padding)
		p.lookahead.padding = ZeroLength
	}
	errNode.SetFragileLeft(true)
	errNode.SetFragileRight(true)
	if p.debug != nil {
		p.debug.emit(DebugError, "reduce error")
	}
	return errNode
}

// finish performs the synthetic DOCUMENT reduction over whatever remains
// on the left stack and returns a caller-owned reference to it.
func (p *Parser) finish() *Node {
	doc := p.reduceCore(symbolDocument, p.stack.len(), false, true)
	return doc.Retain()
}

// lookupAction routes to the dense grid for ordinary grammar symbols and
// to the ERROR side-table when sym is the ERROR pseudo-symbol, since its
// reserved value can't be a column in the dense grid.
func (p *Parser) lookupAction(state StateID, sym Symbol) (ParseAction, bool) {
	if sym == symbolError {
		return p.language.GetErrorAction(state)
	}
	return p.language.GetAction(state, sym)
}

// handleError runs token-skip recovery. anchor is the stack index that was
// on top when the Error action was first encountered; it stays fixed across
// repeated token-skipping attempts. Returns true once recovery reduces an
// ERROR node and parsing can continue; false on fatal (end of input
// reached while still erroring), in which case the driver calls finish.
func (p *Parser) handleError() bool {
	anchor := p.stack.len() - 1

	for {
		for i := anchor; i >= 0; i-- {
			stateI := p.stack.entries[i].state
			onError, ok := p.language.GetErrorAction(stateI)
			if !ok {
				continue
			}
			after, ok := p.lookupAction(onError.ToState, p.lookahead.Symbol())
			if ok && after.Type != ActionError {
				p.reduceError(p.stack.len() - i - 1)
				return true
			}
		}

		// No anchor state accepts recovery with the current lookahead:
		// skip this token (keep it in the tree) and try the next one.
		p.shiftNode(p.stack.topState())
		p.lookahead = p.getNextNode(p.language.ErrorLexState)

		if p.lookahead.Symbol() == symbolEnd {
			p.reduceError(p.stack.len() - anchor - 1)
			return false
		}
	}
}

// drive runs the main shift-reduce loop until Accept or a fatal error
// recovery, returning the finished DOCUMENT tree.
func (p *Parser) drive() *Node {
	for {
		state := p.stack.topState()

		if p.lookahead == nil {
			lexState := LexStateID(0)
			if int(state) < len(p.language.LexStates) {
				lexState = p.language.LexStates[state]
			}
			p.lookahead = p.getNextNode(lexState)
		}

		if p.lookahead.Symbol() == symbolError {
			// The lexer itself produced an ERROR leaf (no token matched):
			// this never goes through the grammar's own action table.
			if !p.handleError() {
				return p.finish()
			}
			continue
		}

		action, ok := p.language.GetAction(state, p.lookahead.Symbol())
		actionType := ActionError
		if ok {
			actionType = action.Type
		}

		switch actionType {
		case ActionShift:
			p.shiftNode(action.ToState)
			if p.debug != nil {
				p.debug.emit(DebugShift, "shift")
			}

		case ActionShiftExtra:
			p.lookahead.SetExtra(true)
			p.shiftNode(state)
			if p.debug != nil {
				p.debug.emit(DebugShift, "shift extra")
			}

		case ActionReduce:
			p.reduce(action.Symbol, int(action.ChildCount))

		case ActionReduceExtra:
			p.reduceExtra(action.Symbol)

		case ActionReduceFragile:
			p.reduceFragile(action.Symbol, int(action.ChildCount))

		case ActionAccept:
			return p.finish()

		default: // ActionError
			if !p.handleError() {
				return p.finish()
			}
		}
	}
}
