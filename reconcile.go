package increparse

// breakDownLeftStack reconciles the left stack against an edit: it walks
// the left stack from the top, popping nodes that straddle or follow the edit
// position and re-pushing whichever of their children remain valid —
// either back onto the left stack (content before the edit) or onto the
// right stack (content after the edit, to be offered back to the driver
// as reusable lookahead via breakDownRightStack). It returns the
// resumption position for the lexer.
func (p *Parser) breakDownLeftStack(edit InputEdit) Length {
	p.rightStack.shrink(0)

	prevTotal := p.stack.totalTreeSize()
	p.totalChars = prevTotal.Chars + edit.CharsInserted - edit.CharsRemoved

	leftEnd := prevTotal
	rightStart := p.totalChars

	for {
		node := p.stack.topNode()
		if node == nil {
			break
		}
		if leftEnd.Chars < edit.Position && node.IsLeaf() && node.Symbol() != symbolError {
			break
		}

		p.stack.truncate(p.stack.len() - 1)
		leftEnd = SubLength(leftEnd, node.TotalSize())

		children := node.Children()
		i := 0
		for ; i < len(children) && leftEnd.Chars < edit.Position; i++ {
			child := children[i]
			curState := p.stack.topState()

			var nextState StateID
			if child.IsExtra() {
				nextState = curState
			} else {
				action, ok := p.language.GetAction(curState, child.Symbol())
				if !ok || action.Type != ActionShift {
					// A non-Shift action here means the child can't be
					// safely re-pushed under an undefined state. Stop the
					// left-to-right walk; the right-to-left pass below
					// still gets a chance at it.
					break
				}
				nextState = action.ToState
			}

			p.stack.push(nextState, child.Retain())
			leftEnd = AddLength(leftEnd, child.TotalSize())
		}

		for j := len(children) - 1; j >= i; j-- {
			child := children[j]
			rightStart -= child.TotalSize().Chars
			if rightStart < edit.Position+edit.CharsInserted {
				break
			}
			p.rightStack.push(0, child.Retain())
		}

		node.Release()
	}

	return leftEnd
}

// breakDownRightStack either hands back a reusable
// node from the right stack as the next lookahead, or decomposes the
// right stack's top node into children and keeps looking, or reports
// that no reuse is available (nil) so the driver falls back to the
// language's LexFunc.
func (p *Parser) breakDownRightStack() *Node {
	cursor := p.lexer.Position().Chars
	state := p.stack.topState()
	rightStart := p.totalChars - p.rightStack.totalTreeSize().Chars

	for {
		node := p.rightStack.topNode()
		if node == nil {
			return nil
		}
		if rightStart > cursor {
			return nil
		}

		action, ok := p.language.GetAction(state, node.Symbol())
		usable := ok && action.Type != ActionError && node.isReusableLookahead()

		if usable && rightStart == cursor {
			p.rightStack.truncate(p.rightStack.len() - 1)
			return node
		}

		p.rightStack.truncate(p.rightStack.len() - 1)
		rightStart += node.TotalSize().Chars

		children := node.Children()
		for j := len(children) - 1; j >= 0; j-- {
			child := children[j]
			if rightStart <= cursor {
				break
			}
			p.rightStack.push(0, child.Retain())
			rightStart -= child.TotalSize().Chars
		}

		node.Release()
	}
}
