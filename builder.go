// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

/*
Builder invariants:
 * The token sequence is trusted. Every opening tag is assumed to have a
   matching closing tag, but names are never compared: any closing tag ends
   the scan that is in progress.
 * build(c, node, true) fills node's first-child slot. It consumes node's
   children, node's closing tag and then continues as build(c, node, false).
 * build(c, node, false) fills node's next-sibling slot. It consumes node's
   remaining siblings and the closing tag of their parent.
 * Depth is encoded by token order alone, so an opening tag that is
   immediately closed ("<p>", "</p>") produces a leaf and the tokens after
   it are scoped one level too high. That is what the format promises and
   it is reproduced, not repaired.
 * EndOfInput, or running out of tokens, ends every scan.
*/

// cursor hands out tokens in input order.
type cursor struct {
	toks []*Token
	pos  int
}

// advance consumes and returns the next token. It returns nil once the
// tokens are exhausted or the end of input token is reached, and keeps
// returning nil after that.
func (c *cursor) advance() *Token {
	if c.pos >= len(c.toks) {
		return nil
	}
	tok := c.toks[c.pos]
	if tok == nil || tok.Kind == EndOfInput {
		c.pos = len(c.toks)
		return nil
	}
	c.pos++
	return tok
}

// Build creates a tree from the tokens. It returns an empty tree if there
// are no tokens or the first token is a closing tag.
//
// The first token becomes the root. If it is an opening tag the root's
// children are scanned; if it is text, the scan continues with the root's
// siblings.
func Build(tokens []*Token) *Tree {
	c := &cursor{toks: tokens}
	first := c.advance()
	if first.IsNotOneOf(OpenTag, Text) {
		return &Tree{}
	}
	root := &Node{Label: first.Name()}
	build(c, root, first.Kind == OpenTag)
	return &Tree{Root: root}
}

// BuildLines classifies each line and builds a tree from the result.
func BuildLines(lines []string) *Tree {
	tokens := make([]*Token, 0, len(lines))
	for n, line := range lines {
		tokens = append(tokens, &Token{
			Position: Position{Line: n + 1, Column: 1},
			Kind:     classify(line),
			Value:    line,
		})
	}
	return Build(tokens)
}

// build is the single recursive procedure that reads both child lists
// and sibling lists. mayHaveChildren selects which slot of node is filled.
func build(c *cursor, node *Node, mayHaveChildren bool) {
	tok := c.advance()
	if tok.IsNotOneOf(OpenTag, Text) {
		return
	}

	next := &Node{Label: tok.Name()}
	isOpeningTag := tok.Kind == OpenTag

	if mayHaveChildren {
		node.FirstChild = next
		build(c, next, isOpeningTag)
		// children are done, look for node's next sibling
		build(c, node, false)
		return
	}

	node.NextSibling = next
	build(c, next, isOpeningTag)
}
