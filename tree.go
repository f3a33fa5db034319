// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

import "strings"

// Node is the only entity in the tree. A node with a first child is an
// element and Label is its tag name. A node without a first child is text
// and Label is the literal line.
//
// There are no parent or previous-sibling links. Code that splices nodes
// carries that context as it descends.
type Node struct {
	Label       string
	FirstChild  *Node
	NextSibling *Node
}

// IsElement reports whether the node has children.
func (n *Node) IsElement() bool {
	return n != nil && n.FirstChild != nil
}

// IsText reports whether the node is a leaf.
func (n *Node) IsText() bool {
	return n != nil && n.FirstChild == nil
}

// Children returns the node's children in order.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// lastSibling returns the final node of the sibling chain that starts at n.
func (n *Node) lastSibling() *Node {
	for n.NextSibling != nil {
		n = n.NextSibling
	}
	return n
}

// Tree owns the root node. The zero value is an empty tree.
type Tree struct {
	Root *Node
}

// New returns a tree that owns root.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.Root == nil
}

// Walk visits every node in pre-order: a node, then its children, then
// its siblings. It stops early if fn returns false.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.IsEmpty() {
		return
	}
	walk(t.Root, fn)
}

func walk(n *Node, fn func(n *Node) bool) bool {
	for ; n != nil; n = n.NextSibling {
		if !fn(n) {
			return false
		}
		if n.FirstChild != nil && !walk(n.FirstChild, fn) {
			return false
		}
	}
	return true
}

// StripBrackets accepts a tag name either bare ("b") or bracketed ("<b>")
// and returns the bare name.
func StripBrackets(name string) string {
	if open := strings.IndexByte(name, '<'); open != -1 {
		if end := strings.IndexByte(name[open+1:], '>'); end != -1 {
			return name[open+1 : open+1+end]
		}
	}
	return name
}
