// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

import (
	"bytes"
	"io"
)

// Render returns the tree in the line format it was built from. Each text
// node is one line; each element is an opening tag line, its children, and
// a closing tag line. Every line, including the last, ends with LF.
//
// For a tree built from well-nested input and not mutated since, the
// result is identical to the input.
func (t *Tree) Render() string {
	var b bytes.Buffer
	if !t.IsEmpty() {
		render(&b, t.Root)
	}
	return b.String()
}

// WriteTo implements io.WriterTo.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	if !t.IsEmpty() {
		render(&b, t.Root)
	}
	return b.WriteTo(w)
}

func render(b *bytes.Buffer, node *Node) {
	for ; node != nil; node = node.NextSibling {
		if node.FirstChild == nil {
			b.WriteString(node.Label)
			b.WriteByte(LF)
			continue
		}
		b.WriteByte('<')
		b.WriteString(node.Label)
		b.WriteString(">\n")
		render(b, node.FirstChild)
		b.WriteString("</")
		b.WriteString(node.Label)
		b.WriteString(">\n")
	}
}
