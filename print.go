// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

import (
	"bufio"
	"io"
	"strings"
)

// Print writes an outline of the tree, one label per line. Nested levels
// are indented six spaces and marked with "|----".
//
//	     html
//	      |----body
//	            |----p
//	                  |----hello
func (t *Tree) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if !t.IsEmpty() {
		printNodes(bw, t.Root, 1)
	}
	return bw.Flush()
}

func printNodes(w *bufio.Writer, node *Node, level int) {
	for ; node != nil; node = node.NextSibling {
		w.WriteString(strings.Repeat("      ", level-1))
		if level == 1 {
			w.WriteString("     ")
		} else {
			w.WriteString("|----")
		}
		w.WriteString(node.Label)
		w.WriteByte(LF)
		if node.FirstChild != nil {
			printNodes(w, node.FirstChild, level+1)
		}
	}
}
