// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

// Rename relabels every node whose label is exactly oldName. Text nodes
// are not excluded: a text line equal to oldName is relabeled too.
func (t *Tree) Rename(oldName, newName string) {
	if t.IsEmpty() {
		return
	}
	rename(t.Root, oldName, newName)
}

// rename visits the node, then its siblings, then its children.
func rename(node *Node, oldName, newName string) {
	if node.Label == oldName {
		node.Label = newName
	}
	if node.NextSibling != nil {
		rename(node.NextSibling, oldName, newName)
	}
	if node.FirstChild != nil {
		rename(node.FirstChild, oldName, newName)
	}
}
