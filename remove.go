// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

// Labels of list items before and after their container is removed.
const (
	ListItem  = "li"
	Paragraph = "p"
)

// isListContainer reports whether removing the tag converts its items.
func isListContainer(name string) bool {
	return name == "ol" || name == "ul"
}

// RemoveTag removes every element labeled name, promoting its children
// into its place. name may be bare ("ul") or bracketed ("<ul>").
//
// When name is "ol" or "ul", the immediate "li" children of each removed
// element become "p" before they are promoted. Deeper descendants are not
// touched.
//
// A removed root is replaced by its children. Anything to the right of
// the root is dropped, since a root has no parent to hold it.
//
// Text nodes are never removed, even when their label equals name.
func (t *Tree) RemoveTag(name string) {
	if t.IsEmpty() {
		return
	}
	name = StripBrackets(name)
	for t.Root != nil && t.Root.Label == name && t.Root.IsElement() {
		root := t.Root
		root.NextSibling = nil
		splice(&t.Root, isListContainer(name))
	}
	removeTag(&t.Root, name)
}

// removeTag walks the chain that starts in slot. A slot is the link that
// owns the node: the tree's root, a parent's first-child link, or a
// previous sibling's next-sibling link. Splicing a node out is one
// assignment to its slot.
//
// Siblings are explored before children. After a removal the slot is
// examined again, since it now holds the first promoted node, which may
// itself need removing.
func removeTag(slot **Node, name string) {
	for *slot != nil && (*slot).Label == name && (*slot).IsElement() {
		splice(slot, isListContainer(name))
	}
	node := *slot
	if node == nil {
		return
	}
	if node.NextSibling != nil {
		removeTag(&node.NextSibling, name)
	}
	if node.FirstChild != nil {
		removeTag(&node.FirstChild, name)
	}
}

// splice replaces the element in slot with its children. The element's
// former siblings are appended after the last promoted child, so nothing
// to the right of the element is lost.
func splice(slot **Node, convertItems bool) {
	node := *slot
	if convertItems {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Label == ListItem {
				child.Label = Paragraph
			}
		}
	}
	promoted := node.FirstChild
	promoted.lastSibling().NextSibling = node.NextSibling
	*slot = promoted
	node.FirstChild, node.NextSibling = nil, nil
}
