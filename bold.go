// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

// Labels used when bolding a table row.
const (
	TableTag = "table"
	BoldTag  = "b"
)

// BoldRow wraps the content of every cell in the given row of the first
// table found by FindTable with a new "b" element. Rows are numbered from 1.
//
// It does nothing if there is no table, row is less than 1, or the table
// has fewer rows. Cells without content are left alone.
func (t *Tree) BoldRow(row int) {
	if t.IsEmpty() || row < 1 {
		return
	}
	table := t.FindTable()
	if table == nil {
		return
	}
	tr := table.FirstChild
	for i := 1; i < row && tr != nil; i++ {
		tr = tr.NextSibling
	}
	if tr == nil {
		return
	}
	for cell := tr.FirstChild; cell != nil; cell = cell.NextSibling {
		if cell.FirstChild == nil {
			continue
		}
		cell.FirstChild = &Node{Label: BoldTag, FirstChild: cell.FirstChild}
	}
}

// FindTable returns the first node labeled "table", or nil.
//
// The search is not a plain pre-order walk. From each node it follows the
// sibling chain to its end and only descends into the first child of the
// last sibling. When several tables exist, the one reached by drifting
// right at the shallowest level wins, and tables inside earlier siblings
// are never seen.
func (t *Tree) FindTable() *Node {
	if t.IsEmpty() {
		return nil
	}
	return findTable(t.Root)
}

func findTable(node *Node) *Node {
	for node != nil {
		if node.Label == TableTag {
			return node
		} else if node.NextSibling != nil {
			node = node.NextSibling
		} else {
			node = node.FirstChild
		}
	}
	return nil
}
