// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree_test

import (
	"testing"

	"github.com/mdhender/domtree"
)

func TestBoldRow(t *testing.T) {
	tree := buildFrom(t, tableDoc)

	tree.BoldRow(2)

	assertRender(t, tree, lines(
		"<html>",
		"<body>",
		"<table>",
		"<tr>",
		"<td>",
		"a",
		"</td>",
		"<td>",
		"b",
		"</td>",
		"</tr>",
		"<tr>",
		"<td>",
		"<b>",
		"c",
		"</b>",
		"</td>",
		"<td>",
		"<b>",
		"d",
		"</b>",
		"</td>",
		"</tr>",
		"</table>",
		"</body>",
		"</html>",
	))
}

func TestBoldRow_NoOp(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		row   int
	}{
		{"row zero", tableDoc, 0},
		{"negative row", tableDoc, -3},
		{"past last row", tableDoc, 3},
		{"no table", lines("<p>", "text", "</p>"), 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildFrom(t, tc.input)
			tree.BoldRow(tc.row)
			assertRender(t, tree, tc.input)
		})
	}
	(&domtree.Tree{}).BoldRow(1) // must not panic
}

func TestFindTable_SiblingsBeforeChildren(t *testing.T) {
	tree := buildFrom(t, lines(
		"<body>",
		"<div>",
		"<table>",
		"<tr>",
		"<td>",
		"deep",
		"</td>",
		"</tr>",
		"</table>",
		"</div>",
		"<table>",
		"<tr>",
		"<td>",
		"shallow",
		"</td>",
		"</tr>",
		"</table>",
		"</body>",
	))

	table := tree.FindTable()
	if table == nil {
		t.Fatalf("FindTable = nil, want table")
	}
	if got := table.FirstChild.FirstChild.FirstChild.Label; got != "shallow" {
		t.Fatalf("found table holding %q, want shallow", got)
	}

	tree.BoldRow(1)
	if n := countLabel(tree, "b"); n != 1 {
		t.Fatalf("b count = %d, want 1", n)
	}
	if got := table.FirstChild.FirstChild.FirstChild.Label; got != "b" {
		t.Fatalf("shallow cell = %q, want b", got)
	}
}

func TestFindTable_EarlierSiblingSubtreesAreSkipped(t *testing.T) {
	input := lines(
		"<body>",
		"<div>",
		"<table>",
		"<tr>",
		"<td>",
		"hidden",
		"</td>",
		"</tr>",
		"</table>",
		"</div>",
		"<p>",
		"text",
		"</p>",
		"</body>",
	)
	tree := buildFrom(t, input)

	if table := tree.FindTable(); table != nil {
		t.Fatalf("FindTable = %q, want nil", table.Label)
	}
	tree.BoldRow(1)
	assertRender(t, tree, input)
}

func TestBoldRow_EmptyCellIsSkipped(t *testing.T) {
	tree := domtree.New(&domtree.Node{
		Label: "table",
		FirstChild: &domtree.Node{
			Label: "tr",
			FirstChild: &domtree.Node{
				Label:       "td", // a leaf, nothing to bold
				NextSibling: &domtree.Node{Label: "td", FirstChild: &domtree.Node{Label: "x"}},
			},
		},
	})

	tree.BoldRow(1)

	assertRender(t, tree, lines("<table>", "<tr>", "td", "<td>", "<b>", "x", "</b>", "</td>", "</tr>", "</table>"))
}
