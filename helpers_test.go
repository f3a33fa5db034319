// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mdhender/domtree"
)

// lines joins its arguments into LF terminated input text.
func lines(ll ...string) string {
	return strings.Join(ll, "\n") + "\n"
}

func buildFrom(t *testing.T, input string) *domtree.Tree {
	t.Helper()
	toks, diags := domtree.ScanAll(context.Background(), t.Name(), []byte(input), nil)
	if len(diags) != 0 {
		t.Fatalf("scan: got %d diagnostics, want 0: %v", len(diags), diags)
	}
	return domtree.Build(toks)
}

// labels returns every label in pre-order.
func labels(tree *domtree.Tree) []string {
	var list []string
	tree.Walk(func(n *domtree.Node) bool {
		list = append(list, n.Label)
		return true
	})
	return list
}

func countLabel(tree *domtree.Tree, label string) (count int) {
	tree.Walk(func(n *domtree.Node) bool {
		if n.Label == label {
			count++
		}
		return true
	})
	return count
}

func assertRender(t *testing.T, tree *domtree.Tree, want string) {
	t.Helper()
	if got := tree.Render(); got != want {
		t.Fatalf("Render:\n got %q\nwant %q", got, want)
	}
}

var tableDoc = lines(
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
	"c",
	"</td>",
	"<td>",
	"d",
	"</td>",
	"</tr>",
	"</table>",
	"</body>",
	"</html>",
)
