// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree_test

import (
	"bytes"
	"testing"

	"github.com/mdhender/domtree"
)

func TestWriteTo(t *testing.T) {
	tree := buildFrom(t, tableDoc)
	var b bytes.Buffer
	n, err := tree.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(len(tableDoc)) {
		t.Fatalf("WriteTo = %d bytes, want %d", n, len(tableDoc))
	}
	if got := b.String(); got != tableDoc {
		t.Fatalf("WriteTo:\n got %q\nwant %q", got, tableDoc)
	}
}

func TestRender_AfterEdits(t *testing.T) {
	tree := buildFrom(t, lines("<ul>", "<li>", "the cat", "</li>", "</ul>"))

	tree.RemoveTag("ul")
	tree.WrapWord("cat", "b")
	tree.Rename("p", "div")

	assertRender(t, tree, lines("<div>", "the ", "<b>", "cat", "</b>", "</div>"))
}

func TestPrint(t *testing.T) {
	tree := buildFrom(t, lines("<html>", "<body>", "hello", "world", "</body>", "</html>"))

	var b bytes.Buffer
	if err := tree.Print(&b); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "     html\n" +
		"      |----body\n" +
		"            |----hello\n" +
		"            |----world\n"
	if got := b.String(); got != want {
		t.Fatalf("Print:\n got %q\nwant %q", got, want)
	}

	b.Reset()
	if err := (&domtree.Tree{}).Print(&b); err != nil || b.Len() != 0 {
		t.Fatalf("Print(empty) = %q, %v; want empty", b.String(), err)
	}
}
