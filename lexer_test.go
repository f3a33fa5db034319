// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mdhender/domtree"
)

func TestLexer_Classify(t *testing.T) {
	input := []byte("<html>\r\n  indented text \r\n<h1>\n</h1>\n</html>")
	l := domtree.NewLexer(context.Background(), "test", input, nil)

	want := []struct {
		kind  domtree.Kind
		value string
		name  string
		line  int
	}{
		{domtree.OpenTag, "<html>", "html", 1},
		{domtree.Text, "  indented text ", "  indented text ", 2},
		{domtree.OpenTag, "<h1>", "h1", 3},
		{domtree.CloseTag, "</h1>", "h1", 4},
		{domtree.CloseTag, "</html>", "html", 5},
	}
	for i, w := range want {
		tok := l.Scan()
		if tok.Kind != w.kind {
			t.Fatalf("%d: Kind = %s, want %s", i, tok.Kind, w.kind)
		}
		if tok.Value != w.value {
			t.Fatalf("%d: Value = %q, want %q", i, tok.Value, w.value)
		}
		if got := tok.Name(); got != w.name {
			t.Fatalf("%d: Name = %q, want %q", i, got, w.name)
		}
		if tok.Line != w.line {
			t.Fatalf("%d: Line = %d, want %d", i, tok.Line, w.line)
		}
		if got := string(tok.Lexeme(input)); got != w.value {
			t.Fatalf("%d: Lexeme = %q, want %q", i, got, w.value)
		}
	}

	eof := l.Scan()
	if !eof.Is(domtree.EndOfInput) {
		t.Fatalf("Kind = %s, want EndOfInput", eof.Kind)
	}
	if again := l.Scan(); again != eof {
		t.Fatalf("Scan after end of input returned a new token")
	}
	if n := len(l.Diagnostics()); n != 0 {
		t.Fatalf("Diagnostics = %d, want 0", n)
	}
}

func TestLexer_EmptyLinesAndTrailingNewline(t *testing.T) {
	toks, _ := domtree.ScanAll(context.Background(), "test", []byte("a\n\nb\n"), nil)
	if len(toks) != 3 {
		t.Fatalf("tokens = %d, want 3", len(toks))
	}
	if toks[1].Value != "" || toks[1].Kind != domtree.Text {
		t.Fatalf("tokens[1] = %s %q, want empty Text", toks[1].Kind, toks[1].Value)
	}

	toks, _ = domtree.ScanAll(context.Background(), "test", nil, nil)
	if len(toks) != 0 {
		t.Fatalf("empty input: tokens = %d, want 0", len(toks))
	}
}

func TestLexer_InvalidTagIsTextWithWarning(t *testing.T) {
	input := []byte("<p>\n<h-1>\n</>\n</p>\n")
	var logged bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logged, nil))

	toks, diags := domtree.ScanAll(context.Background(), "test.html", input, logger)
	if len(toks) != 4 {
		t.Fatalf("tokens = %d, want 4", len(toks))
	}
	if toks[1].Kind != domtree.Text || toks[2].Kind != domtree.Text {
		t.Fatalf("kinds = %s %s, want Text Text", toks[1].Kind, toks[2].Kind)
	}
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %d, want 2", len(diags))
	}
	if diags[0].Severity != slog.LevelWarn {
		t.Fatalf("Severity = %s, want WARN", diags[0].Severity)
	}
	if diags[0].Span.Line != 2 {
		t.Fatalf("Span.Line = %d, want 2", diags[0].Span.Line)
	}
	if !bytes.Contains(logged.Bytes(), []byte("test.html:2:1")) {
		t.Fatalf("log = %q, want position test.html:2:1", logged.String())
	}

	var w bytes.Buffer
	domtree.PrintDiagnostic(&w, diags[0], "test.html", input)
	want := "test.html:2:1: WARN: invalid tag name \"<h-1>\": treated as text\n    <h-1>\n    ^\n"
	if got := w.String(); got != want {
		t.Fatalf("PrintDiagnostic:\n got %q\nwant %q", got, want)
	}
}

func TestToken_NilSafe(t *testing.T) {
	var tok *domtree.Token
	if tok.Is(domtree.Text) || tok.IsOneOf(domtree.Text, domtree.OpenTag) {
		t.Fatalf("nil token matched a kind")
	}
	if !tok.IsNot(domtree.Text) || !tok.IsNotOneOf(domtree.Text) {
		t.Fatalf("nil token IsNot = false, want true")
	}
}

func TestKind_String(t *testing.T) {
	if got, want := domtree.CloseTag.String(), "CloseTag"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
	if got, want := domtree.Kind(42).String(), "Kind(42)"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}
