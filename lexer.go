// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
)

// Lexer invariants and coordinate system
//
// The lexer treats input as an immutable byte slice and returns exactly one
// token for every line in it.
//
// Fields:
//   input  - the original []byte
//   length - len(input)
//   pos    - index into input of the first byte of the next line,
//            or length when every line has been returned.
//   line   - 1-based number of the next line.
//
// Invariants (must always hold):
//   0 <= pos <= length
//
//   endToken != nil => pos == length
//
// Lines:
//
//   - A line ends at LF or at the end of input. The LF is never part of the
//     token. A CR immediately before the LF is dropped too, so "\r\n" and "\n"
//     produce the same tokens. Any other CR is text.
//
//   - Input that ends with a line ending does not produce a trailing empty
//     token. Empty lines in the middle of the input are Text tokens with an
//     empty Value.
//
//   - Each line is classified on its own: "<name>" is OpenTag, "</name>" is
//     CloseTag, anything else is Text. The lexer never rejects input; a line
//     that looks like a tag but has an invalid name is Text and a warning is
//     recorded in the diagnostics.

type Lexer struct {
	name   string // name of the input source
	line   int    // line number of the next line
	pos    int    // position of the next line
	length int    // length of input buffer
	input  []byte

	// returns a canonical end of input token
	endToken *Token

	diagnostics []Diagnostic

	// logging
	ctx        context.Context
	logger     *slog.Logger
	tokenCount int
}

func NewLexer(ctx context.Context, path string, input []byte, logger *slog.Logger) *Lexer {
	return &Lexer{
		name:   path,
		input:  input,
		length: len(input),
		line:   1,
		ctx:    ctx,
		logger: logger,
	}
}

// Scan returns the next token from the input buffer.
//
// Once we reach end of input, we always return the same EOF token.
func (l *Lexer) Scan() *Token {
	if l.iseof() {
		if l.endToken == nil {
			l.seteof()
		}
		return l.endToken
	}

	start, end, next := l.pos, l.length, l.length
	if n := bytes.IndexByte(l.input[start:], LF); n != -1 {
		end, next = start+n, start+n+1
		if end > start && l.input[end-1] == CR {
			end--
		}
	}

	tok := &Token{
		Position: Position{
			Line:   l.line,
			Column: 1,
			Start:  start,
		},
		End:   end,
		Value: string(l.input[start:end]),
	}
	tok.Kind = classify(tok.Value)
	if tok.Kind == Text && looksLikeTag(tok.Value) {
		l.warn(tok, "invalid tag name %q: treated as text", tok.Value)
	}

	l.pos, l.line = next, l.line+1
	l.tokenCount++
	return tok
}

// Diagnostics returns the warnings recorded so far.
func (l *Lexer) Diagnostics() []Diagnostic {
	return l.diagnostics
}

// ScanAll returns every token in the input, excluding the end of input token,
// along with any diagnostics.
func ScanAll(ctx context.Context, path string, input []byte, logger *slog.Logger) ([]*Token, []Diagnostic) {
	l := NewLexer(ctx, path, input, logger)
	var toks []*Token
	for tok := l.Scan(); tok.IsNot(EndOfInput); tok = l.Scan() {
		toks = append(toks, tok)
	}
	l.debug("scanned %d tokens, %d warnings", l.tokenCount, len(l.diagnostics))
	return toks, l.Diagnostics()
}

func looksLikeTag(line string) bool {
	return len(line) >= 2 && line[0] == '<' && line[len(line)-1] == '>'
}

func (l *Lexer) iseof() bool {
	return l.pos >= l.length
}

func (l *Lexer) warn(tok *Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.diagnostics = append(l.diagnostics, Diagnostic{
		Severity: slog.LevelWarn,
		Message:  msg,
		Span:     spanFromToken(tok),
	})
	if l.logger == nil {
		return
	}
	l.logger.WarnContext(l.ctx, fmt.Sprintf("%s:%d:%d %s", l.name, tok.Line, tok.Column, msg))
}

func (l *Lexer) debug(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.DebugContext(l.ctx, fmt.Sprintf("%s: %s", l.name, fmt.Sprintf(format, args...)))
}

// seteof updates the Lexer state to enforce the end of input invariants:
// * pos = length
// * endToken is set to the canonical EOF token
func (l *Lexer) seteof() {
	l.pos = l.length
	if l.endToken == nil {
		l.endToken = &Token{
			Position: Position{
				Line:   l.line,
				Column: 1,
				Start:  l.length,
			},
			End:  l.length,
			Kind: EndOfInput,
		}
	}
}
