// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

// Token represents a single line from the input.
type Token struct {
	Position

	// End is the byte offset in the original input slice.
	// It is exclusive and never includes the line ending:
	// input[Start:End] is the token's lexeme.
	End int

	Kind Kind // OpenTag, CloseTag, Text or EndOfInput

	// Value is the text of the line, without the line ending.
	Value string
}

// Is reports whether tok.Kind matches the provided kind.
//
// It returns false if tok is nil.
func (tok *Token) Is(kind Kind) bool {
	if tok == nil {
		return false
	}
	return tok.Kind == kind
}

// IsOneOf reports whether tok.Kind matches any of the provided kinds.
//
// It returns false if tok is nil.
func (tok *Token) IsOneOf(kinds ...Kind) bool {
	if tok == nil {
		return false
	}
	for _, kind := range kinds {
		if tok.Kind == kind {
			return true
		}
	}
	return false
}

// IsNot reports whether tok.Kind does not match the provided kind.
// It is the opposite of Is(kind)
//
// It returns true if tok is nil.
func (tok *Token) IsNot(kind Kind) bool {
	return !tok.Is(kind)
}

// IsNotOneOf reports whether tok.Kind is not any of the provided kinds.
// It is the opposite of IsOneOf(kinds)
//
// Returns true if tok is nil.
func (tok *Token) IsNotOneOf(kinds ...Kind) bool {
	return !tok.IsOneOf(kinds...)
}

// Name returns the tag name for OpenTag and CloseTag tokens and the
// verbatim line for everything else.
func (tok *Token) Name() string {
	switch tok.Kind {
	case OpenTag:
		return tok.Value[1 : len(tok.Value)-1]
	case CloseTag:
		return tok.Value[2 : len(tok.Value)-1]
	}
	return tok.Value
}

// Lexeme is a helper to return the original text of the token.
func (tok *Token) Lexeme(input []byte) []byte {
	return input[tok.Position.Start:tok.End]
}

// Position represents a position in the original source code.
// All fields are 1-based where applicable.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, character column
	Start  int // byte index into input (0-based); always required
}

// Span represents a range in the source: [Start, End).
type Span struct {
	// Byte offsets into the original input slice.
	// End is exclusive: input[Start:End] is the token's lexeme.
	Start int
	End   int

	// 1-based line and column of the *start* of the span.
	Line   int
	Column int
}

// spanFromToken creates a Span that covers a single token.
func spanFromToken(tok *Token) Span {
	return Span{
		Start:  tok.Position.Start,
		End:    tok.End,
		Line:   tok.Position.Line,
		Column: tok.Position.Column,
	}
}
