// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

//go:generate stringer --type Kind

// Kind implements enums for tokens
type Kind int

const (
	UNKNOWN Kind = iota

	OpenTag  // <name>
	CloseTag // </name>
	Text     // any line that isn't a tag

	EndOfInput // end of input
)
