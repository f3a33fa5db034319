// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

const (
	// CR and LF are control characters, respectively coded 0x0D (13 decimal) and 0x0A (10 decimal).
	// Windows uses CR + LF, Unix/Mac uses LF, Classic Mac uses CR.
	// This package doesn't support Classic Mac, so stray CR characters are kept as text.

	// CR is 0x0D or '\r'
	CR byte = 13

	// LF is 0x0A or '\n'
	LF byte = 10
)

func isletter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isdigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// istagname reports whether s is a letter followed by letters or digits.
func istagname(s string) bool {
	if len(s) == 0 || !isletter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isletter(s[i]) && !isdigit(s[i]) {
			return false
		}
	}
	return true
}

// Classify returns the kind of a single line: OpenTag, CloseTag or Text.
func Classify(line string) Kind {
	return classify(line)
}

func classify(line string) Kind {
	n := len(line)
	if n < 3 || line[0] != '<' || line[n-1] != '>' {
		return Text
	} else if line[1] == '/' {
		if istagname(line[2 : n-1]) {
			return CloseTag
		}
		return Text
	} else if istagname(line[1 : n-1]) {
		return OpenTag
	}
	return Text
}
