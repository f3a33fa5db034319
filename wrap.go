// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package domtree

import (
	"github.com/dlclark/regexp2"
)

// wordMatcher returns a case-insensitive matcher for word as a whole token.
// A match starts at the beginning of the text or after whitespace, may
// absorb one trailing punctuation mark, and ends at whitespace or the end
// of the text. The word is matched literally. Whitespace is the ASCII set
// only; a non-breaking space does not separate words.
func wordMatcher(word string) *regexp2.Regexp {
	pattern := `(?<=^|` + asciiSpace + `)` + regexp2.Escape(word) + `[,:;?!.]?(?=` + asciiSpace + `|$)`
	return regexp2.MustCompile(pattern, regexp2.IgnoreCase)
}

const asciiSpace = `[ \t\n\x0B\f\r]`

// segment is a run of text that either matched the word or did not.
type segment struct {
	text  string
	match bool
}

// splitWord cuts text into alternating runs of matches and non-matches.
// Empty runs are dropped. It returns nil if the word does not occur.
//
// Runs are sliced from text by byte offset, so bytes that are not valid
// UTF-8 are kept as they are.
func splitWord(re *regexp2.Regexp, text string) []segment {
	runes := []rune(text)
	m, err := re.FindRunesMatch(runes)
	if err != nil || m == nil {
		return nil
	}
	// offsets[i] is the byte offset of rune i; an invalid byte counts as
	// one rune, the same as in the conversion above.
	offsets := make([]int, 0, len(runes)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var segs []segment
	pos := 0
	for ; m != nil && err == nil; m, err = re.FindNextMatch(m) {
		if m.Index > pos {
			segs = append(segs, segment{text: text[offsets[pos]:offsets[m.Index]]})
		}
		end := m.Index + m.Length
		segs = append(segs, segment{text: text[offsets[m.Index]:offsets[end]], match: true})
		pos = end
	}
	if pos < len(runes) {
		segs = append(segs, segment{text: text[offsets[pos]:]})
	}
	return segs
}

// WrapWord wraps every whole-word, case-insensitive occurrence of word in
// a text node with a new element labeled tag. tag may be bare or
// bracketed. A matched word keeps at most one trailing punctuation mark
// from ",:;?!." inside the wrapper.
//
// A text node containing matches is split in place into a chain of text
// nodes and wrapper elements that ends at the node's original sibling.
// New wrappers are never scanned again.
func (t *Tree) WrapWord(word, tag string) {
	if t.IsEmpty() || word == "" {
		return
	}
	wrapWord(t.Root, wordMatcher(word), StripBrackets(tag))
}

// wrapWord visits a node, its children, then its siblings.
func wrapWord(node *Node, re *regexp2.Regexp, tag string) {
	for node != nil {
		if node.IsElement() {
			wrapWord(node.FirstChild, re, tag)
		} else if segs := splitWord(re, node.Label); segs != nil {
			following := node.NextSibling
			rebuild(node, segs, tag).NextSibling = following
			// resume with the node that followed the original text
			node = following
			continue
		}
		node = node.NextSibling
	}
}

// rebuild overwrites node with the first segment and chains a new node
// after it for each remaining segment. It returns the last node of the
// chain.
func rebuild(node *Node, segs []segment, tag string) *Node {
	if first := segs[0]; first.match {
		node.Label = tag
		node.FirstChild = &Node{Label: first.text}
	} else {
		node.Label = first.text
	}
	prev := node
	for _, seg := range segs[1:] {
		next := &Node{Label: seg.text}
		if seg.match {
			next = &Node{Label: tag, FirstChild: next}
		}
		prev.NextSibling = next
		prev = next
	}
	return prev
}
