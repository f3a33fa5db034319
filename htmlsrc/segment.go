// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package htmlsrc converts ordinary HTML into the line format, one token
// per line, so that it can be built into a tree.
package htmlsrc

import (
	"errors"
	"io"
	"strings"

	"github.com/mdhender/domtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// void elements never have content or an end tag.
var void = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// raw elements are dropped along with everything inside them.
var raw = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}

type openTag struct {
	name string
	line int // index of the opening line in the output
}

// Segment reads HTML from r and returns it as lines in the line format.
//
// Start and end tags become "<name>" and "</name>" with attributes dropped.
// Text is split on line breaks, trimmed, and empty lines are skipped.
// Comments, doctypes, self-closing tags, void elements and script or style
// elements are dropped. End tags with no matching start tag are dropped,
// elements left open are closed implicitly, and elements that end up with
// no content are removed since the line format can't express them.
func Segment(r io.Reader) ([]string, error) {
	z := html.NewTokenizer(r)
	var out []string
	var stack []openTag
	var skip atom.Atom // raw element being skipped, or 0

	closeTo := func(depth int) {
		for len(stack) > depth {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.line == len(out)-1 {
				out = out[:top.line]
				continue
			}
			out = append(out, "</"+top.name+">")
		}
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			closeTo(0)
			if len(out) == 0 {
				return nil, nil
			}
			return out, nil
		case html.StartTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skip != 0 || void[a] {
				continue
			} else if raw[a] {
				skip = a
				continue
			}
			tag := "<" + string(name) + ">"
			if domtree.Classify(tag) != domtree.OpenTag {
				continue
			}
			stack = append(stack, openTag{name: string(name), line: len(out)})
			out = append(out, tag)
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skip != 0 {
				if a == skip {
					skip = 0
				}
				continue
			}
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == string(name) {
					closeTo(i)
					break
				}
			}
		case html.TextToken:
			if skip != 0 {
				continue
			}
			for _, line := range strings.Split(string(z.Text()), "\n") {
				line = strings.TrimSpace(line)
				// text that would read back as a tag has no representation
				if line == "" || domtree.Classify(line) != domtree.Text {
					continue
				}
				out = append(out, line)
			}
		}
	}
}
