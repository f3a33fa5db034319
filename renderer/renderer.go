// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mdhender/domtree"
)

// Mode selects the output format.
type Mode string

const (
	Lines   Mode = "lines"   // the line format the tree was built from
	Outline Mode = "outline" // indented labels, for reading
)

type Renderer struct {
	mode       Mode
	lineEnding string
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		mode:       Lines,
		lineEnding: "\n",
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, tree *domtree.Tree) error {
	switch r.mode {
	case Outline:
		return tree.Print(w)
	case Lines:
		if r.lineEnding == "\n" {
			_, err := tree.WriteTo(w)
			return err
		}
		text := bytes.ReplaceAll([]byte(tree.Render()), []byte{'\n'}, []byte(r.lineEnding))
		_, err := w.Write(text)
		return err
	}
	return fmt.Errorf("renderer: unknown mode %q", r.mode)
}
