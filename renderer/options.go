// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer

import "fmt"

type Option func(p *Renderer) error

func WithMode(mode Mode) Option {
	return func(p *Renderer) error {
		switch mode {
		case Lines, Outline:
			p.mode = mode
			return nil
		}
		return fmt.Errorf("renderer: unknown mode %q", mode)
	}
}

// WithLineEnding sets the line ending used by the Lines mode.
// Only "\n" and "\r\n" are accepted.
func WithLineEnding(eol string) Option {
	return func(p *Renderer) error {
		if eol != "\n" && eol != "\r\n" {
			return fmt.Errorf("renderer: invalid line ending %q", eol)
		}
		p.lineEnding = eol
		return nil
	}
}
