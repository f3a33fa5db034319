// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package parser

import (
	"errors"
	"log/slog"

	"github.com/spf13/afero"
)

type Option func(p *Parser) error

// WithAutoEOL converts CR+LF and lone CR line endings to LF before lexing.
func WithAutoEOL(flag bool) Option {
	return func(p *Parser) error {
		p.autoEOL = flag
		return nil
	}
}

// WithStripCR converts CR+LF line endings to LF before lexing.
func WithStripCR(flag bool) Option {
	return func(p *Parser) error {
		p.stripCR = flag
		return nil
	}
}

// WithFS sets the filesystem the input is read from.
func WithFS(fs afero.Fs) Option {
	return func(p *Parser) error {
		if fs == nil {
			return errors.New("parser: nil filesystem")
		}
		p.fs = fs
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		p.logger = logger
		return nil
	}
}
