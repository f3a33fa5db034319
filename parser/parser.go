// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package parser reads line-format documents from a filesystem and builds
// trees from them.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mdhender/domtree"
	"github.com/spf13/afero"
)

type Parser struct {
	fs      afero.Fs
	path    string
	autoEOL bool
	stripCR bool
	logger  *slog.Logger
	input   []byte
}

func New(path string, options ...Option) (*Parser, error) {
	p := &Parser{
		fs:   afero.NewOsFs(),
		path: path,
	}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse reads the file and builds a tree from it. Lexer warnings are
// returned, never treated as errors.
func (p *Parser) Parse(ctx context.Context) (*domtree.Tree, []domtree.Diagnostic, error) {
	started := time.Now()

	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", p.path, err)
	}
	tree, diags := p.ParseBytes(ctx, data)
	if p.logger != nil {
		p.logger.DebugContext(ctx, "parsed", "path", p.path, "bytes", len(data), "warnings", len(diags), "elapsed", time.Since(started))
	}
	return tree, diags, nil
}

// ParseBytes builds a tree from data that has already been read.
func (p *Parser) ParseBytes(ctx context.Context, data []byte) (*domtree.Tree, []domtree.Diagnostic) {
	p.input = p.normalize(data)
	toks, diags := domtree.ScanAll(ctx, p.path, p.input, p.logger)
	return domtree.Build(toks), diags
}

// Input returns the normalized text of the last parse, for printing diagnostics.
func (p *Parser) Input() []byte {
	return p.input
}

func (p *Parser) normalize(data []byte) []byte {
	if p.autoEOL {
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
		data = bytes.ReplaceAll(data, []byte{'\r'}, []byte{'\n'})
	} else if p.stripCR {
		data = bytes.ReplaceAll(data, []byte{'\r', '\n'}, []byte{'\n'})
	}
	return data
}
