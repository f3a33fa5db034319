// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package stages runs edit scripts against documents and records each
// intermediate result.
package stages

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"

	"github.com/mdhender/domtree"
	"github.com/mdhender/domtree/edits"
	"github.com/mdhender/domtree/htmlsrc"
	"github.com/mdhender/domtree/model"
	"github.com/mdhender/domtree/parser"
	"github.com/spf13/afero"
)

// EditService loads a document, applies edits to it and writes the result.
type EditService struct {
	store  RevisionStore
	logger *slog.Logger
	fs     afero.Fs
}

// RevisionStore defines the store operations needed by EditService.
type RevisionStore interface {
	EnsureDocument(ctx context.Context, name string) (*model.Document, error)
	InsertRevision(ctx context.Context, rev *model.Revision) (int64, error)
}

// NewEditService creates a new EditService. A nil store disables
// revision tracking and a nil logger disables logging.
func NewEditService(store RevisionStore, logger *slog.Logger) *EditService {
	return &EditService{
		store:  store,
		logger: logger,
		fs:     afero.NewOsFs(),
	}
}

// SetFS sets the filesystem for testing.
func (s *EditService) SetFS(fs afero.Fs) {
	s.fs = fs
}

// EditRequest describes one run of the service.
type EditRequest struct {
	Input      string        // path of the document
	HTML       bool          // Input is HTML and is segmented into lines first
	Output     string        // optional, the rendered text is only returned when empty
	Script     *edits.Script // takes precedence over ScriptPath
	ScriptPath string        // YAML edit script
	Document   string        // revision history name, defaults to Input
}

// EditResult is the outcome of a successful run.
type EditResult struct {
	Text        string
	Diagnostics []domtree.Diagnostic
	Revisions   []*model.Revision // empty when there is no store
}

// Run builds the tree from the request's input, applies every edit in
// order and renders the final tree. With a store, the text after the
// build and after each edit is saved as a revision of the document.
func (s *EditService) Run(ctx context.Context, req EditRequest) (*EditResult, error) {
	script := req.Script
	if script == nil && req.ScriptPath != "" {
		var err error
		if script, err = s.loadScript(req.ScriptPath); err != nil {
			return nil, err
		}
	} else if script != nil {
		if err := script.Validate(); err != nil {
			return nil, &ErrScript{Err: err}
		}
	}

	tree, diags, err := s.load(ctx, req)
	if err != nil {
		return nil, err
	}
	result := &EditResult{Diagnostics: diags}

	var doc *model.Document
	if s.store != nil {
		name := req.Document
		if name == "" {
			name = req.Input
		}
		if doc, err = s.store.EnsureDocument(ctx, name); err != nil {
			return nil, &ErrDatabase{Op: "ensure document", Err: err}
		}
	}

	record := func(op string) error {
		if doc == nil {
			return nil
		}
		rev := &model.Revision{DocumentID: doc.ID, Op: op, Text: tree.Render()}
		if _, err := s.store.InsertRevision(ctx, rev); err != nil {
			return &ErrDatabase{Op: "insert revision", Err: err}
		}
		result.Revisions = append(result.Revisions, rev)
		return nil
	}

	if err := record(model.OpBuild); err != nil {
		return nil, err
	}
	if script != nil {
		for i, step := range script.Edits {
			step.Apply(tree)
			s.debug(ctx, "edit", "input", req.Input, "step", i+1, "op", step.String())
			if err := record(step.String()); err != nil {
				return nil, err
			}
		}
	}

	result.Text = tree.Render()
	if req.Output != "" {
		if err := s.write(req.Output, result.Text); err != nil {
			return nil, err
		}
		s.debug(ctx, "wrote", "output", req.Output, "bytes", len(result.Text))
	}
	return result, nil
}

func (s *EditService) loadScript(path string) (*edits.Script, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &ErrReadFile{Path: path, Err: err}
	}
	script, err := edits.Parse(data)
	if err != nil {
		return nil, &ErrScript{Path: path, Err: err}
	}
	return script, nil
}

func (s *EditService) load(ctx context.Context, req EditRequest) (*domtree.Tree, []domtree.Diagnostic, error) {
	data, err := afero.ReadFile(s.fs, req.Input)
	if err != nil {
		return nil, nil, &ErrReadFile{Path: req.Input, Err: err}
	}
	if req.HTML {
		lines, err := htmlsrc.Segment(bytes.NewReader(data))
		if err != nil {
			return nil, nil, &ErrReadFile{Path: req.Input, Err: err}
		}
		return domtree.BuildLines(lines), nil, nil
	}

	options := []parser.Option{parser.WithFS(s.fs), parser.WithStripCR(true)}
	if s.logger != nil {
		options = append(options, parser.WithLogger(s.logger))
	}
	p, err := parser.New(req.Input, options...)
	if err != nil {
		return nil, nil, err
	}
	tree, diags := p.ParseBytes(ctx, data)
	return tree, diags, nil
}

func (s *EditService) write(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return &ErrWriteFile{Op: "mkdir", Path: dir, Err: err}
		}
	}
	if err := afero.WriteFile(s.fs, path, []byte(text), 0644); err != nil {
		return &ErrWriteFile{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (s *EditService) debug(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.DebugContext(ctx, msg, args...)
	}
}
