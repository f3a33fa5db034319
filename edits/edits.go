// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package edits implements edit scripts: ordered lists of tree edits
// loaded from YAML and applied to a single tree.
package edits

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mdhender/domtree"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Operations understood by Step.
const (
	OpRename = "rename" // old, new
	OpRemove = "remove" // tag
	OpWrap   = "wrap"   // word, tag
	OpBold   = "bold"   // row
)

// Step is a single edit. Only the fields used by Op are read.
type Step struct {
	Op   string `yaml:"op"`
	Old  string `yaml:"old,omitempty"`
	New  string `yaml:"new,omitempty"`
	Tag  string `yaml:"tag,omitempty"`
	Word string `yaml:"word,omitempty"`
	Row  int    `yaml:"row,omitempty"`
}

// Script is the document format of an edit script.
type Script struct {
	Edits []Step `yaml:"edits"`
}

// Parse decodes and validates a script. Unknown fields are rejected.
// An empty document is an empty script.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("edits: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a script from the filesystem.
func Load(fs afero.Fs, path string) (*Script, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate reports every step with an unknown op or a missing argument.
// Row numbers are not checked; an out of range row is a no-op when applied.
func (s *Script) Validate() error {
	var errs []error
	for i, step := range s.Edits {
		if err := step.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("edit %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) Validate() error {
	missing := func(field string) error {
		return fmt.Errorf("%s: missing %s", s.Op, field)
	}
	switch s.Op {
	case OpRename:
		if s.Old == "" {
			return missing("old")
		} else if s.New == "" {
			return missing("new")
		}
	case OpRemove:
		if s.Tag == "" {
			return missing("tag")
		}
	case OpWrap:
		if s.Word == "" {
			return missing("word")
		} else if s.Tag == "" {
			return missing("tag")
		}
	case OpBold:
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// Apply runs the step against the tree. Steps that don't apply leave the
// tree unchanged.
func (s Step) Apply(tree *domtree.Tree) {
	switch s.Op {
	case OpRename:
		tree.Rename(s.Old, s.New)
	case OpRemove:
		tree.RemoveTag(s.Tag)
	case OpWrap:
		tree.WrapWord(s.Word, s.Tag)
	case OpBold:
		tree.BoldRow(s.Row)
	}
}

func (s Step) String() string {
	switch s.Op {
	case OpRename:
		return fmt.Sprintf("rename %q %q", s.Old, s.New)
	case OpRemove:
		return fmt.Sprintf("remove %q", s.Tag)
	case OpWrap:
		return fmt.Sprintf("wrap %q %q", s.Word, s.Tag)
	case OpBold:
		return fmt.Sprintf("bold %d", s.Row)
	}
	return fmt.Sprintf("%s?", s.Op)
}

// Apply runs every step of the script, in order, against the same tree.
func Apply(tree *domtree.Tree, s *Script, logger *slog.Logger) {
	for i, step := range s.Edits {
		step.Apply(tree)
		if logger != nil {
			logger.Debug("edit", "step", i+1, "op", step.String())
		}
	}
}
