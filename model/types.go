// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package model

import (
	"time"
)

// Document is a named line-format document whose edits are tracked.
type Document struct {
	ID        int64     `json:"id"        db:"id"`
	Name      string    `json:"name"      db:"name"` // caller chosen, unique
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Revision is the rendered text of a document after one operation.
// Seq starts at 1 for each document and has no gaps.
type Revision struct {
	ID         int64     `json:"id"         db:"id"`
	DocumentID int64     `json:"documentId" db:"document_id"`
	Seq        int       `json:"seq"        db:"seq"`
	Op         string    `json:"op"         db:"op"`   // "build", or an edit such as `wrap "cat" "b"`
	Hash       string    `json:"hash"       db:"hash"` // hex sha3-256 of Text
	Text       string    `json:"text"       db:"text"`
	CreatedAt  time.Time `json:"createdAt"  db:"created_at"`
}

// OpBuild is the operation recorded for the revision created from the input.
const OpBuild = "build"
