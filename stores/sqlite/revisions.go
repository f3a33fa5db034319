// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/mdhender/domtree/model"
	"golang.org/x/crypto/sha3"
)

// HashText returns the hex encoded sha3-256 digest of text.
func HashText(text string) string {
	sum := sha3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// InsertDocument inserts a Document, sets doc.ID and returns it.
func (s *SQLiteStore) InsertDocument(ctx context.Context, doc *model.Document) (int64, error) {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO documents (name, created_at) VALUES (?, ?)`
	result, err := s.db.ExecContext(ctx, query, doc.Name, formatTime(doc.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert document %q: %w", doc.Name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	doc.ID = id
	return id, nil
}

// GetDocumentByName returns the named document, or nil if there is none.
func (s *SQLiteStore) GetDocumentByName(ctx context.Context, name string) (*model.Document, error) {
	const query = `SELECT id, name, created_at FROM documents WHERE name = ?`
	var doc model.Document
	var createdAt string
	err := s.db.QueryRowContext(ctx, query, name).Scan(&doc.ID, &doc.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get document %q: %w", name, err)
	}
	if doc.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EnsureDocument returns the named document, creating it if needed.
func (s *SQLiteStore) EnsureDocument(ctx context.Context, name string) (*model.Document, error) {
	doc, err := s.GetDocumentByName(ctx, name)
	if err != nil || doc != nil {
		return doc, err
	}
	doc = &model.Document{Name: name}
	if _, err := s.InsertDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// InsertRevision appends a revision to its document. It assigns rev.Seq,
// rev.Hash and rev.ID, and returns the ID.
func (s *SQLiteStore) InsertRevision(ctx context.Context, rev *model.Revision) (int64, error) {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}
	rev.Hash = HashText(rev.Text)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const seqQuery = `SELECT COALESCE(MAX(seq), 0) + 1 FROM revisions WHERE document_id = ?`
	if err := tx.QueryRowContext(ctx, seqQuery, rev.DocumentID).Scan(&rev.Seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}

	const query = `
		INSERT INTO revisions (document_id, seq, op, hash, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		rev.DocumentID,
		rev.Seq,
		rev.Op,
		rev.Hash,
		rev.Text,
		formatTime(rev.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert revision: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	rev.ID = id
	return id, nil
}

// ListRevisions returns the document's revisions in sequence order.
func (s *SQLiteStore) ListRevisions(ctx context.Context, documentID int64) ([]*model.Revision, error) {
	const query = `
		SELECT id, document_id, seq, op, hash, text, created_at
		FROM revisions
		WHERE document_id = ?
		ORDER BY seq
	`
	rows, err := s.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var revs []*model.Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, err
		}
		revs = append(revs, rev)
	}
	return revs, rows.Err()
}

// LatestRevision returns the document's newest revision, or nil if there is none.
func (s *SQLiteStore) LatestRevision(ctx context.Context, documentID int64) (*model.Revision, error) {
	const query = `
		SELECT id, document_id, seq, op, hash, text, created_at
		FROM revisions
		WHERE document_id = ?
		ORDER BY seq DESC
		LIMIT 1
	`
	rev, err := scanRevision(s.db.QueryRowContext(ctx, query, documentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rev, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRevision(row scanner) (*model.Revision, error) {
	var rev model.Revision
	var createdAt string
	if err := row.Scan(&rev.ID, &rev.DocumentID, &rev.Seq, &rev.Op, &rev.Hash, &rev.Text, &createdAt); err != nil {
		return nil, err
	}
	var err error
	if rev.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &rev, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
