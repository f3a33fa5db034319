// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mdhender/domtree/model"
	store "github.com/mdhender/domtree/stores/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevisions(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLiteStore()
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.EnsureDocument(ctx, "pets.html")
	require.NoError(t, err)
	require.NotZero(t, doc.ID)

	again, err := s.EnsureDocument(ctx, "pets.html")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, again.ID)

	latest, err := s.LatestRevision(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	for _, rev := range []*model.Revision{
		{DocumentID: doc.ID, Op: model.OpBuild, Text: "<p>\ncat\n</p>\n"},
		{DocumentID: doc.ID, Op: `wrap "cat" "b"`, Text: "<p>\n<b>\ncat\n</b>\n</p>\n"},
	} {
		_, err := s.InsertRevision(ctx, rev)
		require.NoError(t, err)
	}

	revs, err := s.ListRevisions(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, revs, 2)
	assert.Equal(t, 1, revs[0].Seq)
	assert.Equal(t, 2, revs[1].Seq)
	assert.Equal(t, model.OpBuild, revs[0].Op)
	assert.Equal(t, store.HashText("<p>\ncat\n</p>\n"), revs[0].Hash)
	assert.Len(t, revs[0].Hash, 64)

	latest, err = s.LatestRevision(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, latest.Seq)
	assert.Equal(t, "<p>\n<b>\ncat\n</b>\n</p>\n", latest.Text)
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, err := store.NewSQLiteStore()
	require.NoError(t, err)
	defer a.Close()
	b, err := store.NewSQLiteStore()
	require.NoError(t, err)
	defer b.Close()

	_, err = a.EnsureDocument(ctx, "only-in-a")
	require.NoError(t, err)

	doc, err := b.GetDocumentByName(ctx, "only-in-a")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestInitDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revs.db")

	_, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path})
	require.Error(t, err, "missing file must not be created")

	require.NoError(t, store.InitDatabase(path))
	require.Error(t, store.InitDatabase(path), "existing file must not be replaced")

	s, err := store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.EnsureDocument(context.Background(), "x")
	require.NoError(t, err)
	assert.NotZero(t, doc.ID)
}

func TestHashText(t *testing.T) {
	// sha3-256 of the empty string
	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a", store.HashText(""))
}
