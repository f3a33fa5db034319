// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package renderer_test

import (
	"bytes"
	"testing"

	"github.com/mdhender/domtree"
	"github.com/mdhender/domtree/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree() *domtree.Tree {
	return domtree.BuildLines([]string{"<p>", "hello", "</p>"})
}

func TestRender_Lines(t *testing.T) {
	r, err := renderer.New()
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, tree()))
	assert.Equal(t, "<p>\nhello\n</p>\n", b.String())
}

func TestRender_CRLF(t *testing.T) {
	r, err := renderer.New(renderer.WithLineEnding("\r\n"))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, tree()))
	assert.Equal(t, "<p>\r\nhello\r\n</p>\r\n", b.String())
}

func TestRender_Outline(t *testing.T) {
	r, err := renderer.New(renderer.WithMode(renderer.Outline))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, tree()))
	assert.Equal(t, "     p\n      |----hello\n", b.String())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := renderer.New(renderer.WithMode("html5"))
	assert.Error(t, err)
	_, err = renderer.New(renderer.WithLineEnding("\r"))
	assert.Error(t, err)
}
