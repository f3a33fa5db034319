// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package htmlsrc_test

import (
	"strings"
	"testing"

	"github.com/mdhender/domtree"
	"github.com/mdhender/domtree/htmlsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	input := `<!DOCTYPE html>
<html lang="en">
  <head><title>Pets</title><meta charset="utf-8"></head>
  <body class="main">
    <!-- a comment -->
    <p>The <b>cat</b> sat,<br>
       the dog ran.</p>
    <script>var x = "<p>";</script>
  </body>
</html>`

	got, err := htmlsrc.Segment(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<html>",
		"<head>",
		"<title>",
		"Pets",
		"</title>",
		"</head>",
		"<body>",
		"<p>",
		"The",
		"<b>",
		"cat",
		"</b>",
		"sat,",
		"the dog ran.",
		"</p>",
		"</body>",
		"</html>",
	}, got)

	tree := domtree.BuildLines(got)
	assert.Equal(t, strings.Join(got, "\n")+"\n", tree.Render())
}

func TestSegment_Repairs(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  []string
	}{
		{"unclosed elements", "<div><p>text", []string{"<div>", "<p>", "text", "</p>", "</div>"}},
		{"stray end tag", "<div>text</span></div>", []string{"<div>", "text", "</div>"}},
		{"implicitly closed child", "<ul><li>one</ul>", []string{"<ul>", "<li>", "one", "</li>", "</ul>"}},
		{"empty elements dropped", "<div><p></p><span><em></em></span>x</div>", []string{"<div>", "x", "</div>"}},
		{"entities", "<p>&lt;b&gt; &amp; co</p>", []string{"<p>", "<b> & co", "</p>"}},
		{"text that reads as a tag", "<p>&lt;b&gt;</p>", nil},
		{"empty input", "", nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := htmlsrc.Segment(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
