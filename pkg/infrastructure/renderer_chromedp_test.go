package infrastructure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardHTML_EscapesTitle(t *testing.T) {
	html, err := CardHTML(`<script>alert(1)</script>`, "#22c55e")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "width:1200px")
	assert.Contains(t, html, "background:#22c55e")
}

func TestCardHTML_RejectsNonHexBackground(t *testing.T) {
	html, err := CardHTML("x", "red;}body{display:none")
	require.NoError(t, err)
	assert.Contains(t, html, "background:#0ea5e9")
	assert.NotContains(t, html, "display:none")
}

func TestCardHTML_TruncatesLongTitles(t *testing.T) {
	html, err := CardHTML(strings.Repeat("a", 100), "")
	require.NoError(t, err)
	assert.Contains(t, html, strings.Repeat("a", 60)+"...")
	assert.NotContains(t, html, strings.Repeat("a", 61))
}

func TestCardHTML_DefaultTitle(t *testing.T) {
	html, err := CardHTML("", "")
	require.NoError(t, err)
	assert.Contains(t, html, "AI Post")
}
