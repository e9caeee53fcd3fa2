package transformer

import (
	"testing"

	"mirrortidy/site_scanner/models"

	"github.com/stretchr/testify/assert"
)

func page(relativePath string, depth int) models.PageFile {
	return models.PageFile{RelativePath: relativePath, Depth: depth}
}

// Every parent-traversal token is replaced with the depth-appropriate prefix
func TestPathRewriter_DepthRule(t *testing.T) {
	rewriter := NewPathRewriter("")

	content := `<a href="../style.css">x</a>`

	assert.Equal(t, `<a href="./style.css">x</a>`,
		rewriter.Transform(page("index.html", 0), content))

	assert.Equal(t, `<a href="../style.css">x</a>`,
		rewriter.Transform(page("docs/index.html", 1), content))

	assert.Equal(t, `<a href="../../style.css">x</a>`,
		rewriter.Transform(page("docs/guide/index.html", 2), content))

	assert.Equal(t, `<a href="../../../style.css">x</a>`,
		rewriter.Transform(page("a/b/c/index.html", 3), content))
}

// The substitution is whole-document: tokens inside comments and scripts are
// rewritten too, matching the original blanket behavior
func TestPathRewriter_WholeDocumentScope(t *testing.T) {
	rewriter := NewPathRewriter("")

	content := "<!-- see ../notes.txt --><script>load('../data.json')</script>"
	updated := rewriter.Transform(page("index.html", 0), content)

	assert.Equal(t, "<!-- see ./notes.txt --><script>load('./data.json')</script>", updated)
}

// Absolute, bare, and malformed references into the old mirror directory are
// normalized away before the depth substitution runs
func TestPathRewriter_MirrorPrefixes(t *testing.T) {
	rewriter := NewPathRewriter("www.example.com")
	p := page("index.html", 0)

	assert.Equal(t, `<a href="/docs/a.html">`,
		rewriter.Transform(p, `<a href="/www.example.com/docs/a.html">`))

	assert.Equal(t, `<img src="./img/logo.png">`,
		rewriter.Transform(p, `<img src="www.example.com/img/logo.png">`))

	assert.Equal(t, `<a href="./docs/a.html">`,
		rewriter.Transform(p, `<a href="../www.example.com/docs/a.html">`))

	assert.Equal(t, `<img src="./img/logo.png">`,
		rewriter.Transform(p, `<img src="../www.example.com/img/logo.png">`))
}

// A second pass over an already-fixed page produces no further changes
func TestPathRewriter_Idempotence(t *testing.T) {
	rewriter := NewPathRewriter("www.example.com")

	pages := []models.PageFile{
		page("index.html", 0),
		page("docs/index.html", 1),
	}
	content := `<a href="../a.html"><img src="../www.example.com/logo.png"><a href="/www.example.com/b.html">`

	for _, p := range pages {
		once := rewriter.Transform(p, content)
		twice := rewriter.Transform(p, once)
		assert.Equal(t, once, twice, "second pass changed %s", p.RelativePath)
	}
}

// A page containing no traversal tokens and no mirror prefixes is untouched
func TestPathRewriter_NoOpSafety(t *testing.T) {
	rewriter := NewPathRewriter("www.example.com")

	content := `<html><body><a href="./docs/a.html">ok</a><img src="/img/logo.png"></body></html>`
	updated := rewriter.Transform(page("index.html", 0), content)

	assert.Equal(t, content, updated)
}
