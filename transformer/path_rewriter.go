package transformer

import (
	"strings"

	"mirrortidy/site_scanner/models"
	"mirrortidy/transformer/contracts"
)

// PathRewriter normalizes the relative-path prefixes left inconsistent after
// the mirror directory has been flattened into the site root.
//
// The substitution is a blanket, whole-document text replacement. It does not
// parse HTML and will rewrite traversal tokens inside comments, scripts, or
// plain text as well as in links. That matches the behavior of the mirrored
// sites this tool targets; a link-attribute-aware rewrite would be a
// different feature.
type PathRewriter struct {
	// MirrorDir is the flattened domain directory name whose prefixes are
	// rewritten away. Empty disables the prefix pass.
	MirrorDir string
}

// NewPathRewriter initializes a new PathRewriter.
func NewPathRewriter(mirrorDir string) contracts.IPageTransformer {
	return &PathRewriter{
		MirrorDir: mirrorDir,
	}
}

func (rewriter *PathRewriter) Transform(page models.PageFile, content string) string {
	updated := rewriter.rewriteMirrorPrefixes(content)
	updated = rewriteTraversalTokens(updated, page.Depth)
	return updated
}

// rewriteMirrorPrefixes turns absolute and bare references into the old
// domain subdirectory into root-relative or current-directory-relative
// equivalents. It runs before the depth substitution so the malformed
// "../<mirror>/" forms are gone before traversal tokens are counted.
func (rewriter *PathRewriter) rewriteMirrorPrefixes(content string) string {
	if rewriter.MirrorDir == "" {
		return content
	}
	m := rewriter.MirrorDir

	// Malformed parent-relative references into the mirror directory
	content = strings.ReplaceAll(content, `href="../`+m+`/`, `href="./`)
	content = strings.ReplaceAll(content, `src="../`+m+`/`, `src="./`)

	// Absolute references
	content = strings.ReplaceAll(content, `href="/`+m+`/`, `href="/`)
	content = strings.ReplaceAll(content, `src="/`+m+`/`, `src="/`)

	// Bare references
	content = strings.ReplaceAll(content, `href="`+m+`/`, `href="./`)
	content = strings.ReplaceAll(content, `src="`+m+`/`, `src="./`)

	return content
}

// rewriteTraversalTokens replaces every "../" occurrence with the
// depth-appropriate prefix: a page in the root gets "./", a page one level
// down keeps a single "../", deeper pages get one token per level.
func rewriteTraversalTokens(content string, depth int) string {
	var replacement string
	switch {
	case depth <= 0:
		replacement = "./"
	default:
		replacement = strings.Repeat("../", depth)
	}
	return strings.ReplaceAll(content, "../", replacement)
}
