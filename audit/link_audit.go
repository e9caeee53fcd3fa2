package audit

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"mirrortidy/site_scanner/models"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/html"
)

// attributeQuery captures every attribute name/value pair in a page.
const attributeQuery = `(attribute (attribute_name) @name (quoted_attribute_value (attribute_value) @value))`

// BrokenLink is a local href/src reference whose target does not exist.
type BrokenLink struct {
	Page      string
	Reference string
	Target    string
}

// LinkAuditor parses pages with tree-sitter and checks that every local
// href/src reference resolves to a file in the tree. It never modifies pages.
type LinkAuditor struct {
	parser *sitter.Parser
	query  *sitter.Query
}

// NewLinkAuditor initializes a new LinkAuditor.
func NewLinkAuditor() (*LinkAuditor, error) {
	lang := html.GetLanguage()

	query, err := sitter.NewQuery([]byte(attributeQuery), lang)
	if err != nil {
		return nil, fmt.Errorf("failed to compile attribute query: %w", err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	return &LinkAuditor{
		parser: parser,
		query:  query,
	}, nil
}

// AuditPage returns the broken local references found on one page.
func (auditor *LinkAuditor) AuditPage(rootDir string, page models.PageFile, source []byte) []BrokenLink {
	tree := auditor.parser.Parse(nil, source)

	cursor := sitter.NewQueryCursor()
	cursor.Exec(auditor.query, tree.RootNode())

	var broken []BrokenLink
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}

		var name, value string
		for _, cap := range match.Captures {
			text := cap.Node.Content(source)
			switch cap.Node.Type() {
			case "attribute_name":
				name = strings.ToLower(text)
			case "attribute_value":
				value = text
			}
		}

		if name != "href" && name != "src" {
			continue
		}
		if isExternalRef(value) {
			continue
		}

		target := resolveReference(rootDir, page, value)
		if target == "" {
			continue
		}
		if _, err := os.Stat(target); err != nil {
			broken = append(broken, BrokenLink{
				Page:      page.RelativePath,
				Reference: value,
				Target:    target,
			})
		}
	}

	return broken
}

// isExternalRef reports whether the reference points outside the local tree.
func isExternalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") {
		return true
	}
	lower := strings.ToLower(ref)
	for _, prefix := range []string{"http:", "https:", "//", "mailto:", "tel:", "javascript:", "data:", "ftp:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// resolveReference maps a reference to the file it should denote on disk.
// Query strings and fragments are stripped first.
func resolveReference(rootDir string, page models.PageFile, ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if ref == "" {
		return ""
	}
	if unescaped, err := url.PathUnescape(ref); err == nil {
		ref = unescaped
	}

	if strings.HasPrefix(ref, "/") {
		return filepath.Join(rootDir, filepath.FromSlash(ref))
	}
	return filepath.Join(filepath.Dir(page.AbsolutePath), filepath.FromSlash(ref))
}
