package transformer

import (
	"regexp"

	"mirrortidy/site_scanner/models"
	"mirrortidy/transformer/contracts"
)

// widgetPattern captures the embedded Google Translate fragment: the
// container element plus the loader/init scripts that follow it.
var widgetPattern = regexp.MustCompile(`(?is)<div[^>]*id="google_translate_element"[^>]*>.*?</div>(?:\s*<script\b[^>]*>.*?</script>)*`)

// bodyClosePattern locates the closing body marker the widget is re-inserted
// in front of.
var bodyClosePattern = regexp.MustCompile(`(?i)</body\s*>`)

// FooterStripper removes the marked footer block from every page while
// preserving the translation widget embedded inside it.
//
// The removal spans from the first opening tag whose attributes contain the
// marker to the first closing tag of the same type. It is not a parser: a
// nested block of the same tag type inside the footer would cut the removal
// short. Known limitation of the pattern approach.
type FooterStripper struct {
	openPattern *regexp.Regexp
}

// NewFooterStripper initializes a new FooterStripper for the given marker class.
func NewFooterStripper(marker string) contracts.IPageTransformer {
	return &FooterStripper{
		openPattern: regexp.MustCompile(`(?is)<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*` + regexp.QuoteMeta(marker) + `[^>]*>`),
	}
}

func (stripper *FooterStripper) Transform(page models.PageFile, content string) string {
	// Capture the widget fragment wherever it appears before the block is cut
	widget := widgetPattern.FindString(content)

	updated, removed := stripper.removeFooterBlock(content)
	if !removed {
		return content
	}

	if widget != "" {
		updated = insertWidget(updated, widget)
	}
	return updated
}

// removeFooterBlock cuts the smallest block from the marked opening tag to
// the first closing tag of the same name.
func (stripper *FooterStripper) removeFooterBlock(content string) (string, bool) {
	loc := stripper.openPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content, false
	}

	tagName := content[loc[2]:loc[3]]
	closePattern := regexp.MustCompile(`(?i)</` + regexp.QuoteMeta(tagName) + `\s*>`)

	closeLoc := closePattern.FindStringIndex(content[loc[1]:])
	if closeLoc == nil {
		// Unterminated block; leave the page alone
		return content, false
	}

	end := loc[1] + closeLoc[1]
	return content[:loc[0]] + content[end:], true
}

// insertWidget re-inserts a restyled copy of the captured widget immediately
// before the final closing body marker.
func insertWidget(content string, widget string) string {
	restyled := "\n<div class=\"translate-bar\" style=\"margin:16px auto;max-width:960px;padding:8px 0;text-align:center;\">\n" +
		widget +
		"\n</div>\n"

	locs := bodyClosePattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content + restyled
	}

	last := locs[len(locs)-1]
	return content[:last[0]] + restyled + content[last[0]:]
}
