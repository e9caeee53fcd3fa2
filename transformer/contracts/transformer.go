package contracts

import "mirrortidy/site_scanner/models"

type IPageTransformer interface {
	// Transform returns the rewritten content of one page. Implementations
	// are pure text substitutions; the caller decides whether the result
	// differs enough to be written back.
	Transform(page models.PageFile, content string) string
}
