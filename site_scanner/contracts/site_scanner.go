package contracts

import "mirrortidy/site_scanner/models"

type ISiteScanner interface {
	// ScanHTMLFiles walks rootDir depth-first and returns every HTML page
	// that survives the exclusion filter. Unreadable or cyclic directories
	// are skipped, not fatal.
	ScanHTMLFiles(rootDir string) (*models.ScanResult, error)
}
