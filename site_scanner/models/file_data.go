package models

// PageFile holds the location of one HTML page found under the site root
type PageFile struct {
	AbsolutePath string
	RelativePath string
	// Depth is the number of directories between the site root and the file.
	// A page directly in the root has depth 0.
	Depth int
}

// ScanResult is the outcome of one traversal of the site root
type ScanResult struct {
	Pages []PageFile
	// SkippedDirs lists directories dropped by the cycle guard or because
	// they were unreadable, for the run commentary.
	SkippedDirs []string
}
