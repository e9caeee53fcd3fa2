package contracts

import "mirrortidy/restructurer/models"

type IRestructurer interface {
	// ResolveMirrorDir returns the name of the nested domain directory under
	// rootDir, either the configured one or an auto-detected candidate.
	// Returns ErrMirrorDirNotFound from the restructurer package when no
	// candidate exists.
	ResolveMirrorDir(rootDir string) (string, error)

	// FlattenMirrorRoot resolves the duplicate-index conflict, migrates the
	// mirror directory's contents up to rootDir, and removes the emptied
	// directory. Per-entry failures are contained and reported in the result.
	FlattenMirrorRoot(rootDir string) (*models.FlattenResult, error)

	// ClassifyIndex decides which of the two colliding index files is the
	// mirroring tool's generated page.
	ClassifyIndex(outerContent string, innerContent string) models.IndexClass
}
