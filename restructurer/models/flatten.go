package models

// IndexClass is the outcome of classifying a root index.html that collides
// with the mirror subdirectory's own index.html.
type IndexClass int

const (
	// IndexToolGenerated means the outer index is the mirroring tool's
	// navigation page and the inner one is the real homepage.
	IndexToolGenerated IndexClass = iota

	// IndexRealHomepage means the outer index is the real homepage and the
	// tool's page ended up nested inside the mirror directory.
	IndexRealHomepage

	// IndexUndetermined means neither file carries a recognizable marker;
	// the promotion is a heuristic and should be reviewed manually.
	IndexUndetermined
)

func (c IndexClass) String() string {
	switch c {
	case IndexToolGenerated:
		return "tool-generated"
	case IndexRealHomepage:
		return "real-homepage"
	default:
		return "undetermined"
	}
}

// FlattenResult describes what the restructuring pass did.
type FlattenResult struct {
	// MirrorDir is the resolved name of the nested domain directory.
	MirrorDir string

	// IndexConflict is true when both an outer and inner index.html existed.
	IndexConflict bool

	// IndexClass is the classification of the outer index when a conflict
	// was resolved.
	IndexClass IndexClass

	// BackupFile is the root-level name the displaced index was saved under.
	BackupFile string

	// MovedEntries counts the entries migrated up to the site root.
	MovedEntries int

	// FailedEntries lists entries that could not be moved.
	FailedEntries []string

	// MirrorDirRemoved is true when the emptied subdirectory was deleted.
	MirrorDirRemoved bool

	// NeedsManualReview is true when the undetermined fallback was taken.
	NeedsManualReview bool
}
