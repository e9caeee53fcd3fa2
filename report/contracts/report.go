package contracts

type IRunReporter interface {
	// FileProcessed records that one page went through the transform pass.
	FileProcessed()

	// FileChanged records that a page was rewritten on disk.
	FileChanged()

	// FileFailed records a contained per-file failure.
	FileFailed()

	// ManualReview records an advisory the operator should look at.
	ManualReview(note string)

	// Counts returns the running totals.
	Counts() (processed int, changed int, failed int)

	// DisplaySummary renders the final run summary box.
	DisplaySummary(commandName string)

	// Reset clears the totals for a fresh run.
	Reset()
}
