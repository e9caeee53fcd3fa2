package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReporter_Counts(t *testing.T) {
	reporter := NewRunReporter()

	reporter.FileProcessed()
	reporter.FileProcessed()
	reporter.FileProcessed()
	reporter.FileChanged()
	reporter.FileFailed()
	reporter.ManualReview("check the promoted index")

	processed, changed, failed := reporter.Counts()
	assert.Equal(t, 3, processed)
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, failed)

	reporter.Reset()
	processed, changed, failed = reporter.Counts()
	assert.Equal(t, 0, processed)
	assert.Equal(t, 0, changed)
	assert.Equal(t, 0, failed)
}
