package retrieval_test

import (
	"testing"

	"go-finance-assistant/pkg/retrieval"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaths_DocsURLBecomesDriveURL(t *testing.T) {
	result := retrieval.NormalizePaths([]string{
		"https://docs.google.com/document/d/abc123_XY/edit",
	})

	assert.Equal(t, []string{"https://drive.google.com/file/d/abc123_XY/view"}, result.Valid)
	assert.Empty(t, result.Invalid)
	assert.Len(t, result.Conversions, 1)
	assert.Contains(t, result.Conversions[0], "->")
}

func TestNormalizePaths_SheetsAndSlides(t *testing.T) {
	result := retrieval.NormalizePaths([]string{
		"https://docs.google.com/spreadsheets/d/sheet-id/edit#gid=0",
		"https://docs.google.com/presentation/d/slide-id/edit",
	})

	assert.Equal(t, []string{
		"https://drive.google.com/file/d/sheet-id/view",
		"https://drive.google.com/file/d/slide-id/view",
	}, result.Valid)
}

func TestNormalizePaths_DriveURLVariants(t *testing.T) {
	result := retrieval.NormalizePaths([]string{
		"https://drive.google.com/file/d/file-id/view?usp=sharing",
		"https://drive.google.com/open?id=open-id",
	})

	assert.Equal(t, []string{
		"https://drive.google.com/file/d/file-id/view",
		"https://drive.google.com/file/d/open-id/view",
	}, result.Valid)
	assert.Empty(t, result.Invalid)
}

func TestNormalizePaths_CanonicalDriveURLNotReportedAsConversion(t *testing.T) {
	canonical := "https://drive.google.com/file/d/already-ok/view"

	result := retrieval.NormalizePaths([]string{canonical})

	assert.Equal(t, []string{canonical}, result.Valid)
	assert.Empty(t, result.Conversions)
}

func TestNormalizePaths_GCSPathsPassThrough(t *testing.T) {
	result := retrieval.NormalizePaths([]string{"gs://bucket/statements/jan.pdf"})

	assert.Equal(t, []string{"gs://bucket/statements/jan.pdf"}, result.Valid)
}

func TestNormalizePaths_RejectsUnknownFormats(t *testing.T) {
	result := retrieval.NormalizePaths([]string{
		"",
		"https://example.com/file.pdf",
		"/local/path.txt",
	})

	assert.Empty(t, result.Valid)
	assert.Len(t, result.Invalid, 3)
	assert.Contains(t, result.Invalid[0], "Not a valid string")
	assert.Contains(t, result.Invalid[1], "Invalid format")
}

func TestNormalizePaths_MixedBatch(t *testing.T) {
	result := retrieval.NormalizePaths([]string{
		"https://docs.google.com/document/d/doc-id/edit",
		"gs://bucket/file.csv",
		"ftp://nope",
	})

	assert.Len(t, result.Valid, 2)
	assert.Len(t, result.Invalid, 1)
	assert.Len(t, result.Conversions, 1)
}
