package retrieval

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	docsURLPattern  = regexp.MustCompile(`^https://docs\.google\.com/(?:document|spreadsheets|presentation)/d/([a-zA-Z0-9_-]+)(?:/|$)`)
	driveURLPattern = regexp.MustCompile(`^https://drive\.google\.com/(?:file/d/|open\?id=)([a-zA-Z0-9_-]+)(?:/|$)`)
)

// NormalizedPaths is the result of validating a batch of ingestion paths.
// Docs/Sheets/Slides URLs are rewritten to the canonical Drive file URL,
// Drive URLs are normalized, gs:// paths pass through, and everything else
// lands in Invalid.
type NormalizedPaths struct {
	Valid       []string
	Invalid     []string
	Conversions []string
}

func NormalizePaths(paths []string) NormalizedPaths {
	var result NormalizedPaths

	for _, path := range paths {
		if path == "" {
			result.Invalid = append(result.Invalid, fmt.Sprintf("%s (Not a valid string)", path))
			continue
		}

		if match := docsURLPattern.FindStringSubmatch(path); match != nil {
			driveURL := driveFileURL(match[1])
			result.Valid = append(result.Valid, driveURL)
			result.Conversions = append(result.Conversions, fmt.Sprintf("%s -> %s", path, driveURL))
			continue
		}

		if match := driveURLPattern.FindStringSubmatch(path); match != nil {
			driveURL := driveFileURL(match[1])
			result.Valid = append(result.Valid, driveURL)
			if driveURL != path {
				result.Conversions = append(result.Conversions, fmt.Sprintf("%s -> %s", path, driveURL))
			}
			continue
		}

		if strings.HasPrefix(path, "gs://") {
			result.Valid = append(result.Valid, path)
			continue
		}

		result.Invalid = append(result.Invalid, fmt.Sprintf("%s (Invalid format)", path))
	}

	return result
}

func driveFileURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID)
}
