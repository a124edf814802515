package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{"PDF", "DOCX", "TXT", "JSON"}

// Canonical format values.
const (
	PDF  = "PDF"
	DOCX = "DOCX"
	TXT  = "TXT"
	JSON = "JSON"
)

// AllowedExtensions holds the default allowed file extensions for lease ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"txt":  {},
	"json": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its canonical format,
// or "" when the extension is unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "txt":
		return TXT
	case "json":
		return JSON
	default:
		return ""
	}
}
