package parser

import (
	"path/filepath"
	"strings"
)

// Language represents a source language.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageUnknown    Language = "unknown"
)

// DetectLanguage detects language from file extension. TypeScript files are
// accepted and parsed with the JavaScript grammar (basic support).
func DetectLanguage(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".js", ".jsx", ".mjs", ".cjs":
		return LanguageJavaScript
	case ".ts", ".tsx", ".mts":
		return LanguageTypeScript
	default:
		return LanguageUnknown
	}
}
