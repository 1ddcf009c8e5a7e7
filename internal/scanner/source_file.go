// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner provides directory and document discovery for a source tree.
package scanner

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFile represents a discovered document.
type SourceFile struct {
	// Path is the path to the file
	Path string

	// Name is the file base name
	Name string

	// Format is the detected document format ("yaml", "json")
	Format string

	// ModTime is the last modification time
	ModTime time.Time
}

// documentExtensions maps file extensions to document formats.
var documentExtensions = map[string]string{
	".yml":  "yaml",
	".yaml": "yaml",
	".json": "json",
}

// DetectFormat detects the document format from a file path.
// Unknown extensions are treated as YAML, which also accepts JSON input.
func DetectFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := documentExtensions[ext]; ok {
		return format
	}
	return "yaml"
}
