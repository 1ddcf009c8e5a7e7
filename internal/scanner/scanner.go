// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Default document patterns, matched against the file base name.
var (
	DefaultIncludePatterns = []string{"*.yml", "*.yaml", "*.json"}
	DefaultExcludePatterns = []string{".*"}
)

// Config holds scanner configuration.
type Config struct {
	// IncludePatterns are glob patterns for documents to include (e.g., "*.yml")
	IncludePatterns []string

	// ExcludePatterns are glob patterns for documents to exclude (e.g., ".*")
	ExcludePatterns []string
}

// Scanner lists service directories and the documents inside them.
// Every listing is sorted by name so output does not depend on the
// platform's directory enumeration order.
type Scanner struct {
	config Config
}

// New creates a new Scanner with the given configuration.
func New(config Config) *Scanner {
	if len(config.IncludePatterns) == 0 {
		config.IncludePatterns = DefaultIncludePatterns
	}
	if config.ExcludePatterns == nil {
		config.ExcludePatterns = DefaultExcludePatterns
	}

	return &Scanner{
		config: config,
	}
}

// Directories returns the immediate subdirectories of dir whose names do not
// match an exclude pattern. Regular files are ignored.
func (s *Scanner) Directories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if s.matchesPatterns(entry.Name(), s.config.ExcludePatterns) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			// Dangling symlink
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		}
	}

	return dirs, nil
}

// Documents returns the documents directly inside dir that match the
// include patterns and none of the exclude patterns. A missing directory
// yields no documents.
func (s *Scanner) Documents(dir string) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files []SourceFile
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if !s.shouldIncludeFile(entry.Name()) {
			continue
		}
		files = append(files, SourceFile{
			Path:    path,
			Name:    entry.Name(),
			Format:  DetectFormat(path),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// Tree returns root and every directory below it, in walk order.
func (s *Scanner) Tree(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && s.matchesPatterns(d.Name(), s.config.ExcludePatterns) {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return dirs, nil
}

// Matches reports whether a file name passes the include and exclude patterns.
func (s *Scanner) Matches(name string) bool {
	return s.shouldIncludeFile(filepath.Base(name))
}

// shouldIncludeFile checks a base name against the configured patterns.
func (s *Scanner) shouldIncludeFile(name string) bool {
	// Check exclude patterns first
	if s.matchesPatterns(name, s.config.ExcludePatterns) {
		return false
	}
	return s.matchesPatterns(name, s.config.IncludePatterns)
}

// matchesPatterns checks if a name matches any of the given patterns.
func (s *Scanner) matchesPatterns(name string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			// Invalid pattern, skip
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
