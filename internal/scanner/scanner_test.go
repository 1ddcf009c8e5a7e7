// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDir creates a temporary directory with test files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tmpDir, path)
		dir := filepath.Dir(fullPath)
		err := os.MkdirAll(dir, 0o755)
		require.NoError(t, err)
		err = os.WriteFile(fullPath, []byte(content), 0o644)
		require.NoError(t, err)
	}

	return tmpDir
}

func names(files []SourceFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestNew_DefaultConfig(t *testing.T) {
	scanner := New(Config{})

	assert.Equal(t, DefaultIncludePatterns, scanner.config.IncludePatterns)
	assert.Equal(t, DefaultExcludePatterns, scanner.config.ExcludePatterns)
}

func TestNew_EmptyExcludeKept(t *testing.T) {
	scanner := New(Config{ExcludePatterns: []string{}})

	assert.Empty(t, scanner.config.ExcludePatterns)
}

func TestScanner_Directories_Sorted(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{
		"orders/info.yml":  "title: Orders",
		"billing/info.yml": "title: Billing",
		"info.yml":         "title: Root",
		"accounts/.keep":   "",
		".git/HEAD":        "ref",
	})

	scanner := New(Config{})
	dirs, err := scanner.Directories(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "accounts"),
		filepath.Join(tmpDir, "billing"),
		filepath.Join(tmpDir, "orders"),
	}, dirs)
}

func TestScanner_Directories_Missing(t *testing.T) {
	scanner := New(Config{})
	_, err := scanner.Directories(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestScanner_Documents(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{
		"actions/create.yml":   "name: create",
		"actions/b.json":       "{}",
		"actions/a.yaml":       "name: a",
		"actions/.DS_Store":    "junk",
		"actions/README.md":    "# docs",
		"actions/nested/x.yml": "name: x",
	})

	scanner := New(Config{})
	files, err := scanner.Documents(filepath.Join(tmpDir, "actions"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a.yaml", "b.json", "create.yml"}, names(files))
	assert.Equal(t, "yaml", files[0].Format)
	assert.Equal(t, "json", files[1].Format)
	for _, f := range files {
		assert.False(t, f.ModTime.IsZero())
		assert.Equal(t, filepath.Join(tmpDir, "actions", f.Name), f.Path)
	}
}

func TestScanner_Documents_MissingDirectory(t *testing.T) {
	scanner := New(Config{})
	files, err := scanner.Documents(filepath.Join(t.TempDir(), "models"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanner_Documents_CustomPatterns(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{
		"models/Order.yml":       "type: object",
		"models/Order.draft.yml": "type: object",
		"models/Charge.json":     "{}",
	})

	scanner := New(Config{
		IncludePatterns: []string{"*.yml"},
		ExcludePatterns: []string{"*.draft.*"},
	})
	files, err := scanner.Documents(filepath.Join(tmpDir, "models"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Order.yml"}, names(files))
}

func TestScanner_Tree(t *testing.T) {
	tmpDir := setupTestDir(t, map[string]string{
		"billing/actions/charge.yml": "",
		"billing/models/Charge.yml":  "",
		".git/HEAD":                  "",
	})

	scanner := New(Config{})
	dirs, err := scanner.Tree(tmpDir)
	require.NoError(t, err)

	assert.Contains(t, dirs, tmpDir)
	assert.Contains(t, dirs, filepath.Join(tmpDir, "billing"))
	assert.Contains(t, dirs, filepath.Join(tmpDir, "billing", "actions"))
	assert.Contains(t, dirs, filepath.Join(tmpDir, "billing", "models"))
	assert.NotContains(t, dirs, filepath.Join(tmpDir, ".git"))
}

func TestScanner_Matches(t *testing.T) {
	scanner := New(Config{})

	assert.True(t, scanner.Matches("/src/billing/actions/charge.yml"))
	assert.True(t, scanner.Matches("Charge.json"))
	assert.False(t, scanner.Matches("/src/billing/actions/.charge.yml.swp"))
	assert.False(t, scanner.Matches("notes.txt"))
}
