// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package swagger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/swaggen/swaggen/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new item was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an item was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an item was modified.
	DiffTypeModified DiffType = "modified"
)

// PathChange represents a change to an action operation.
type PathChange struct {
	Type        DiffType
	Path        string
	Method      string
	Description string
}

// DefinitionChange represents a change to a definition.
type DefinitionChange struct {
	Type        DiffType
	Name        string
	Description string
}

// DiffResult contains the differences between two Swagger documents.
type DiffResult struct {
	// PathChanges contains all path/operation changes.
	PathChanges []PathChange

	// DefinitionChanges contains all definition changes.
	DefinitionChanges []DefinitionChange

	// InfoChanged is set when the info block or tag list differ.
	InfoChanged bool

	// HasBreakingChanges indicates if any breaking changes were detected.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.PathChanges) == 0 && len(d.DefinitionChanges) == 0 && !d.InfoChanged
}

// Differ compares two Swagger documents.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// equateEmpty treats nil and empty slices and maps as equal.
var equateEmpty = cmpopts.EquateEmpty()

// Diff compares two Swagger documents and returns the differences. Both
// documents are first brought to their JSON form so that a document read
// back from disk compares equal to the one it was written from.
func (d *Differ) Diff(a, b *types.Swagger) (*DiffResult, error) {
	ca, err := Canonical(a)
	if err != nil {
		return nil, err
	}
	cb, err := Canonical(b)
	if err != nil {
		return nil, err
	}

	result := &DiffResult{
		PathChanges:       []PathChange{},
		DefinitionChanges: []DefinitionChange{},
	}

	d.diffPaths(ca, cb, result)
	d.diffDefinitions(ca, cb, result)
	result.InfoChanged = !cmp.Equal(ca.Info, cb.Info, equateEmpty) || !cmp.Equal(ca.Tags, cb.Tags, equateEmpty)

	// Check for breaking changes
	result.HasBreakingChanges = d.detectBreakingChanges(result)

	// Generate summary
	result.Summary = d.generateSummary(result)

	sortChanges(result)
	return result, nil
}

// Canonical returns the document as it reads back from its JSON encoding:
// numbers become float64 and schema nodes become map[string]any.
func Canonical(doc *types.Swagger) (*types.Swagger, error) {
	if doc == nil {
		return &types.Swagger{}, nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var out types.Swagger
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &out, nil
}

// diffPaths compares the paths between two documents.
func (d *Differ) diffPaths(a, b *types.Swagger, result *DiffResult) {
	// Find removed and modified paths
	for path, aItem := range a.Paths {
		bItem, exists := b.Paths[path]
		if !exists {
			if aItem.Post != nil {
				result.PathChanges = append(result.PathChanges, PathChange{
					Type:        DiffTypeRemoved,
					Path:        path,
					Method:      "POST",
					Description: fmt.Sprintf("Removed POST %s", path),
				})
			}
			continue
		}
		d.diffPathItem(path, aItem, bItem, result)
	}

	// Find added paths
	for path, bItem := range b.Paths {
		if _, exists := a.Paths[path]; !exists && bItem.Post != nil {
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeAdded,
				Path:        path,
				Method:      "POST",
				Description: fmt.Sprintf("Added POST %s", path),
			})
		}
	}
}

// diffPathItem compares the operations of a path present in both documents.
func (d *Differ) diffPathItem(path string, a, b types.PathItem, result *DiffResult) {
	switch {
	case a.Post == nil && b.Post != nil:
		result.PathChanges = append(result.PathChanges, PathChange{
			Type:        DiffTypeAdded,
			Path:        path,
			Method:      "POST",
			Description: fmt.Sprintf("Added POST %s", path),
		})
	case a.Post != nil && b.Post == nil:
		result.PathChanges = append(result.PathChanges, PathChange{
			Type:        DiffTypeRemoved,
			Path:        path,
			Method:      "POST",
			Description: fmt.Sprintf("Removed POST %s", path),
		})
	case a.Post != nil && b.Post != nil:
		if !cmp.Equal(a.Post, b.Post, equateEmpty) {
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeModified,
				Path:        path,
				Method:      "POST",
				Description: fmt.Sprintf("Modified POST %s", path),
			})
		}
	}
}

// diffDefinitions compares the definitions between two documents.
func (d *Differ) diffDefinitions(a, b *types.Swagger, result *DiffResult) {
	// Find removed and modified definitions
	for name, aSchema := range a.Definitions {
		bSchema, exists := b.Definitions[name]
		if !exists {
			result.DefinitionChanges = append(result.DefinitionChanges, DefinitionChange{
				Type:        DiffTypeRemoved,
				Name:        name,
				Description: fmt.Sprintf("Removed definition: %s", name),
			})
		} else if !cmp.Equal(aSchema, bSchema, equateEmpty) {
			result.DefinitionChanges = append(result.DefinitionChanges, DefinitionChange{
				Type:        DiffTypeModified,
				Name:        name,
				Description: fmt.Sprintf("Modified definition: %s", name),
			})
		}
	}

	// Find added definitions
	for name := range b.Definitions {
		if _, exists := a.Definitions[name]; !exists {
			result.DefinitionChanges = append(result.DefinitionChanges, DefinitionChange{
				Type:        DiffTypeAdded,
				Name:        name,
				Description: fmt.Sprintf("Added definition: %s", name),
			})
		}
	}
}

// detectBreakingChanges checks if any changes are breaking.
func (d *Differ) detectBreakingChanges(result *DiffResult) bool {
	// Removed operations are breaking
	for _, change := range result.PathChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}

	// Removed definitions are breaking
	for _, change := range result.DefinitionChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}

	return false
}

// generateSummary creates a human-readable summary of changes.
func (d *Differ) generateSummary(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	var sb strings.Builder

	// Count changes by type
	pathAdded, pathRemoved, pathModified := 0, 0, 0
	for _, c := range result.PathChanges {
		switch c.Type {
		case DiffTypeAdded:
			pathAdded++
		case DiffTypeRemoved:
			pathRemoved++
		case DiffTypeModified:
			pathModified++
		}
	}

	defAdded, defRemoved, defModified := 0, 0, 0
	for _, c := range result.DefinitionChanges {
		switch c.Type {
		case DiffTypeAdded:
			defAdded++
		case DiffTypeRemoved:
			defRemoved++
		case DiffTypeModified:
			defModified++
		}
	}

	// Build summary
	var parts []string

	if pathAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) added", pathAdded))
	}
	if pathRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) removed", pathRemoved))
	}
	if pathModified > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) modified", pathModified))
	}
	if defAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) added", defAdded))
	}
	if defRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) removed", defRemoved))
	}
	if defModified > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) modified", defModified))
	}
	if result.InfoChanged {
		parts = append(parts, "info modified")
	}

	sb.WriteString(strings.Join(parts, ", "))

	if result.HasBreakingChanges {
		sb.WriteString(" [BREAKING CHANGES DETECTED]")
	}

	return sb.String()
}

// sortChanges orders changes by path and name for deterministic output.
func sortChanges(result *DiffResult) {
	sort.Slice(result.PathChanges, func(i, j int) bool {
		return result.PathChanges[i].Path < result.PathChanges[j].Path
	})
	sort.Slice(result.DefinitionChanges, func(i, j int) bool {
		return result.DefinitionChanges[i].Name < result.DefinitionChanges[j].Name
	})
}

// ChangeSymbol returns a symbol for the change type.
func ChangeSymbol(t DiffType) string {
	switch t {
	case DiffTypeAdded:
		return "+"
	case DiffTypeRemoved:
		return "-"
	case DiffTypeModified:
		return "~"
	default:
		return " "
	}
}

// FormatDiff returns a formatted string representation of the diff.
func FormatDiff(result *DiffResult) string {
	if result.IsEmpty() {
		return "No differences found."
	}

	var sb strings.Builder

	sb.WriteString("=== Swagger Diff ===\n\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	if len(result.PathChanges) > 0 {
		sb.WriteString("--- Path Changes ---\n")
		for _, c := range result.PathChanges {
			sb.WriteString(fmt.Sprintf("%s %s %s\n", ChangeSymbol(c.Type), c.Method, c.Path))
		}
		sb.WriteString("\n")
	}

	if len(result.DefinitionChanges) > 0 {
		sb.WriteString("--- Definition Changes ---\n")
		for _, c := range result.DefinitionChanges {
			sb.WriteString(fmt.Sprintf("%s %s\n", ChangeSymbol(c.Type), c.Name))
		}
	}

	return sb.String()
}
