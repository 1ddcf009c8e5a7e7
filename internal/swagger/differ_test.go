// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaggen/swaggen/pkg/types"
)

func op(id string) *types.Operation {
	return &types.Operation{
		Tags:        []string{"orders"},
		OperationID: id,
		Summary:     id,
		Consumes:    []string{MediaTypeJSON},
		Produces:    []string{MediaTypeJSON},
		Parameters:  []types.Parameter{{In: "body", Name: id + "Request", Required: true}},
		Responses:   map[string]types.SwaggerResponse{},
	}
}

func TestNewDiffer(t *testing.T) {
	assert.NotNil(t, NewDiffer())
}

func TestDiffer_Diff_NoDifferences(t *testing.T) {
	doc := NewBuilder().Build(createTestSpec())

	result, err := NewDiffer().Diff(doc, doc)

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	assert.False(t, result.HasBreakingChanges)
	assert.Equal(t, "No changes detected", result.Summary)
}

func TestDiffer_Diff_AddedPath(t *testing.T) {
	a := &types.Swagger{Paths: map[string]types.PathItem{
		"/orders/actions/create": {Post: op("create")},
	}}
	b := &types.Swagger{Paths: map[string]types.PathItem{
		"/orders/actions/create": {Post: op("create")},
		"/orders/actions/cancel": {Post: op("cancel")},
	}}

	result, err := NewDiffer().Diff(a, b)

	require.NoError(t, err)
	require.Len(t, result.PathChanges, 1)
	assert.Equal(t, DiffTypeAdded, result.PathChanges[0].Type)
	assert.Equal(t, "/orders/actions/cancel", result.PathChanges[0].Path)
	assert.Equal(t, "POST", result.PathChanges[0].Method)
	assert.False(t, result.HasBreakingChanges)
	assert.Equal(t, "1 path(s) added", result.Summary)
}

func TestDiffer_Diff_RemovedPath(t *testing.T) {
	a := &types.Swagger{Paths: map[string]types.PathItem{
		"/orders/actions/create": {Post: op("create")},
		"/orders/actions/cancel": {Post: op("cancel")},
	}}
	b := &types.Swagger{Paths: map[string]types.PathItem{
		"/orders/actions/create": {Post: op("create")},
	}}

	result, err := NewDiffer().Diff(a, b)

	require.NoError(t, err)
	require.Len(t, result.PathChanges, 1)
	assert.Equal(t, DiffTypeRemoved, result.PathChanges[0].Type)
	assert.True(t, result.HasBreakingChanges)
	assert.Contains(t, result.Summary, "BREAKING")
}

func TestDiffer_Diff_ModifiedOperation(t *testing.T) {
	changed := op("create")
	changed.Responses["200"] = types.SwaggerResponse{Schema: DefinitionRef("createResult")}

	a := &types.Swagger{Paths: map[string]types.PathItem{"/orders/actions/create": {Post: op("create")}}}
	b := &types.Swagger{Paths: map[string]types.PathItem{"/orders/actions/create": {Post: changed}}}

	result, err := NewDiffer().Diff(a, b)

	require.NoError(t, err)
	require.Len(t, result.PathChanges, 1)
	assert.Equal(t, DiffTypeModified, result.PathChanges[0].Type)
	assert.False(t, result.HasBreakingChanges)
}

func TestDiffer_Diff_Definitions(t *testing.T) {
	a := &types.Swagger{Definitions: map[string]types.Schema{
		"Order":  {"type": "object"},
		"Refund": {"type": "object"},
		"Charge": {"type": "object", "properties": map[string]any{"amount": map[string]any{"minimum": 1}}},
	}}
	b := &types.Swagger{Definitions: map[string]types.Schema{
		"Order":   {"type": "object", "required": []any{"id"}},
		"Receipt": {"type": "object"},
		"Charge":  {"type": "object", "properties": map[string]any{"amount": map[string]any{"minimum": 1.0}}},
	}}

	result, err := NewDiffer().Diff(a, b)

	require.NoError(t, err)
	require.Len(t, result.DefinitionChanges, 3)
	assert.Equal(t, DefinitionChange{Type: DiffTypeModified, Name: "Order", Description: "Modified definition: Order"}, result.DefinitionChanges[0])
	assert.Equal(t, DiffTypeAdded, result.DefinitionChanges[1].Type)
	assert.Equal(t, "Receipt", result.DefinitionChanges[1].Name)
	assert.Equal(t, DiffTypeRemoved, result.DefinitionChanges[2].Type)
	assert.Equal(t, "Refund", result.DefinitionChanges[2].Name)
	assert.True(t, result.HasBreakingChanges)
}

func TestDiffer_Diff_Info(t *testing.T) {
	a := &types.Swagger{Info: types.SwaggerInfo{Version: "1.0.0"}}
	b := &types.Swagger{Info: types.SwaggerInfo{Version: "1.1.0"}}

	result, err := NewDiffer().Diff(a, b)

	require.NoError(t, err)
	assert.False(t, result.IsEmpty())
	assert.True(t, result.InfoChanged)
	assert.Equal(t, "info modified", result.Summary)
}

func TestDiffer_Diff_NilAndEmptyAreEqual(t *testing.T) {
	a := &types.Swagger{Tags: nil, Definitions: nil}
	b := &types.Swagger{Tags: []types.Tag{}, Definitions: map[string]types.Schema{}}

	result, err := NewDiffer().Diff(a, b)

	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestFormatDiff(t *testing.T) {
	assert.Equal(t, "No differences found.", FormatDiff(&DiffResult{}))

	result := &DiffResult{
		PathChanges:       []PathChange{{Type: DiffTypeAdded, Path: "/orders/actions/create", Method: "POST"}},
		DefinitionChanges: []DefinitionChange{{Type: DiffTypeRemoved, Name: "Order"}},
		Summary:           "1 path(s) added, 1 definition(s) removed",
	}
	output := FormatDiff(result)

	assert.Contains(t, output, "1 path(s) added")
	assert.Contains(t, output, "+ POST /orders/actions/create")
	assert.Contains(t, output, "- Order")
}

func TestChangeSymbol(t *testing.T) {
	assert.Equal(t, "+", ChangeSymbol(DiffTypeAdded))
	assert.Equal(t, "-", ChangeSymbol(DiffTypeRemoved))
	assert.Equal(t, "~", ChangeSymbol(DiffTypeModified))
	assert.Equal(t, " ", ChangeSymbol(DiffType("other")))
}
