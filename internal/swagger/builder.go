// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package swagger renders a Specification into a Swagger 2.0 document and
// reads, writes and compares such documents.
package swagger

import (
	"sort"

	"github.com/swaggen/swaggen/pkg/types"
)

// MediaTypeJSON is the only media type actions consume and produce.
const MediaTypeJSON = "application/json"

// Builder renders Specifications as Swagger documents.
type Builder struct{}

// NewBuilder creates a new Swagger builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders spec. Every action becomes a POST operation on
// /{service}/actions/{action}; every model becomes a definition. Schema
// trees are placed in the document as they are, without copying.
func (b *Builder) Build(spec *types.Specification) *types.Swagger {
	doc := &types.Swagger{
		Swagger:     types.SwaggerVersion,
		Tags:        make([]types.Tag, len(spec.Tags)),
		Info:        b.buildInfo(spec.Info),
		Paths:       make(map[string]types.PathItem),
		Definitions: make(map[string]types.Schema),
	}
	copy(doc.Tags, spec.Tags)

	for _, service := range spec.Services {
		for _, action := range service.Actions {
			doc.Paths[ActionPath(service.Name, action.Name)] = types.PathItem{
				Post: b.actionToOperation(service, action),
			}
		}
		for _, model := range service.Models {
			doc.Definitions[model.Name] = model.Schema
		}
	}

	return doc
}

// buildInfo constructs the info object.
func (b *Builder) buildInfo(info types.Info) types.SwaggerInfo {
	return types.SwaggerInfo{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
		Profiles:    info.Profiles,
	}
}

// actionToOperation converts an action to its POST operation.
func (b *Builder) actionToOperation(service types.Service, action types.Action) *types.Operation {
	op := &types.Operation{
		Tags:        []string{service.Name},
		Description: action.Description,
		OperationID: action.Name,
		Summary:     action.Name,
		Consumes:    []string{MediaTypeJSON},
		Produces:    []string{MediaTypeJSON},
		Parameters:  []types.Parameter{b.buildBody(action)},
		Responses:   make(map[string]types.SwaggerResponse, len(action.Responses)),
	}

	for code, resp := range action.Responses {
		op.Responses[code] = b.buildResponse(resp)
	}

	return op
}

// buildBody builds the single named body parameter of an action.
func (b *Builder) buildBody(action types.Action) types.Parameter {
	return types.Parameter{
		In:       "body",
		Name:     action.Name + "Request",
		Required: true,
		Schema:   schemaOrRef(action.Request.Schema, action.Request.Model),
	}
}

// buildResponse renders one response.
func (b *Builder) buildResponse(resp types.Response) types.SwaggerResponse {
	return types.SwaggerResponse{
		Description: resp.Description,
		Name:        resp.Name,
		Schema:      schemaOrRef(resp.Schema, resp.Model),
		Headers:     resp.Headers,
	}
}

// schemaOrRef returns a $ref to model when one is given, otherwise the
// inline schema. The model reference wins when both are present.
func schemaOrRef(schema types.Schema, model string) types.Schema {
	if model != "" {
		return DefinitionRef(model)
	}
	return schema
}

// ActionPath returns the path of an action operation.
func ActionPath(service, action string) string {
	return "/" + service + "/actions/" + action
}

// DefinitionRef creates a reference to a definition.
func DefinitionRef(name string) types.Schema {
	return types.Schema{
		"$ref": "#/definitions/" + name,
	}
}

// SortedPaths returns a sorted list of path keys for deterministic output.
func SortedPaths(paths map[string]types.PathItem) []string {
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedDefinitions returns a sorted list of definition keys for deterministic output.
func SortedDefinitions(definitions map[string]types.Schema) []string {
	keys := make([]string, 0, len(definitions))
	for k := range definitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
