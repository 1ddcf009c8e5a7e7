// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// SwaggerVersion is the value of the root "swagger" field.
const SwaggerVersion = "2.0"

// Swagger represents a Swagger 2.0 document.
type Swagger struct {
	// Swagger is the specification version, always "2.0"
	Swagger string `json:"swagger" yaml:"swagger"`

	// Tags is a list of tags used by the document
	Tags []Tag `json:"tags" yaml:"tags"`

	// Info provides metadata about the API
	Info SwaggerInfo `json:"info" yaml:"info"`

	// Paths holds the available paths and operations
	Paths map[string]PathItem `json:"paths" yaml:"paths"`

	// Definitions holds the named schemas referenced by $ref
	Definitions map[string]Schema `json:"definitions" yaml:"definitions"`
}

// SwaggerInfo is the rendered info object.
type SwaggerInfo struct {
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Profiles    []string `json:"x-profiles,omitempty" yaml:"x-profiles,omitempty"`
}

// PathItem represents an API path. Actions only ever render as POST.
type PathItem struct {
	Post *Operation `json:"post,omitempty" yaml:"post,omitempty"`
}

// Operation represents an API operation.
type Operation struct {
	Tags        []string                   `json:"tags" yaml:"tags"`
	Description string                     `json:"description" yaml:"description"`
	OperationID string                     `json:"operationId" yaml:"operationId"`
	Summary     string                     `json:"summary" yaml:"summary"`
	Consumes    []string                   `json:"consumes" yaml:"consumes"`
	Produces    []string                   `json:"produces" yaml:"produces"`
	Parameters  []Parameter                `json:"parameters" yaml:"parameters"`
	Responses   map[string]SwaggerResponse `json:"responses" yaml:"responses"`
}

// Parameter is an operation parameter. Only body parameters are produced.
type Parameter struct {
	In       string `json:"in" yaml:"in"`
	Name     string `json:"name" yaml:"name"`
	Required bool   `json:"required" yaml:"required"`
	Schema   Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// SwaggerResponse is a rendered response object.
type SwaggerResponse struct {
	Description string `json:"description" yaml:"description"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Schema      Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Headers     Schema `json:"headers,omitempty" yaml:"headers,omitempty"`
}
