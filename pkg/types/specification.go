// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types defines the in-memory service specification and the
// Swagger 2.0 document it is rendered into.
package types

// Info carries descriptive metadata for the specification or for a service.
type Info struct {
	// Title is the human readable title
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Description is a longer description
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is the version string; the root version is stamped at generation time
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Profiles are the tags used for profile filtering
	Profiles []string `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

// HasProfile reports whether the info declares at least one of the given profiles.
func (i Info) HasProfile(profiles []string) bool {
	for _, want := range profiles {
		for _, have := range i.Profiles {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Tag is a tag descriptor, one per service.
type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// Specification is the root aggregate assembled from a source tree.
type Specification struct {
	// Info is the root metadata
	Info Info `json:"info" yaml:"info"`

	// Services in discovery order
	Services []Service `json:"services" yaml:"services"`

	// Tags holds one entry per service, in the same order as Services
	Tags []Tag `json:"tags" yaml:"tags"`
}

// Service returns the service with the given name.
func (s *Specification) Service(name string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

// Service is a named group of actions and models.
type Service struct {
	// Name is derived from the service directory name
	Name string `json:"name" yaml:"name"`

	// Info is the service metadata
	Info Info `json:"info" yaml:"info"`

	// Actions in listing order
	Actions []Action `json:"actions" yaml:"actions"`

	// Models in listing order, followed by relocated models
	Models []Model `json:"models" yaml:"models"`
}

// Model returns the model with the given name.
func (s Service) Model(name string) (Model, bool) {
	for _, m := range s.Models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}

// Action is one callable operation.
type Action struct {
	// Name is explicit or derived from the document file name
	Name string `json:"name" yaml:"name"`

	// Description of the action
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Consumes is a media type hint for the request
	Consumes string `json:"consumes,omitempty" yaml:"consumes,omitempty"`

	// Produces is a media type hint for the response
	Produces string `json:"produces,omitempty" yaml:"produces,omitempty"`

	// Request is the single request of the action
	Request Request `json:"request" yaml:"request"`

	// Responses maps HTTP status codes ("200") to responses
	Responses map[string]Response `json:"responses,omitempty" yaml:"responses,omitempty"`
}

// Model is a named, reusable schema definition.
type Model struct {
	Name   string `json:"name" yaml:"name"`
	Schema Schema `json:"schema" yaml:"schema"`
}

// Request describes the body of an action invocation.
type Request struct {
	// Schema is an inline schema
	Schema Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Model references a model by name
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Headers is an optional header schema
	Headers Schema `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Response describes one response of an action.
type Response struct {
	// Name is the display name; also the model name used on relocation
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description of the response
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Schema is an inline schema
	Schema Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Model references a model by name
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Headers is an optional header schema
	Headers Schema `json:"headers,omitempty" yaml:"headers,omitempty"`
}
