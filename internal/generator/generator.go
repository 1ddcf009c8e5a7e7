// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package generator runs the swaggen pipeline: load the source tree, apply
// the profile and service filters, render the docs document, relocate inline
// response schemas, render the code document and write every artifact.
package generator

import (
	"fmt"
	"os"

	"github.com/swaggen/swaggen/internal/config"
	"github.com/swaggen/swaggen/internal/loader"
	"github.com/swaggen/swaggen/internal/scanner"
	"github.com/swaggen/swaggen/internal/swagger"
	"github.com/swaggen/swaggen/internal/transform"
	"github.com/swaggen/swaggen/pkg/types"
)

// Artifact names. Each artifact is written once per output format.
const (
	DocsName          = "swagger_docs"
	CodeName          = "swagger_code"
	SpecificationName = "specification"
)

// Artifacts lists the artifact names in the order they are written.
var Artifacts = []string{DocsName, CodeName, SpecificationName}

// Options configures a Generator.
type Options struct {
	// Source is the directory holding one subdirectory per service
	Source string

	// Output is the directory artifacts are written to; created if missing
	Output string

	// Version replaces the version of the root info block
	Version string

	// Profiles keeps only services declaring one of these profiles
	Profiles []string

	// Services keeps only the named services
	Services []string

	// Formats lists the output formats; defaults to yaml and json
	Formats []string

	// Indent is the JSON indentation width
	Indent int

	// Include and Exclude are the document patterns for actions and models
	Include []string
	Exclude []string

	// Logf receives progress messages. Nil discards them.
	Logf func(format string, args ...any)
}

// OptionsFromConfig converts a configuration into generator options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Source:   cfg.Source,
		Output:   cfg.Output,
		Version:  cfg.Version,
		Profiles: cfg.Profiles,
		Services: cfg.Services,
		Formats:  cfg.Formats,
		Indent:   cfg.JSON.Indent,
		Include:  cfg.Documents.Include,
		Exclude:  cfg.Documents.Exclude,
	}
}

// Result holds every stage of one pipeline run.
type Result struct {
	// Specification is the filtered specification with inline schemas
	Specification *types.Specification

	// Relocated is the filtered specification after response relocation
	Relocated *types.Specification

	// Docs is rendered from Specification
	Docs *types.Swagger

	// Code is rendered from Relocated
	Code *types.Swagger
}

// Artifact returns the document written under name.
func (r *Result) Artifact(name string) (any, error) {
	switch name {
	case DocsName:
		return r.Docs, nil
	case CodeName:
		return r.Code, nil
	case SpecificationName:
		return r.Relocated, nil
	default:
		return nil, fmt.Errorf("unknown artifact %q", name)
	}
}

// Generator builds and writes the swaggen artifacts.
type Generator struct {
	opts    Options
	loader  *loader.Loader
	builder *swagger.Builder
	writer  *swagger.Writer
}

// New creates a Generator.
func New(opts Options) *Generator {
	if len(opts.Formats) == 0 {
		opts.Formats = []string{swagger.FormatYAML, swagger.FormatJSON}
	}

	s := scanner.New(scanner.Config{
		IncludePatterns: opts.Include,
		ExcludePatterns: opts.Exclude,
	})

	writer := swagger.NewWriter()
	writer.Indent = opts.Indent

	return &Generator{
		opts:    opts,
		loader:  loader.New(s),
		builder: swagger.NewBuilder(),
		writer:  writer,
	}
}

func (g *Generator) logf(format string, args ...any) {
	if g.opts.Logf != nil {
		g.opts.Logf(format, args...)
	}
}

// Build runs the pipeline in memory. The docs document is rendered before
// relocation and the code document after it.
func (g *Generator) Build() (*Result, error) {
	if err := loader.CheckSource(g.opts.Source); err != nil {
		return nil, err
	}

	g.logf("Loading services from %s", g.opts.Source)
	spec, err := g.loader.LoadSpecification(g.opts.Source, g.opts.Version)
	if err != nil {
		return nil, err
	}
	g.logf("Loaded %d service(s)", len(spec.Services))

	spec = transform.FilterByProfile(spec, g.opts.Profiles)
	spec = transform.FilterByService(spec, g.opts.Services)
	if len(g.opts.Profiles) > 0 || len(g.opts.Services) > 0 {
		g.logf("Kept %d service(s) after filtering", len(spec.Services))
	}

	docs := g.builder.Build(spec)

	relocated, err := transform.Relocate(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to relocate responses: %w", err)
	}

	code := g.builder.Build(relocated)
	g.logf("Rendered %d path(s), %d definition(s)", len(code.Paths), len(code.Definitions))

	return &Result{
		Specification: spec,
		Relocated:     relocated,
		Docs:          docs,
		Code:          code,
	}, nil
}

// Write writes every artifact of result to the output directory and returns
// the written paths. Writes are not transactional: a failure leaves the
// files written so far in place.
func (g *Generator) Write(result *Result) ([]string, error) {
	if err := os.MkdirAll(g.opts.Output, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, name := range Artifacts {
		doc, err := result.Artifact(name)
		if err != nil {
			return written, err
		}
		paths, err := g.writer.WriteSet(doc, g.opts.Output, name, g.opts.Formats)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
		for _, path := range paths {
			g.logf("Wrote %s", path)
		}
	}
	return written, nil
}

// Run builds and writes the artifacts.
func (g *Generator) Run() (*Result, []string, error) {
	result, err := g.Build()
	if err != nil {
		return nil, nil, err
	}
	written, err := g.Write(result)
	if err != nil {
		return result, written, err
	}
	return result, written, nil
}
