// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package loader reads service definitions from a source tree and assembles
// them into a types.Specification.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swaggen/swaggen/internal/scanner"
	"github.com/swaggen/swaggen/internal/util"
	"github.com/swaggen/swaggen/pkg/types"
)

// actionDocument is the on-disk shape of an action. Response is the legacy
// single-response field, folded into Responses["200"] by normalizeAction.
type actionDocument struct {
	Name        string                    `json:"name" yaml:"name"`
	Description string                    `json:"description" yaml:"description"`
	Consumes    string                    `json:"consumes" yaml:"consumes"`
	Produces    string                    `json:"produces" yaml:"produces"`
	Request     *types.Request            `json:"request" yaml:"request"`
	Responses   map[string]types.Response `json:"responses" yaml:"responses"`
	Response    *types.Response           `json:"response" yaml:"response"`
}

// errTrailingContent is reported when a file holds more than one document.
var errTrailingContent = errors.New("unexpected content after the first document")

// decodeFile decodes a YAML or JSON document into out. With strict set,
// unknown fields are rejected. An empty document leaves out untouched.
// JSON numbers are kept as json.Number for NormalizeTree.
func decodeFile(path string, out any, strict bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if scanner.DetectFormat(path) == "json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		var rest json.RawMessage
		if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse JSON: %w", errTrailingContent)
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	var rest yaml.Node
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", errTrailingContent)
	}
	return nil
}

// LoadInfo loads an info block. Unknown fields are ignored.
func LoadInfo(path string) (types.Info, error) {
	var info types.Info
	if err := decodeFile(path, &info, false); err != nil {
		return types.Info{}, &LoadError{Kind: KindInfo, Path: path, Err: err}
	}
	return info, nil
}

// LoadAction loads an action document and normalizes it.
func LoadAction(path string) (types.Action, error) {
	var doc actionDocument
	if err := decodeFile(path, &doc, true); err != nil {
		return types.Action{}, &LoadError{Kind: KindAction, Path: path, Err: err}
	}
	if doc.Request == nil {
		return types.Action{}, &LoadError{Kind: KindAction, Path: path, Err: errors.New("missing required field \"request\"")}
	}
	return normalizeAction(doc, util.FileStem(path)), nil
}

// LoadModel loads a schema document and wraps it in a model named after the file.
func LoadModel(path string) (types.Model, error) {
	var schema types.Schema
	if err := decodeFile(path, &schema, false); err != nil {
		return types.Model{}, &LoadError{Kind: KindModel, Path: path, Err: err}
	}
	if schema == nil {
		return types.Model{}, &LoadError{Kind: KindModel, Path: path, Err: errors.New("document is empty")}
	}
	return types.Model{Name: util.FileStem(path), Schema: normalizeSchema(schema)}, nil
}

// normalizeAction applies the defaults of an action document: an absent or
// empty name falls back to the file stem, a bare response replaces the "200"
// entry and the "200" response is named "{name}Result" when it has no name.
func normalizeAction(doc actionDocument, stem string) types.Action {
	action := types.Action{
		Name:        doc.Name,
		Description: doc.Description,
		Consumes:    doc.Consumes,
		Produces:    doc.Produces,
		Responses:   make(map[string]types.Response, len(doc.Responses)+1),
	}
	if action.Name == "" {
		action.Name = stem
	}

	if doc.Request != nil {
		action.Request = types.Request{
			Schema:  normalizeSchema(doc.Request.Schema),
			Model:   doc.Request.Model,
			Headers: normalizeSchema(doc.Request.Headers),
		}
	}

	for code, resp := range doc.Responses {
		action.Responses[code] = normalizeResponse(resp)
	}
	if doc.Response != nil {
		action.Responses["200"] = normalizeResponse(*doc.Response)
	}

	if ok, exists := action.Responses["200"]; exists && ok.Name == "" {
		ok.Name = action.Name + "Result"
		action.Responses["200"] = ok
	}

	return action
}

func normalizeResponse(resp types.Response) types.Response {
	resp.Schema = normalizeSchema(resp.Schema)
	resp.Headers = normalizeSchema(resp.Headers)
	return resp
}

func normalizeSchema(s types.Schema) types.Schema {
	if s == nil {
		return nil
	}
	return types.NormalizeTree(s).(types.Schema)
}
