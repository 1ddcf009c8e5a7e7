// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/swaggen/swaggen/internal/scanner"
	"github.com/swaggen/swaggen/pkg/types"
)

// Layout of a service directory.
const (
	ActionsDir = "actions"
	ModelsDir  = "models"
)

// infoFileNames is the list of metadata file names to search for (in order).
var infoFileNames = []string{
	"info.yml",
	"info.yaml",
	"info.json",
}

// Loader assembles services and specifications from a source tree.
type Loader struct {
	scanner *scanner.Scanner
}

// New creates a Loader that discovers documents with the given scanner.
// A nil scanner uses the default document patterns.
func New(s *scanner.Scanner) *Loader {
	if s == nil {
		s = scanner.New(scanner.Config{})
	}
	return &Loader{
		scanner: s,
	}
}

// ResolveInfo loads the first metadata file found in dir. With no metadata
// file the zero Info is returned.
func ResolveInfo(dir string) (types.Info, error) {
	for _, name := range infoFileNames {
		path := filepath.Join(dir, name)
		stat, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return types.Info{}, &LoadError{Kind: KindInfo, Path: path, Err: err}
		}
		if stat.Mode().IsRegular() {
			return LoadInfo(path)
		}
	}
	return types.Info{}, nil
}

// LoadService assembles the service rooted at dir. The service is named
// after the directory.
func (l *Loader) LoadService(dir string) (types.Service, error) {
	service := types.Service{
		Name:    filepath.Base(dir),
		Actions: []types.Action{},
		Models:  []types.Model{},
	}

	info, err := ResolveInfo(dir)
	if err != nil {
		return types.Service{}, err
	}
	service.Info = info

	actions, err := l.scanner.Documents(filepath.Join(dir, ActionsDir))
	if err != nil {
		return types.Service{}, fmt.Errorf("service %s: %w", service.Name, err)
	}
	for _, file := range actions {
		action, err := LoadAction(file.Path)
		if err != nil {
			return types.Service{}, err
		}
		service.Actions = append(service.Actions, action)
	}

	models, err := l.scanner.Documents(filepath.Join(dir, ModelsDir))
	if err != nil {
		return types.Service{}, fmt.Errorf("service %s: %w", service.Name, err)
	}
	for _, file := range models {
		model, err := LoadModel(file.Path)
		if err != nil {
			return types.Service{}, err
		}
		service.Models = append(service.Models, model)
	}

	return service, nil
}
