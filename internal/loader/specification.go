// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package loader

import (
	"os"

	"github.com/swaggen/swaggen/pkg/types"
)

// CheckSource returns a MissingSourceError unless root is an existing directory.
func CheckSource(root string) error {
	stat, err := os.Stat(root)
	if err != nil || !stat.IsDir() {
		return &MissingSourceError{Path: root}
	}
	return nil
}

// LoadSpecification assembles every immediate subdirectory of root into a
// service. The root info version is replaced by version.
func (l *Loader) LoadSpecification(root string, version string) (*types.Specification, error) {
	if err := CheckSource(root); err != nil {
		return nil, err
	}

	info, err := ResolveInfo(root)
	if err != nil {
		return nil, err
	}
	info.Version = version

	spec := &types.Specification{
		Info:     info,
		Services: []types.Service{},
		Tags:     []types.Tag{},
	}

	dirs, err := l.scanner.Directories(root)
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		service, err := l.LoadService(dir)
		if err != nil {
			return nil, err
		}
		spec.Services = append(spec.Services, service)
		spec.Tags = append(spec.Tags, types.Tag{Name: service.Name})
	}

	return spec, nil
}
