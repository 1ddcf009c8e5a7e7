// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package transform provides pure Specification to Specification transforms:
// profile and service filtering, and relocation of inline response schemas
// into named models.
package transform

import (
	"github.com/swaggen/swaggen/pkg/types"
)

// Predicate selects services retained by Filter.
type Predicate func(types.Service) bool

// ByProfile matches services whose info declares at least one of profiles.
func ByProfile(profiles []string) Predicate {
	return func(s types.Service) bool {
		return s.Info.HasProfile(profiles)
	}
}

// ByName matches services whose name is in names.
func ByName(names []string) Predicate {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(s types.Service) bool {
		_, ok := set[s.Name]
		return ok
	}
}

// Filter returns a new specification holding the services matching keep, in
// their original order. Info is shared and the tag list is reduced to the
// retained services, so no tag names a service missing from the output. The
// action and model slices of retained services are shared with spec, not
// copied.
func Filter(spec *types.Specification, keep Predicate) *types.Specification {
	services := make([]types.Service, 0, len(spec.Services))
	retained := make(map[string]struct{}, len(spec.Services))
	for _, service := range spec.Services {
		if keep(service) {
			services = append(services, service)
			retained[service.Name] = struct{}{}
		}
	}

	tags := make([]types.Tag, 0, len(spec.Tags))
	for _, tag := range spec.Tags {
		if _, ok := retained[tag.Name]; ok {
			tags = append(tags, tag)
		}
	}

	return &types.Specification{
		Info:     spec.Info,
		Services: services,
		Tags:     tags,
	}
}

// FilterByProfile keeps the services declaring one of profiles. An empty
// profile set returns spec itself.
func FilterByProfile(spec *types.Specification, profiles []string) *types.Specification {
	if len(profiles) == 0 {
		return spec
	}
	return Filter(spec, ByProfile(profiles))
}

// FilterByService keeps the services named in names. An empty name set
// returns spec itself.
func FilterByService(spec *types.Specification, names []string) *types.Specification {
	if len(names) == 0 {
		return spec
	}
	return Filter(spec, ByName(names))
}
