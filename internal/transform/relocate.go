// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package transform

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/swaggen/swaggen/pkg/types"
)

// DuplicateModelError is returned by Relocate when a response would become a
// model whose name is already taken by a different schema in the same service.
type DuplicateModelError struct {
	Service string
	Model   string
	Action  string
}

func (e *DuplicateModelError) Error() string {
	return fmt.Sprintf("service %s: response model %q of action %s conflicts with an existing model of the same name",
		e.Service, e.Model, e.Action)
}

// Relocate returns a new specification in which every named response carrying
// an inline schema and no model reference points at a model of that name
// instead. The model is appended to the owning service. When the service
// already holds a model of that name with an identical schema the response
// is pointed at it and no model is added.
//
// spec is not modified. Schema trees are shared between the two values.
func Relocate(spec *types.Specification) (*types.Specification, error) {
	out := &types.Specification{
		Info:     spec.Info,
		Services: make([]types.Service, 0, len(spec.Services)),
		Tags:     spec.Tags,
	}

	for _, service := range spec.Services {
		relocated, err := relocateService(service)
		if err != nil {
			return nil, err
		}
		out.Services = append(out.Services, relocated)
	}

	return out, nil
}

func relocateService(service types.Service) (types.Service, error) {
	models := make([]types.Model, len(service.Models), len(service.Models)+len(service.Actions))
	copy(models, service.Models)

	actions := make([]types.Action, 0, len(service.Actions))
	for _, action := range service.Actions {
		responses := make(map[string]types.Response, len(action.Responses))

		// Sorted so relocated models are appended in a stable order.
		codes := make([]string, 0, len(action.Responses))
		for code := range action.Responses {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for _, code := range codes {
			resp := action.Responses[code]
			if resp.Name != "" && resp.Schema != nil && resp.Model == "" {
				existing, found := findModel(models, resp.Name)
				switch {
				case !found:
					models = append(models, types.Model{Name: resp.Name, Schema: resp.Schema})
				case !cmp.Equal(existing.Schema, resp.Schema):
					return types.Service{}, &DuplicateModelError{Service: service.Name, Model: resp.Name, Action: action.Name}
				}
				resp.Model = resp.Name
				resp.Schema = nil
			}
			responses[code] = resp
		}

		action.Responses = responses
		actions = append(actions, action)
	}

	service.Actions = actions
	service.Models = models
	return service, nil
}

func findModel(models []types.Model, name string) (types.Model, bool) {
	for _, m := range models {
		if m.Name == name {
			return m, true
		}
	}
	return types.Model{}, false
}
