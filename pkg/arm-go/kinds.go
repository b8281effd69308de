// Copyright (c) 2022 Cisco Systems, Inc. and its affiliates
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package armgo

import (
	"encoding/json"
	"sort"
	"strings"

	dm "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datamigration"
	dr "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datareplication"
)

// Kind is a resource, or a request body, the client knows how to decode.
type Kind struct {
	// Name is the short name of the kind, e.g. "vault".
	Name string
	// Type is the full resource type, e.g.
	// "Microsoft.DataReplication/replicationVaults". It is empty for
	// kinds that are not resources.
	Type       string
	APIVersion string

	decode func(data []byte) (any, error)
}

// Decode decodes data into a new value of the kind's model.
func (k Kind) Decode(data []byte) (any, error) {
	return k.decode(data)
}

func decoderOf[T any]() func([]byte) (any, error) {
	return func(data []byte) (any, error) {
		var value T
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, err
		}

		return &value, nil
	}
}

var kinds = []Kind{
	{
		Name:       "vault",
		Type:       dr.ProviderNamespace + "/replicationVaults",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.VaultModel](),
	},
	{
		Name:       "fabric",
		Type:       dr.ProviderNamespace + "/replicationFabrics",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.FabricModel](),
	},
	{
		Name:       "policy",
		Type:       dr.ProviderNamespace + "/replicationVaults/replicationPolicies",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.PolicyModel](),
	},
	{
		Name:       "protecteditem",
		Type:       dr.ProviderNamespace + "/replicationVaults/protectedItems",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.ProtectedItemModel](),
	},
	{
		Name:       "plannedfailover",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.PlannedFailoverModel](),
	},
	{
		Name:       "event",
		Type:       dr.ProviderNamespace + "/replicationVaults/events",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.EventModel](),
	},
	{
		Name:       "workflow",
		Type:       dr.ProviderNamespace + "/replicationVaults/jobs",
		APIVersion: dr.APIVersion,
		decode:     decoderOf[dr.WorkflowModel](),
	},
	{
		Name:       "service",
		Type:       dm.ProviderNamespace + "/services",
		APIVersion: dm.APIVersion,
		decode:     decoderOf[dm.Service](),
	},
	{
		Name:       "project",
		Type:       dm.ProviderNamespace + "/services/projects",
		APIVersion: dm.APIVersion,
		decode:     decoderOf[dm.Project](),
	},
	{
		Name:       "task",
		Type:       dm.ProviderNamespace + "/services/projects/tasks",
		APIVersion: dm.APIVersion,
		decode:     decoderOf[dm.ProjectTask](),
	},
}

// Kinds returns every kind the client can decode, sorted by name.
func Kinds() []Kind {
	list := make([]Kind, len(kinds))
	copy(list, kinds)
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}

func KindByName(name string) (Kind, bool) {
	for _, k := range kinds {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}

	return Kind{}, false
}

// KindByType finds the kind of a resource type. Resource types are case
// insensitive.
func KindByType(resourceType string) (Kind, bool) {
	for _, k := range kinds {
		if k.Type != "" && strings.EqualFold(k.Type, resourceType) {
			return k, true
		}
	}

	return Kind{}, false
}
