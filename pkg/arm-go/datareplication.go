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
	"context"

	dr "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datareplication"
)

type vaultsOps struct {
	*collection[dr.VaultModel]
}

// Vaults serves the replication vaults of a resource group.
func (c *Client) Vaults(resourceGroup string) *vaultsOps {
	p, err := c.resourceGroupPath(resourceGroup, dr.ProviderNamespace, "replicationVaults")
	return &vaultsOps{newCollection[dr.VaultModel](c.requester, p, dr.APIVersion, err)}
}

type fabricsOps struct {
	*collection[dr.FabricModel]
}

// Fabrics serves the replication fabrics of a resource group.
func (c *Client) Fabrics(resourceGroup string) *fabricsOps {
	p, err := c.resourceGroupPath(resourceGroup, dr.ProviderNamespace, "replicationFabrics")
	return &fabricsOps{newCollection[dr.FabricModel](c.requester, p, dr.APIVersion, err)}
}

type policiesOps struct {
	*collection[dr.PolicyModel]
}

func (c *Client) Policies(resourceGroup, vault string) *policiesOps {
	p, err := c.resourceGroupPath(resourceGroup, dr.ProviderNamespace, "replicationVaults", vault, "replicationPolicies")
	return &policiesOps{newCollection[dr.PolicyModel](c.requester, p, dr.APIVersion, err)}
}

type protectedItemsOps struct {
	*collection[dr.ProtectedItemModel]
}

// ProtectedItems serves the items a vault protects.
func (c *Client) ProtectedItems(resourceGroup, vault string) *protectedItemsOps {
	p, err := c.resourceGroupPath(resourceGroup, dr.ProviderNamespace, "replicationVaults", vault, "protectedItems")
	return &protectedItemsOps{newCollection[dr.ProtectedItemModel](c.requester, p, dr.APIVersion, err)}
}

// PlannedFailover starts a planned failover of the protected item. The
// service usually accepts it without completing it: follow the returned
// operation to know when it is done.
func (p *protectedItemsOps) PlannedFailover(ctx context.Context, name string, failover *dr.PlannedFailoverModel) (*dr.PlannedFailoverModel, *Operation, error) {
	resp, err := p.action(ctx, name, "plannedFailover", failover)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	return decodeAccepted[dr.PlannedFailoverModel](resp)
}

type eventsOps struct {
	*readCollection[dr.EventModel]
}

func (c *Client) Events(resourceGroup, vault string) *eventsOps {
	p, err := c.resourceGroupPath(resourceGroup, dr.ProviderNamespace, "replicationVaults", vault, "events")
	return &eventsOps{newReadCollection[dr.EventModel](c.requester, p, dr.APIVersion, err)}
}

type workflowsOps struct {
	*readCollection[dr.WorkflowModel]
}

// Workflows serves the jobs run by a vault, e.g. the ones started by a
// planned failover.
func (c *Client) Workflows(resourceGroup, vault string) *workflowsOps {
	p, err := c.resourceGroupPath(resourceGroup, dr.ProviderNamespace, "replicationVaults", vault, "jobs")
	return &workflowsOps{newReadCollection[dr.WorkflowModel](c.requester, p, dr.APIVersion, err)}
}
