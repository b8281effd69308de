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

package datareplication

import (
	"encoding/json"

	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
)

// FabricModel is a replication fabric: the site machines are replicated
// from or to.
type FabricModel = arm.TrackedEnvelope[FabricModelProperties]

type FabricModelProperties struct {
	ProvisioningState *ProvisioningState          `json:"provisioningState,omitempty"`
	ServiceEndpoint   *string                     `json:"serviceEndpoint,omitempty"`
	ServiceResourceID *string                     `json:"serviceResourceId,omitempty"`
	Health            *HealthStatus               `json:"health,omitempty"`
	HealthErrors      []HealthErrorModel          `json:"healthErrors,omitempty"`
	CustomProperties  FabricModelCustomProperties `json:"customProperties"`
}

func (f FabricModelProperties) MarshalJSON() ([]byte, error) {
	type alias FabricModelProperties

	custom, err := fabricCustomProperties.EncodeField("FabricModelProperties", "customProperties", f.CustomProperties, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias(f), custom})
}

func (f *FabricModelProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("FabricModelProperties", data, f); err != nil {
		return err
	}

	type alias FabricModelProperties

	aux := struct {
		*alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	custom, err := fabricCustomProperties.DecodeField("FabricModelProperties", "customProperties", aux.CustomProperties, true)
	if err != nil {
		return err
	}

	f.CustomProperties = custom
	return nil
}

// FabricModelCustomProperties is the fabric specific part of a fabric,
// selected by its instanceType.
type FabricModelCustomProperties interface {
	arm.Variant
	fabricCustomProperties()
}

var fabricCustomProperties = arm.NewUnion[FabricModelCustomProperties]("FabricModelCustomProperties", instanceTypeField).
	Register(func() FabricModelCustomProperties { return &AzStackHCIFabricModelCustomProperties{} }).
	Register(func() FabricModelCustomProperties { return &HyperVMigrateFabricModelCustomProperties{} }).
	Register(func() FabricModelCustomProperties { return &VMwareMigrateFabricModelCustomProperties{} })

// PossibleFabricModelCustomPropertiesTypes returns the instance types a
// fabric can be decoded into.
func PossibleFabricModelCustomPropertiesTypes() []string {
	return fabricCustomProperties.Tags()
}

// AzStackHCIFabricModelCustomProperties describes an Azure Stack HCI fabric.
type AzStackHCIFabricModelCustomProperties struct {
	AzStackHCISiteID    string                      `json:"azStackHciSiteId"`
	ApplianceName       []string                    `json:"applianceName,omitempty"`
	Cluster             AzStackHCIClusterProperties `json:"cluster"`
	FabricResourceID    *string                     `json:"fabricResourceId,omitempty"`
	FabricContainerID   *string                     `json:"fabricContainerId,omitempty"`
	MigrationSolutionID string                      `json:"migrationSolutionId"`
	MigrationHubURI     *string                     `json:"migrationHubUri,omitempty"`
}

func (a *AzStackHCIFabricModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias AzStackHCIFabricModelCustomProperties
	return arm.DecodeObject("AzStackHCIFabricModelCustomProperties", data, (*alias)(a))
}

func (AzStackHCIFabricModelCustomProperties) Discriminator() string {
	return "AzStackHCI"
}

func (AzStackHCIFabricModelCustomProperties) fabricCustomProperties() {}

type AzStackHCIClusterProperties struct {
	ClusterName        string                       `json:"clusterName"`
	ResourceName       string                       `json:"resourceName"`
	StorageAccountName string                       `json:"storageAccountName"`
	StorageContainers  []StorageContainerProperties `json:"storageContainers"`
}

func (a *AzStackHCIClusterProperties) UnmarshalJSON(data []byte) error {
	type alias AzStackHCIClusterProperties
	return arm.DecodeObject("AzStackHCIClusterProperties", data, (*alias)(a))
}

type StorageContainerProperties struct {
	Name                    string `json:"name"`
	ClusterSharedVolumePath string `json:"clusterSharedVolumePath"`
}

func (s *StorageContainerProperties) UnmarshalJSON(data []byte) error {
	type alias StorageContainerProperties
	return arm.DecodeObject("StorageContainerProperties", data, (*alias)(s))
}

// HyperVMigrateFabricModelCustomProperties describes a Hyper-V site
// discovered by Azure Migrate.
type HyperVMigrateFabricModelCustomProperties struct {
	HyperVSiteID        string  `json:"hyperVSiteId"`
	FabricResourceID    *string `json:"fabricResourceId,omitempty"`
	FabricContainerID   *string `json:"fabricContainerId,omitempty"`
	MigrationSolutionID string  `json:"migrationSolutionId"`
	MigrationHubURI     *string `json:"migrationHubUri,omitempty"`
}

func (h *HyperVMigrateFabricModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias HyperVMigrateFabricModelCustomProperties
	return arm.DecodeObject("HyperVMigrateFabricModelCustomProperties", data, (*alias)(h))
}

func (HyperVMigrateFabricModelCustomProperties) Discriminator() string {
	return "HyperVMigrate"
}

func (HyperVMigrateFabricModelCustomProperties) fabricCustomProperties() {}

// VMwareMigrateFabricModelCustomProperties describes a VMware site
// discovered by Azure Migrate.
type VMwareMigrateFabricModelCustomProperties struct {
	VMwareSiteID        string `json:"vmwareSiteId"`
	MigrationSolutionID string `json:"migrationSolutionId"`
}

func (v *VMwareMigrateFabricModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias VMwareMigrateFabricModelCustomProperties
	return arm.DecodeObject("VMwareMigrateFabricModelCustomProperties", data, (*alias)(v))
}

func (VMwareMigrateFabricModelCustomProperties) Discriminator() string {
	return "VMwareMigrate"
}

func (VMwareMigrateFabricModelCustomProperties) fabricCustomProperties() {}
