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

// ProtectedItemModel is a machine protected by a replication vault.
type ProtectedItemModel = arm.Envelope[ProtectedItemModelProperties]

type ProtectedItemModelProperties struct {
	PolicyName                          string                             `json:"policyName"`
	ReplicationExtensionName            string                             `json:"replicationExtensionName"`
	CorrelationID                       *string                            `json:"correlationId,omitempty"`
	ProvisioningState                   *ProvisioningState                 `json:"provisioningState,omitempty"`
	ProtectionState                     *ProtectionState                   `json:"protectionState,omitempty"`
	ProtectionStateDescription          *string                            `json:"protectionStateDescription,omitempty"`
	TestFailoverState                   *TestFailoverState                 `json:"testFailoverState,omitempty"`
	TestFailoverStateDescription        *string                            `json:"testFailoverStateDescription,omitempty"`
	ResynchronizationState              *ResynchronizationState            `json:"resynchronizationState,omitempty"`
	FabricObjectID                      *string                            `json:"fabricObjectId,omitempty"`
	FabricObjectName                    *string                            `json:"fabricObjectName,omitempty"`
	SourceFabricProviderID              *string                            `json:"sourceFabricProviderId,omitempty"`
	TargetFabricProviderID              *string                            `json:"targetFabricProviderId,omitempty"`
	FabricID                            *string                            `json:"fabricId,omitempty"`
	TargetFabricID                      *string                            `json:"targetFabricId,omitempty"`
	DraID                               *string                            `json:"draId,omitempty"`
	TargetDraID                         *string                            `json:"targetDraId,omitempty"`
	ResyncRequired                      *bool                              `json:"resyncRequired,omitempty"`
	LastSuccessfulPlannedFailoverTime   *arm.DateTime                      `json:"lastSuccessfulPlannedFailoverTime,omitempty"`
	LastSuccessfulUnplannedFailoverTime *arm.DateTime                      `json:"lastSuccessfulUnplannedFailoverTime,omitempty"`
	LastSuccessfulTestFailoverTime      *arm.DateTime                      `json:"lastSuccessfulTestFailoverTime,omitempty"`
	CurrentJob                          *ProtectedItemJobProperties        `json:"currentJob,omitempty"`
	AllowedJobs                         []string                           `json:"allowedJobs,omitempty"`
	LastFailedEnableProtectionJob       *ProtectedItemJobProperties        `json:"lastFailedEnableProtectionJob,omitempty"`
	LastFailedPlannedFailoverJob        *ProtectedItemJobProperties        `json:"lastFailedPlannedFailoverJob,omitempty"`
	LastTestFailoverJob                 *ProtectedItemJobProperties        `json:"lastTestFailoverJob,omitempty"`
	ReplicationHealth                   *HealthStatus                      `json:"replicationHealth,omitempty"`
	HealthErrors                        []HealthErrorModel                 `json:"healthErrors,omitempty"`
	CustomProperties                    ProtectedItemModelCustomProperties `json:"customProperties"`
}

func (p ProtectedItemModelProperties) MarshalJSON() ([]byte, error) {
	type alias ProtectedItemModelProperties

	custom, err := protectedItemCustomProperties.EncodeField("ProtectedItemModelProperties", "customProperties", p.CustomProperties, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias(p), custom})
}

func (p *ProtectedItemModelProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("ProtectedItemModelProperties", data, p); err != nil {
		return err
	}

	type alias ProtectedItemModelProperties

	aux := struct {
		*alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	custom, err := protectedItemCustomProperties.DecodeField("ProtectedItemModelProperties", "customProperties", aux.CustomProperties, true)
	if err != nil {
		return err
	}

	p.CustomProperties = custom
	return nil
}

// ProtectedItemJobProperties summarizes a workflow run on a protected item.
type ProtectedItemJobProperties struct {
	ScenarioName *string       `json:"scenarioName,omitempty"`
	ID           *string       `json:"id,omitempty"`
	Name         *string       `json:"name,omitempty"`
	DisplayName  *string       `json:"displayName,omitempty"`
	State        *string       `json:"state,omitempty"`
	StartTime    *arm.DateTime `json:"startTime,omitempty"`
	EndTime      *arm.DateTime `json:"endTime,omitempty"`
}

type ProtectedItemModelCustomProperties interface {
	arm.Variant
	protectedItemCustomProperties()
}

var protectedItemCustomProperties = arm.NewUnion[ProtectedItemModelCustomProperties]("ProtectedItemModelCustomProperties", instanceTypeField).
	Register(func() ProtectedItemModelCustomProperties { return &HyperVToAzStackHCIProtectedItemModelCustomProperties{} }).
	Register(func() ProtectedItemModelCustomProperties { return &VMwareToAzStackHCIProtectedItemModelCustomProperties{} })

func PossibleProtectedItemModelCustomPropertiesTypes() []string {
	return protectedItemCustomProperties.Tags()
}

// DynamicMemoryConfig bounds the memory of a machine with dynamic RAM.
type DynamicMemoryConfig struct {
	MaximumMemoryInMegaBytes     int64 `json:"maximumMemoryInMegaBytes"`
	MinimumMemoryInMegaBytes     int64 `json:"minimumMemoryInMegaBytes"`
	TargetMemoryBufferPercentage int32 `json:"targetMemoryBufferPercentage"`
}

func (d *DynamicMemoryConfig) UnmarshalJSON(data []byte) error {
	type alias DynamicMemoryConfig
	return arm.DecodeObject("DynamicMemoryConfig", data, (*alias)(d))
}

// HyperVToAzStackHCIProtectedItemModelCustomProperties describes a Hyper-V
// machine replicated to Azure Stack HCI.
type HyperVToAzStackHCIProtectedItemModelCustomProperties struct {
	ActiveLocation                       *ProtectedItemActiveLocation                `json:"activeLocation,omitempty"`
	TargetHCIClusterID                   string                                      `json:"targetHciClusterId"`
	TargetArcClusterCustomLocationID     string                                      `json:"targetArcClusterCustomLocationId"`
	TargetAzStackHCIClusterName          *string                                     `json:"targetAzStackHciClusterName,omitempty"`
	FabricDiscoveryMachineID             string                                      `json:"fabricDiscoveryMachineId"`
	DisksToInclude                       []HyperVToAzStackHCIDiskInput               `json:"disksToInclude"`
	NicsToInclude                        []HyperVToAzStackHCINicInput                `json:"nicsToInclude"`
	SourceVMName                         *string                                     `json:"sourceVmName,omitempty"`
	SourceCPUCores                       *int32                                      `json:"sourceCpuCores,omitempty"`
	SourceMemoryInMegaBytes              *float64                                    `json:"sourceMemoryInMegaBytes,omitempty"`
	TargetVMName                         *string                                     `json:"targetVmName,omitempty"`
	TargetResourceGroupID                string                                      `json:"targetResourceGroupId"`
	StorageContainerID                   string                                      `json:"storageContainerId"`
	HyperVGeneration                     string                                      `json:"hyperVGeneration"`
	TargetNetworkID                      *string                                     `json:"targetNetworkId,omitempty"`
	TestNetworkID                        *string                                     `json:"testNetworkId,omitempty"`
	TargetCPUCores                       *int32                                      `json:"targetCpuCores,omitempty"`
	IsDynamicRAM                         *bool                                       `json:"isDynamicRam,omitempty"`
	DynamicMemoryConfig                  *DynamicMemoryConfig                        `json:"dynamicMemoryConfig,omitempty"`
	TargetMemoryInMegaBytes              *int32                                      `json:"targetMemoryInMegaBytes,omitempty"`
	RunAsAccountID                       string                                      `json:"runAsAccountId"`
	SourceDraName                        string                                      `json:"sourceDraName"`
	TargetDraName                        string                                      `json:"targetDraName"`
	OSType                               *string                                     `json:"osType,omitempty"`
	OSName                               *string                                     `json:"osName,omitempty"`
	FirmwareType                         *string                                     `json:"firmwareType,omitempty"`
	TargetLocation                       *string                                     `json:"targetLocation,omitempty"`
	CustomLocationRegion                 string                                      `json:"customLocationRegion"`
	LastRecoveryPointReceived            *arm.DateTime                               `json:"lastRecoveryPointReceived,omitempty"`
	InitialReplicationProgressPercentage *int32                                      `json:"initialReplicationProgressPercentage,omitempty"`
	ResyncProgressPercentage             *int32                                      `json:"resyncProgressPercentage,omitempty"`
	ProtectedDisks                       []HyperVToAzStackHCIProtectedDiskProperties `json:"protectedDisks,omitempty"`
	ProtectedNics                        []HyperVToAzStackHCIProtectedNicProperties  `json:"protectedNics,omitempty"`
}

func (h *HyperVToAzStackHCIProtectedItemModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias HyperVToAzStackHCIProtectedItemModelCustomProperties
	return arm.DecodeObject("HyperVToAzStackHCIProtectedItemModelCustomProperties", data, (*alias)(h))
}

func (HyperVToAzStackHCIProtectedItemModelCustomProperties) Discriminator() string {
	return "HyperVToAzStackHCI"
}

func (HyperVToAzStackHCIProtectedItemModelCustomProperties) protectedItemCustomProperties() {}

type HyperVToAzStackHCIDiskInput struct {
	DiskID             string  `json:"diskId"`
	StorageContainerID *string `json:"storageContainerId,omitempty"`
	IsDynamic          *bool   `json:"isDynamic,omitempty"`
	DiskSizeGB         int64   `json:"diskSizeGB"`
	DiskFileFormat     string  `json:"diskFileFormat"`
	IsOSDisk           bool    `json:"isOsDisk"`
}

func (h *HyperVToAzStackHCIDiskInput) UnmarshalJSON(data []byte) error {
	type alias HyperVToAzStackHCIDiskInput
	return arm.DecodeObject("HyperVToAzStackHCIDiskInput", data, (*alias)(h))
}

type HyperVToAzStackHCINicInput struct {
	NicID                    string         `json:"nicId"`
	NetworkName              *string        `json:"networkName,omitempty"`
	TargetNetworkID          string         `json:"targetNetworkId"`
	TestNetworkID            string         `json:"testNetworkId"`
	SelectionTypeForFailover VMNicSelection `json:"selectionTypeForFailover"`
}

func (h *HyperVToAzStackHCINicInput) UnmarshalJSON(data []byte) error {
	type alias HyperVToAzStackHCINicInput
	return arm.DecodeObject("HyperVToAzStackHCINicInput", data, (*alias)(h))
}

type HyperVToAzStackHCIProtectedDiskProperties struct {
	StorageContainerID        *string `json:"storageContainerId,omitempty"`
	StorageContainerLocalPath *string `json:"storageContainerLocalPath,omitempty"`
	SourceDiskID              *string `json:"sourceDiskId,omitempty"`
	SourceDiskName            *string `json:"sourceDiskName,omitempty"`
	SeedDiskName              *string `json:"seedDiskName,omitempty"`
	TestMigrateDiskName       *string `json:"testMigrateDiskName,omitempty"`
	MigrateDiskName           *string `json:"migrateDiskName,omitempty"`
	IsOSDisk                  *bool   `json:"isOsDisk,omitempty"`
	CapacityInBytes           *int64  `json:"capacityInBytes,omitempty"`
	IsDynamic                 *bool   `json:"isDynamic,omitempty"`
	DiskType                  *string `json:"diskType,omitempty"`
}

type HyperVToAzStackHCIProtectedNicProperties struct {
	NicID                    *string         `json:"nicId,omitempty"`
	MacAddress               *string         `json:"macAddress,omitempty"`
	NetworkName              *string         `json:"networkName,omitempty"`
	TargetNetworkID          *string         `json:"targetNetworkId,omitempty"`
	TestNetworkID            *string         `json:"testNetworkId,omitempty"`
	SelectionTypeForFailover *VMNicSelection `json:"selectionTypeForFailover,omitempty"`
}

// VMwareToAzStackHCIProtectedItemModelCustomProperties describes a VMware
// machine replicated to Azure Stack HCI.
type VMwareToAzStackHCIProtectedItemModelCustomProperties struct {
	ActiveLocation                   *ProtectedItemActiveLocation  `json:"activeLocation,omitempty"`
	TargetHCIClusterID               string                        `json:"targetHciClusterId"`
	TargetArcClusterCustomLocationID string                        `json:"targetArcClusterCustomLocationId"`
	StorageContainerID               string                        `json:"storageContainerId"`
	TargetResourceGroupID            string                        `json:"targetResourceGroupId"`
	TargetLocation                   *string                       `json:"targetLocation,omitempty"`
	CustomLocationRegion             string                        `json:"customLocationRegion"`
	DisksToInclude                   []VMwareToAzStackHCIDiskInput `json:"disksToInclude"`
	NicsToInclude                    []VMwareToAzStackHCINicInput  `json:"nicsToInclude"`
	HyperVGeneration                 string                        `json:"hyperVGeneration"`
	FabricDiscoveryMachineID         string                        `json:"fabricDiscoveryMachineId"`
	RunAsAccountID                   string                        `json:"runAsAccountId"`
	SourceDraName                    string                        `json:"sourceDraName"`
	TargetDraName                    string                        `json:"targetDraName"`
	TargetVMName                     *string                       `json:"targetVmName,omitempty"`
	TargetCPUCores                   *int32                        `json:"targetCpuCores,omitempty"`
	IsDynamicRAM                     *bool                         `json:"isDynamicRam,omitempty"`
	DynamicMemoryConfig              *DynamicMemoryConfig          `json:"dynamicMemoryConfig,omitempty"`
	TargetMemoryInMegaBytes          *int32                        `json:"targetMemoryInMegaBytes,omitempty"`
	SourceVMName                     *string                       `json:"sourceVmName,omitempty"`
	SourceCPUCores                   *int32                        `json:"sourceCpuCores,omitempty"`
	SourceMemoryInMegaBytes          *float64                      `json:"sourceMemoryInMegaBytes,omitempty"`
	FirmwareType                     *string                       `json:"firmwareType,omitempty"`
	OSType                           *string                       `json:"osType,omitempty"`
	OSName                           *string                       `json:"osName,omitempty"`
	PerformAutoResync                *bool                         `json:"performAutoResync,omitempty"`
	MigrationProgressPercentage      *int32                        `json:"migrationProgressPercentage,omitempty"`
	ResyncProgressPercentage         *int32                        `json:"resyncProgressPercentage,omitempty"`
	LastRecoveryPointReceived        *arm.DateTime                 `json:"lastRecoveryPointReceived,omitempty"`
}

func (v *VMwareToAzStackHCIProtectedItemModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias VMwareToAzStackHCIProtectedItemModelCustomProperties
	return arm.DecodeObject("VMwareToAzStackHCIProtectedItemModelCustomProperties", data, (*alias)(v))
}

func (VMwareToAzStackHCIProtectedItemModelCustomProperties) Discriminator() string {
	return "VMwareToAzStackHCI"
}

func (VMwareToAzStackHCIProtectedItemModelCustomProperties) protectedItemCustomProperties() {}

type VMwareToAzStackHCIDiskInput struct {
	DiskID             string  `json:"diskId"`
	StorageContainerID *string `json:"storageContainerId,omitempty"`
	IsDynamic          *bool   `json:"isDynamic,omitempty"`
	DiskSizeGB         int64   `json:"diskSizeGB"`
	DiskFileFormat     string  `json:"diskFileFormat"`
	IsOSDisk           bool    `json:"isOsDisk"`
}

func (v *VMwareToAzStackHCIDiskInput) UnmarshalJSON(data []byte) error {
	type alias VMwareToAzStackHCIDiskInput
	return arm.DecodeObject("VMwareToAzStackHCIDiskInput", data, (*alias)(v))
}

type VMwareToAzStackHCINicInput struct {
	NicID                    string         `json:"nicId"`
	Label                    string         `json:"label"`
	NetworkName              *string        `json:"networkName,omitempty"`
	TargetNetworkID          string         `json:"targetNetworkId"`
	TestNetworkID            string         `json:"testNetworkId"`
	SelectionTypeForFailover VMNicSelection `json:"selectionTypeForFailover"`
}

func (v *VMwareToAzStackHCINicInput) UnmarshalJSON(data []byte) error {
	type alias VMwareToAzStackHCINicInput
	return arm.DecodeObject("VMwareToAzStackHCINicInput", data, (*alias)(v))
}
