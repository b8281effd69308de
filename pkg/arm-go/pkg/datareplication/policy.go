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

// PolicyModel is a replication policy of a vault.
type PolicyModel = arm.Envelope[PolicyModelProperties]

type PolicyModelProperties struct {
	ProvisioningState *ProvisioningState          `json:"provisioningState,omitempty"`
	CustomProperties  PolicyModelCustomProperties `json:"customProperties"`
}

func (p PolicyModelProperties) MarshalJSON() ([]byte, error) {
	type alias PolicyModelProperties

	custom, err := policyCustomProperties.EncodeField("PolicyModelProperties", "customProperties", p.CustomProperties, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias(p), custom})
}

func (p *PolicyModelProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("PolicyModelProperties", data, p); err != nil {
		return err
	}

	type alias PolicyModelProperties

	aux := struct {
		*alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	custom, err := policyCustomProperties.DecodeField("PolicyModelProperties", "customProperties", aux.CustomProperties, true)
	if err != nil {
		return err
	}

	p.CustomProperties = custom
	return nil
}

type PolicyModelCustomProperties interface {
	arm.Variant
	policyCustomProperties()
}

var policyCustomProperties = arm.NewUnion[PolicyModelCustomProperties]("PolicyModelCustomProperties", instanceTypeField).
	Register(func() PolicyModelCustomProperties { return &HyperVToAzStackHCIPolicyModelCustomProperties{} }).
	Register(func() PolicyModelCustomProperties { return &VMwareToAzStackHCIPolicyModelCustomProperties{} })

func PossiblePolicyModelCustomPropertiesTypes() []string {
	return policyCustomProperties.Tags()
}

// HyperVToAzStackHCIPolicyModelCustomProperties is the recovery point
// policy for Hyper-V machines replicated to Azure Stack HCI.
type HyperVToAzStackHCIPolicyModelCustomProperties struct {
	RecoveryPointHistoryInMinutes     int32 `json:"recoveryPointHistoryInMinutes"`
	CrashConsistentFrequencyInMinutes int32 `json:"crashConsistentFrequencyInMinutes"`
	AppConsistentFrequencyInMinutes   int32 `json:"appConsistentFrequencyInMinutes"`
}

func (h *HyperVToAzStackHCIPolicyModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias HyperVToAzStackHCIPolicyModelCustomProperties
	return arm.DecodeObject("HyperVToAzStackHCIPolicyModelCustomProperties", data, (*alias)(h))
}

func (HyperVToAzStackHCIPolicyModelCustomProperties) Discriminator() string {
	return "HyperVToAzStackHCI"
}

func (HyperVToAzStackHCIPolicyModelCustomProperties) policyCustomProperties() {}

// VMwareToAzStackHCIPolicyModelCustomProperties is the recovery point
// policy for VMware machines replicated to Azure Stack HCI.
type VMwareToAzStackHCIPolicyModelCustomProperties struct {
	RecoveryPointHistoryInMinutes     int32 `json:"recoveryPointHistoryInMinutes"`
	CrashConsistentFrequencyInMinutes int32 `json:"crashConsistentFrequencyInMinutes"`
	AppConsistentFrequencyInMinutes   int32 `json:"appConsistentFrequencyInMinutes"`
}

func (v *VMwareToAzStackHCIPolicyModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias VMwareToAzStackHCIPolicyModelCustomProperties
	return arm.DecodeObject("VMwareToAzStackHCIPolicyModelCustomProperties", data, (*alias)(v))
}

func (VMwareToAzStackHCIPolicyModelCustomProperties) Discriminator() string {
	return "VMwareToAzStackHCI"
}

func (VMwareToAzStackHCIPolicyModelCustomProperties) policyCustomProperties() {}
