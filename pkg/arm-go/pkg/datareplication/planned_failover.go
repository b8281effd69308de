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

// PlannedFailoverModel is both the body of a planned failover request and
// the result it completes with.
type PlannedFailoverModel struct {
	Properties PlannedFailoverModelProperties `json:"properties"`
}

func (p *PlannedFailoverModel) UnmarshalJSON(data []byte) error {
	type alias PlannedFailoverModel
	return arm.DecodeObject("PlannedFailoverModel", data, (*alias)(p))
}

type PlannedFailoverModelProperties struct {
	CustomProperties PlannedFailoverModelCustomProperties `json:"customProperties"`
}

func (p PlannedFailoverModelProperties) MarshalJSON() ([]byte, error) {
	custom, err := plannedFailoverCustomProperties.EncodeField("PlannedFailoverModelProperties", "customProperties", p.CustomProperties, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		CustomProperties json.RawMessage `json:"customProperties"`
	}{custom})
}

func (p *PlannedFailoverModelProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("PlannedFailoverModelProperties", data, p); err != nil {
		return err
	}

	var aux struct {
		CustomProperties json.RawMessage `json:"customProperties"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	custom, err := plannedFailoverCustomProperties.DecodeField("PlannedFailoverModelProperties", "customProperties", aux.CustomProperties, true)
	if err != nil {
		return err
	}

	p.CustomProperties = custom
	return nil
}

type PlannedFailoverModelCustomProperties interface {
	arm.Variant
	failoverCustomProperties()
}

var plannedFailoverCustomProperties = arm.NewUnion[PlannedFailoverModelCustomProperties]("PlannedFailoverModelCustomProperties", instanceTypeField).
	Register(func() PlannedFailoverModelCustomProperties { return &HyperVToAzStackHCIPlannedFailoverModelCustomProperties{} }).
	Register(func() PlannedFailoverModelCustomProperties { return &VMwareToAzStackHCIPlannedFailoverModelCustomProperties{} })

func PossiblePlannedFailoverModelCustomPropertiesTypes() []string {
	return plannedFailoverCustomProperties.Tags()
}

// DecodePlannedFailoverCustomProperties decodes a bare custom properties
// object, the one carrying the instanceType.
func DecodePlannedFailoverCustomProperties(data []byte) (PlannedFailoverModelCustomProperties, error) {
	return plannedFailoverCustomProperties.Decode(data)
}

type HyperVToAzStackHCIPlannedFailoverModelCustomProperties struct {
	ShutdownSourceVM bool `json:"shutdownSourceVM"`
}

func (h *HyperVToAzStackHCIPlannedFailoverModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias HyperVToAzStackHCIPlannedFailoverModelCustomProperties
	return arm.DecodeObject("HyperVToAzStackHCIPlannedFailoverModelCustomProperties", data, (*alias)(h))
}

func (HyperVToAzStackHCIPlannedFailoverModelCustomProperties) Discriminator() string {
	return "HyperVToAzStackHCI"
}

func (HyperVToAzStackHCIPlannedFailoverModelCustomProperties) failoverCustomProperties() {}

type VMwareToAzStackHCIPlannedFailoverModelCustomProperties struct {
	ShutdownSourceVM bool `json:"shutdownSourceVM"`
}

func (v *VMwareToAzStackHCIPlannedFailoverModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias VMwareToAzStackHCIPlannedFailoverModelCustomProperties
	return arm.DecodeObject("VMwareToAzStackHCIPlannedFailoverModelCustomProperties", data, (*alias)(v))
}

func (VMwareToAzStackHCIPlannedFailoverModelCustomProperties) Discriminator() string {
	return "VMwareToAzStackHCI"
}

func (VMwareToAzStackHCIPlannedFailoverModelCustomProperties) failoverCustomProperties() {}
