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

// EventModel is an event raised on a resource of a vault.
type EventModel = arm.Envelope[EventModelProperties]

type EventModelProperties struct {
	ResourceType     *string                    `json:"resourceType,omitempty"`
	ResourceName     *string                    `json:"resourceName,omitempty"`
	EventType        *string                    `json:"eventType,omitempty"`
	EventName        *string                    `json:"eventName,omitempty"`
	TimeOfOccurrence *arm.DateTime              `json:"timeOfOccurrence,omitempty"`
	Severity         *string                    `json:"severity,omitempty"`
	Description      *string                    `json:"description,omitempty"`
	CorrelationID    *string                    `json:"correlationId,omitempty"`
	HealthErrors     []HealthErrorModel         `json:"healthErrors,omitempty"`
	CustomProperties EventModelCustomProperties `json:"customProperties"`
}

func (e EventModelProperties) MarshalJSON() ([]byte, error) {
	type alias EventModelProperties

	custom, err := eventCustomProperties.EncodeField("EventModelProperties", "customProperties", e.CustomProperties, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias(e), custom})
}

func (e *EventModelProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("EventModelProperties", data, e); err != nil {
		return err
	}

	type alias EventModelProperties

	aux := struct {
		*alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	custom, err := eventCustomProperties.DecodeField("EventModelProperties", "customProperties", aux.CustomProperties, true)
	if err != nil {
		return err
	}

	e.CustomProperties = custom
	return nil
}

type EventModelCustomProperties interface {
	arm.Variant
	eventCustomProperties()
}

var eventCustomProperties = arm.NewUnion[EventModelCustomProperties]("EventModelCustomProperties", instanceTypeField).
	Register(func() EventModelCustomProperties { return &HyperVToAzStackHCIEventModelCustomProperties{} })

func PossibleEventModelCustomPropertiesTypes() []string {
	return eventCustomProperties.Tags()
}

type HyperVToAzStackHCIEventModelCustomProperties struct {
	EventSourceFriendlyName   *string `json:"eventSourceFriendlyName,omitempty"`
	ProtectedItemFriendlyName *string `json:"protectedItemFriendlyName,omitempty"`
	SourceApplianceName       *string `json:"sourceApplianceName,omitempty"`
	TargetApplianceName       *string `json:"targetApplianceName,omitempty"`
	ServerType                *string `json:"serverType,omitempty"`
}

func (HyperVToAzStackHCIEventModelCustomProperties) Discriminator() string {
	return "HyperVToAzStackHCI"
}

func (HyperVToAzStackHCIEventModelCustomProperties) eventCustomProperties() {}
