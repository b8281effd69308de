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

package datamigration

import "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"

// Service is a Database Migration Service instance.
type Service struct {
	arm.TrackedEnvelope[ServiceProperties]
	Etag *string     `json:"etag,omitempty"`
	Kind *string     `json:"kind,omitempty"`
	SKU  *ServiceSKU `json:"sku,omitempty"`
}

type ServiceProperties struct {
	ProvisioningState     *ServiceProvisioningState `json:"provisioningState,omitempty"`
	PublicKey             *string                   `json:"publicKey,omitempty"`
	VirtualSubnetID       *string                   `json:"virtualSubnetId,omitempty"`
	VirtualNicID          *string                   `json:"virtualNicId,omitempty"`
	AutoStopDelay         *string                   `json:"autoStopDelay,omitempty"`
	DeleteResourcesOnStop *bool                     `json:"deleteResourcesOnStop,omitempty"`
}

// ServiceSKU is the pricing tier of a service.
type ServiceSKU struct {
	Name     *string `json:"name,omitempty"`
	Tier     *string `json:"tier,omitempty"`
	Family   *string `json:"family,omitempty"`
	Size     *string `json:"size,omitempty"`
	Capacity *int32  `json:"capacity,omitempty"`
}

// IsRunning tells whether the service can accept new tasks.
func (s *Service) IsRunning() bool {
	return s.Properties != nil && s.Properties.ProvisioningState != nil &&
		*s.Properties.ProvisioningState == ServiceProvisioningStateSucceeded
}
