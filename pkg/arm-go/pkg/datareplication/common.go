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

import "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"

const (
	// APIVersion is the version of the Microsoft.DataReplication API these
	// models describe.
	APIVersion string = "2021-02-16-preview"

	ProviderNamespace string = "Microsoft.DataReplication"

	// The discriminator of every custom properties union.
	instanceTypeField string = "instanceType"
)

// HealthErrorModel is a health error raised for a replication resource.
type HealthErrorModel struct {
	AffectedResourceType           *string                 `json:"affectedResourceType,omitempty"`
	AffectedResourceCorrelationIDs []string                `json:"affectedResourceCorrelationIds,omitempty"`
	ChildErrors                    []InnerHealthErrorModel `json:"childErrors,omitempty"`
	Code                           *string                 `json:"code,omitempty"`
	HealthCategory                 *string                 `json:"healthCategory,omitempty"`
	Category                       *string                 `json:"category,omitempty"`
	Severity                       *string                 `json:"severity,omitempty"`
	Source                         *string                 `json:"source,omitempty"`
	CreationTime                   *arm.DateTime           `json:"creationTime,omitempty"`
	IsCustomerResolvable           *bool                   `json:"isCustomerResolvable,omitempty"`
	Summary                        *string                 `json:"summary,omitempty"`
	Message                        *string                 `json:"message,omitempty"`
	Causes                         *string                 `json:"causes,omitempty"`
	Recommendation                 *string                 `json:"recommendation,omitempty"`
}

type InnerHealthErrorModel struct {
	Code                 *string       `json:"code,omitempty"`
	HealthCategory       *string       `json:"healthCategory,omitempty"`
	Category             *string       `json:"category,omitempty"`
	Severity             *string       `json:"severity,omitempty"`
	Source               *string       `json:"source,omitempty"`
	CreationTime         *arm.DateTime `json:"creationTime,omitempty"`
	IsCustomerResolvable *bool         `json:"isCustomerResolvable,omitempty"`
	Summary              *string       `json:"summary,omitempty"`
	Message              *string       `json:"message,omitempty"`
	Causes               *string       `json:"causes,omitempty"`
	Recommendation       *string       `json:"recommendation,omitempty"`
}

// ErrorModel is an error reported by a workflow.
type ErrorModel struct {
	Code           *string       `json:"code,omitempty"`
	Type           *string       `json:"type,omitempty"`
	Severity       *string       `json:"severity,omitempty"`
	CreationTime   *arm.DateTime `json:"creationTime,omitempty"`
	Message        *string       `json:"message,omitempty"`
	Causes         *string       `json:"causes,omitempty"`
	Recommendation *string       `json:"recommendation,omitempty"`
}
