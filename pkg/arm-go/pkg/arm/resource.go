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

package arm

import (
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

// CreatedByType is the kind of identity that created or modified a resource.
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

var createdByTypes = NewEnum("CreatedByType",
	CreatedByTypeApplication,
	CreatedByTypeKey,
	CreatedByTypeManagedIdentity,
	CreatedByTypeUser,
)

func PossibleCreatedByTypeValues() []CreatedByType {
	return createdByTypes.Values()
}

func (c CreatedByType) IsKnown() bool {
	return createdByTypes.IsKnown(c)
}

// SystemData is the creation and last modification metadata ARM attaches to
// resources.
type SystemData struct {
	CreatedBy          *string        `json:"createdBy,omitempty"`
	CreatedByType      *CreatedByType `json:"createdByType,omitempty"`
	CreatedAt          *DateTime      `json:"createdAt,omitempty"`
	LastModifiedBy     *string        `json:"lastModifiedBy,omitempty"`
	LastModifiedByType *CreatedByType `json:"lastModifiedByType,omitempty"`
	LastModifiedAt     *DateTime      `json:"lastModifiedAt,omitempty"`
}

// Resource holds the fields shared by every ARM resource. It is embedded, so
// its fields are encoded at the same level as the ones of the embedding
// struct.
type Resource struct {
	ID         *string     `json:"id,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Type       *string     `json:"type,omitempty"`
	SystemData *SystemData `json:"systemData,omitempty"`
}

// TrackedResource is a Resource that lives in a location and can be tagged.
type TrackedResource struct {
	Resource
	Location *string           `json:"location,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"`
}

// Envelope is a proxy resource carrying a typed properties payload.
type Envelope[P any] struct {
	Resource
	Properties *P `json:"properties,omitempty"`
}

// ValidateForCreate fails when the envelope cannot be sent as the body of a
// create request.
func (e *Envelope[P]) ValidateForCreate() error {
	if e.Properties == nil {
		return verrors.ErrorNoPropertiesProvided
	}

	return nil
}

// TrackedEnvelope is a tracked resource carrying a typed properties payload.
type TrackedEnvelope[P any] struct {
	TrackedResource
	Properties *P `json:"properties,omitempty"`
}

func (e *TrackedEnvelope[P]) ValidateForCreate() error {
	if e.Properties == nil {
		return verrors.ErrorNoPropertiesProvided
	}

	if e.Location == nil || *e.Location == "" {
		return &verrors.FieldError{Object: "TrackedResource", Field: "location"}
	}

	return nil
}
