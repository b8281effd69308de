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

// WorkflowModel is a job run by a vault, such as a failover.
type WorkflowModel = arm.Envelope[WorkflowModelProperties]

type WorkflowModelProperties struct {
	DisplayName            *string                       `json:"displayName,omitempty"`
	State                  *WorkflowState                `json:"state,omitempty"`
	StartTime              *arm.DateTime                 `json:"startTime,omitempty"`
	EndTime                *arm.DateTime                 `json:"endTime,omitempty"`
	ObjectID               *string                       `json:"objectId,omitempty"`
	ObjectName             *string                       `json:"objectName,omitempty"`
	ObjectInternalID       *string                       `json:"objectInternalId,omitempty"`
	ObjectInternalName     *string                       `json:"objectInternalName,omitempty"`
	ObjectType             *WorkflowObjectType           `json:"objectType,omitempty"`
	ReplicationProviderID  *string                       `json:"replicationProviderId,omitempty"`
	SourceFabricProviderID *string                       `json:"sourceFabricProviderId,omitempty"`
	TargetFabricProviderID *string                       `json:"targetFabricProviderId,omitempty"`
	AllowedActions         []string                      `json:"allowedActions,omitempty"`
	ActivityID             *string                       `json:"activityId,omitempty"`
	Tasks                  []TaskModel                   `json:"tasks,omitempty"`
	Errors                 []ErrorModel                  `json:"errors,omitempty"`
	CustomProperties       WorkflowModelCustomProperties `json:"customProperties"`
}

func (w WorkflowModelProperties) MarshalJSON() ([]byte, error) {
	type alias WorkflowModelProperties

	custom, err := workflowCustomProperties.EncodeField("WorkflowModelProperties", "customProperties", w.CustomProperties, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias(w), custom})
}

func (w *WorkflowModelProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("WorkflowModelProperties", data, w); err != nil {
		return err
	}

	type alias WorkflowModelProperties

	aux := struct {
		*alias
		CustomProperties json.RawMessage `json:"customProperties"`
	}{alias: (*alias)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	custom, err := workflowCustomProperties.DecodeField("WorkflowModelProperties", "customProperties", aux.CustomProperties, true)
	if err != nil {
		return err
	}

	w.CustomProperties = custom
	return nil
}

// IsFinished tells whether the workflow reached a state it will not leave.
func (w *WorkflowModelProperties) IsFinished() bool {
	return w.State != nil && w.State.IsTerminal()
}

// TaskModel is a step of a workflow. A task may spawn child workflows.
type TaskModel struct {
	TaskName          *string                    `json:"taskName,omitempty"`
	State             *TaskState                 `json:"state,omitempty"`
	StartTime         *arm.DateTime              `json:"startTime,omitempty"`
	EndTime           *arm.DateTime              `json:"endTime,omitempty"`
	CustomProperties  *TaskModelCustomProperties `json:"customProperties,omitempty"`
	ChildrenWorkflows []WorkflowModel            `json:"childrenWorkflows,omitempty"`
}

type TaskModelCustomProperties struct {
	InstanceType string `json:"instanceType"`
}

func (t *TaskModelCustomProperties) UnmarshalJSON(data []byte) error {
	type alias TaskModelCustomProperties
	return arm.DecodeObject("TaskModelCustomProperties", data, (*alias)(t))
}

type WorkflowModelCustomProperties interface {
	arm.Variant
	workflowCustomProperties()
}

var workflowCustomProperties = arm.NewUnion[WorkflowModelCustomProperties]("WorkflowModelCustomProperties", instanceTypeField).
	Register(func() WorkflowModelCustomProperties { return &FailoverWorkflowModelCustomProperties{} }).
	Register(func() WorkflowModelCustomProperties { return &TestFailoverWorkflowModelCustomProperties{} }).
	Register(func() WorkflowModelCustomProperties { return &TestFailoverCleanupWorkflowModelCustomProperties{} })

func PossibleWorkflowModelCustomPropertiesTypes() []string {
	return workflowCustomProperties.Tags()
}

// FailoverProtectedItemProperties describes a protected item moved by a
// failover workflow.
type FailoverProtectedItemProperties struct {
	ProtectedItemName *string       `json:"protectedItemName,omitempty"`
	VMName            *string       `json:"vmName,omitempty"`
	TestVMName        *string       `json:"testVmName,omitempty"`
	RecoveryPointID   *string       `json:"recoveryPointId,omitempty"`
	RecoveryPointTime *arm.DateTime `json:"recoveryPointTime,omitempty"`
	NetworkName       *string       `json:"networkName,omitempty"`
	Subnet            *string       `json:"subnet,omitempty"`
}

type FailoverWorkflowModelCustomProperties struct {
	AffectedObjectDetails map[string]string                 `json:"affectedObjectDetails,omitempty"`
	ProtectedItemDetails  []FailoverProtectedItemProperties `json:"protectedItemDetails,omitempty"`
}

func (FailoverWorkflowModelCustomProperties) Discriminator() string {
	return "FailoverWorkflowDetails"
}

func (FailoverWorkflowModelCustomProperties) workflowCustomProperties() {}

type TestFailoverWorkflowModelCustomProperties struct {
	AffectedObjectDetails map[string]string                 `json:"affectedObjectDetails,omitempty"`
	ProtectedItemDetails  []FailoverProtectedItemProperties `json:"protectedItemDetails,omitempty"`
}

func (TestFailoverWorkflowModelCustomProperties) Discriminator() string {
	return "TestFailoverWorkflowDetails"
}

func (TestFailoverWorkflowModelCustomProperties) workflowCustomProperties() {}

type TestFailoverCleanupWorkflowModelCustomProperties struct {
	AffectedObjectDetails map[string]string `json:"affectedObjectDetails,omitempty"`
	Comments              *string           `json:"comments,omitempty"`
}

func (TestFailoverCleanupWorkflowModelCustomProperties) Discriminator() string {
	return "TestFailoverCleanupWorkflowDetails"
}

func (TestFailoverCleanupWorkflowModelCustomProperties) workflowCustomProperties() {}
