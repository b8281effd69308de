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

// ProvisioningState is the provisioning state of a replication resource.
type ProvisioningState string

const (
	ProvisioningStateCanceled  ProvisioningState = "Canceled"
	ProvisioningStateCreating  ProvisioningState = "Creating"
	ProvisioningStateDeleting  ProvisioningState = "Deleting"
	ProvisioningStateDeleted   ProvisioningState = "Deleted"
	ProvisioningStateFailed    ProvisioningState = "Failed"
	ProvisioningStateSucceeded ProvisioningState = "Succeeded"
	ProvisioningStateUpdating  ProvisioningState = "Updating"
)

var provisioningStates = arm.NewEnum("ProvisioningState",
	ProvisioningStateCanceled,
	ProvisioningStateCreating,
	ProvisioningStateDeleting,
	ProvisioningStateDeleted,
	ProvisioningStateFailed,
	ProvisioningStateSucceeded,
	ProvisioningStateUpdating,
)

func PossibleProvisioningStateValues() []ProvisioningState {
	return provisioningStates.Values()
}

func (p ProvisioningState) IsKnown() bool {
	return provisioningStates.IsKnown(p)
}

// IsTerminal tells whether no further provisioning transition is expected.
func (p ProvisioningState) IsTerminal() bool {
	switch p {
	case ProvisioningStateSucceeded, ProvisioningStateFailed,
		ProvisioningStateCanceled, ProvisioningStateDeleted:
		return true
	default:
		return false
	}
}

// HealthStatus is the health of a fabric, vault or protected item.
type HealthStatus string

const (
	HealthStatusNormal   HealthStatus = "Normal"
	HealthStatusWarning  HealthStatus = "Warning"
	HealthStatusCritical HealthStatus = "Critical"
)

var healthStatuses = arm.NewEnum("HealthStatus",
	HealthStatusNormal,
	HealthStatusWarning,
	HealthStatusCritical,
)

func PossibleHealthStatusValues() []HealthStatus {
	return healthStatuses.Values()
}

func (h HealthStatus) IsKnown() bool {
	return healthStatuses.IsKnown(h)
}

type ReplicationVaultType string

const (
	ReplicationVaultTypeDisasterRecovery ReplicationVaultType = "DisasterRecovery"
	ReplicationVaultTypeMigrate          ReplicationVaultType = "Migrate"
)

var replicationVaultTypes = arm.NewEnum("ReplicationVaultType",
	ReplicationVaultTypeDisasterRecovery,
	ReplicationVaultTypeMigrate,
)

func PossibleReplicationVaultTypeValues() []ReplicationVaultType {
	return replicationVaultTypes.Values()
}

func (r ReplicationVaultType) IsKnown() bool {
	return replicationVaultTypes.IsKnown(r)
}

// ProtectionState is the replication state of a protected item. The
// *StatesBegin and *StatesEnd values delimit groups of states and are never
// reported for an item.
type ProtectionState string

const (
	ProtectionStateUnprotectedStatesBegin                ProtectionState = "UnprotectedStatesBegin"
	ProtectionStateEnablingProtection                    ProtectionState = "EnablingProtection"
	ProtectionStateEnablingFailed                        ProtectionState = "EnablingFailed"
	ProtectionStateDisablingProtection                   ProtectionState = "DisablingProtection"
	ProtectionStateMarkedForDeletion                     ProtectionState = "MarkedForDeletion"
	ProtectionStateDisablingFailed                       ProtectionState = "DisablingFailed"
	ProtectionStateUnprotectedStatesEnd                  ProtectionState = "UnprotectedStatesEnd"
	ProtectionStateInitialReplicationStatesBegin         ProtectionState = "InitialReplicationStatesBegin"
	ProtectionStateInitialReplicationInProgress          ProtectionState = "InitialReplicationInProgress"
	ProtectionStateInitialReplicationCompletedOnPrimary  ProtectionState = "InitialReplicationCompletedOnPrimary"
	ProtectionStateInitialReplicationCompletedOnRecovery ProtectionState = "InitialReplicationCompletedOnRecovery"
	ProtectionStateInitialReplicationFailed              ProtectionState = "InitialReplicationFailed"
	ProtectionStateInitialReplicationStatesEnd           ProtectionState = "InitialReplicationStatesEnd"
	ProtectionStateProtectedStatesBegin                  ProtectionState = "ProtectedStatesBegin"
	ProtectionStateProtected                             ProtectionState = "Protected"
	ProtectionStateProtectedStatesEnd                    ProtectionState = "ProtectedStatesEnd"
	ProtectionStatePlannedFailoverTransitionStatesBegin  ProtectionState = "PlannedFailoverTransitionStatesBegin"
	ProtectionStatePlannedFailoverInitiated              ProtectionState = "PlannedFailoverInitiated"
	ProtectionStatePlannedFailoverCompleting             ProtectionState = "PlannedFailoverCompleting"
	ProtectionStatePlannedFailoverCompleted              ProtectionState = "PlannedFailoverCompleted"
	ProtectionStatePlannedFailoverFailed                 ProtectionState = "PlannedFailoverFailed"
	ProtectionStatePlannedFailoverCompletionFailed       ProtectionState = "PlannedFailoverCompletionFailed"
	ProtectionStatePlannedFailoverTransitionStatesEnd    ProtectionState = "PlannedFailoverTransitionStatesEnd"
	ProtectionStateUnplannedFailoverInitiated            ProtectionState = "UnplannedFailoverInitiated"
	ProtectionStateUnplannedFailoverCompleted            ProtectionState = "UnplannedFailoverCompleted"
	ProtectionStateUnplannedFailoverFailed               ProtectionState = "UnplannedFailoverFailed"
	ProtectionStateCommitFailoverCompleted               ProtectionState = "CommitFailoverCompleted"
	ProtectionStateCancelFailoverFailedOnPrimary         ProtectionState = "CancelFailoverFailedOnPrimary"
	ProtectionStateReprotectInitiated                    ProtectionState = "ReprotectInitiated"
	ProtectionStateReprotectFailed                       ProtectionState = "ReprotectFailed"
)

var protectionStates = arm.NewEnum("ProtectionState",
	ProtectionStateUnprotectedStatesBegin,
	ProtectionStateEnablingProtection,
	ProtectionStateEnablingFailed,
	ProtectionStateDisablingProtection,
	ProtectionStateMarkedForDeletion,
	ProtectionStateDisablingFailed,
	ProtectionStateUnprotectedStatesEnd,
	ProtectionStateInitialReplicationStatesBegin,
	ProtectionStateInitialReplicationInProgress,
	ProtectionStateInitialReplicationCompletedOnPrimary,
	ProtectionStateInitialReplicationCompletedOnRecovery,
	ProtectionStateInitialReplicationFailed,
	ProtectionStateInitialReplicationStatesEnd,
	ProtectionStateProtectedStatesBegin,
	ProtectionStateProtected,
	ProtectionStateProtectedStatesEnd,
	ProtectionStatePlannedFailoverTransitionStatesBegin,
	ProtectionStatePlannedFailoverInitiated,
	ProtectionStatePlannedFailoverCompleting,
	ProtectionStatePlannedFailoverCompleted,
	ProtectionStatePlannedFailoverFailed,
	ProtectionStatePlannedFailoverCompletionFailed,
	ProtectionStatePlannedFailoverTransitionStatesEnd,
	ProtectionStateUnplannedFailoverInitiated,
	ProtectionStateUnplannedFailoverCompleted,
	ProtectionStateUnplannedFailoverFailed,
	ProtectionStateCommitFailoverCompleted,
	ProtectionStateCancelFailoverFailedOnPrimary,
	ProtectionStateReprotectInitiated,
	ProtectionStateReprotectFailed,
)

func PossibleProtectionStateValues() []ProtectionState {
	return protectionStates.Values()
}

func (p ProtectionState) IsKnown() bool {
	return protectionStates.IsKnown(p)
}

type TestFailoverState string

const (
	TestFailoverStateNone                         TestFailoverState = "None"
	TestFailoverStateTestFailoverInitiated        TestFailoverState = "TestFailoverInitiated"
	TestFailoverStateTestFailoverCompleting       TestFailoverState = "TestFailoverCompleting"
	TestFailoverStateTestFailoverCompleted        TestFailoverState = "TestFailoverCompleted"
	TestFailoverStateTestFailoverFailed           TestFailoverState = "TestFailoverFailed"
	TestFailoverStateTestFailoverCleanupInitiated TestFailoverState = "TestFailoverCleanupInitiated"
	TestFailoverStateMarkedForDeletion            TestFailoverState = "MarkedForDeletion"
)

var testFailoverStates = arm.NewEnum("TestFailoverState",
	TestFailoverStateNone,
	TestFailoverStateTestFailoverInitiated,
	TestFailoverStateTestFailoverCompleting,
	TestFailoverStateTestFailoverCompleted,
	TestFailoverStateTestFailoverFailed,
	TestFailoverStateTestFailoverCleanupInitiated,
	TestFailoverStateMarkedForDeletion,
)

func PossibleTestFailoverStateValues() []TestFailoverState {
	return testFailoverStates.Values()
}

func (t TestFailoverState) IsKnown() bool {
	return testFailoverStates.IsKnown(t)
}

type ResynchronizationState string

const (
	ResynchronizationStateNone                       ResynchronizationState = "None"
	ResynchronizationStateResynchronizationInitiated ResynchronizationState = "ResynchronizationInitiated"
	ResynchronizationStateResynchronizationCompleted ResynchronizationState = "ResynchronizationCompleted"
	ResynchronizationStateResynchronizationFailed    ResynchronizationState = "ResynchronizationFailed"
)

var resynchronizationStates = arm.NewEnum("ResynchronizationState",
	ResynchronizationStateNone,
	ResynchronizationStateResynchronizationInitiated,
	ResynchronizationStateResynchronizationCompleted,
	ResynchronizationStateResynchronizationFailed,
)

func PossibleResynchronizationStateValues() []ResynchronizationState {
	return resynchronizationStates.Values()
}

func (r ResynchronizationState) IsKnown() bool {
	return resynchronizationStates.IsKnown(r)
}

// WorkflowState is the state of a workflow (job).
type WorkflowState string

const (
	WorkflowStatePending                  WorkflowState = "Pending"
	WorkflowStateStarted                  WorkflowState = "Started"
	WorkflowStateCancelling               WorkflowState = "Cancelling"
	WorkflowStateSucceeded                WorkflowState = "Succeeded"
	WorkflowStateFailed                   WorkflowState = "Failed"
	WorkflowStateCancelled                WorkflowState = "Cancelled"
	WorkflowStateCompletedWithInformation WorkflowState = "CompletedWithInformation"
	WorkflowStateCompletedWithWarnings    WorkflowState = "CompletedWithWarnings"
	WorkflowStateCompletedWithErrors      WorkflowState = "CompletedWithErrors"
)

var workflowStates = arm.NewEnum("WorkflowState",
	WorkflowStatePending,
	WorkflowStateStarted,
	WorkflowStateCancelling,
	WorkflowStateSucceeded,
	WorkflowStateFailed,
	WorkflowStateCancelled,
	WorkflowStateCompletedWithInformation,
	WorkflowStateCompletedWithWarnings,
	WorkflowStateCompletedWithErrors,
)

func PossibleWorkflowStateValues() []WorkflowState {
	return workflowStates.Values()
}

func (w WorkflowState) IsKnown() bool {
	return workflowStates.IsKnown(w)
}

// IsTerminal tells whether a workflow in this state has stopped running.
// Unknown states are never terminal.
func (w WorkflowState) IsTerminal() bool {
	switch w {
	case WorkflowStatePending, WorkflowStateStarted, WorkflowStateCancelling:
		return false
	default:
		return w.IsKnown()
	}
}

// TaskState is the state of a single task of a workflow.
type TaskState string

const (
	TaskStatePending   TaskState = "Pending"
	TaskStateStarted   TaskState = "Started"
	TaskStateSucceeded TaskState = "Succeeded"
	TaskStateFailed    TaskState = "Failed"
	TaskStateCancelled TaskState = "Cancelled"
	TaskStateSkipped   TaskState = "Skipped"
)

var taskStates = arm.NewEnum("TaskState",
	TaskStatePending,
	TaskStateStarted,
	TaskStateSucceeded,
	TaskStateFailed,
	TaskStateCancelled,
	TaskStateSkipped,
)

func PossibleTaskStateValues() []TaskState {
	return taskStates.Values()
}

func (t TaskState) IsKnown() bool {
	return taskStates.IsKnown(t)
}

type WorkflowObjectType string

const (
	WorkflowObjectTypeAvsDiskPool          WorkflowObjectType = "AvsDiskPool"
	WorkflowObjectTypeDra                  WorkflowObjectType = "Dra"
	WorkflowObjectTypeFabric               WorkflowObjectType = "Fabric"
	WorkflowObjectTypePolicy               WorkflowObjectType = "Policy"
	WorkflowObjectTypeProtectedItem        WorkflowObjectType = "ProtectedItem"
	WorkflowObjectTypeRecoveryPlan         WorkflowObjectType = "RecoveryPlan"
	WorkflowObjectTypeReplicationExtension WorkflowObjectType = "ReplicationExtension"
	WorkflowObjectTypeVault                WorkflowObjectType = "Vault"
)

var workflowObjectTypes = arm.NewEnum("WorkflowObjectType",
	WorkflowObjectTypeAvsDiskPool,
	WorkflowObjectTypeDra,
	WorkflowObjectTypeFabric,
	WorkflowObjectTypePolicy,
	WorkflowObjectTypeProtectedItem,
	WorkflowObjectTypeRecoveryPlan,
	WorkflowObjectTypeReplicationExtension,
	WorkflowObjectTypeVault,
)

func PossibleWorkflowObjectTypeValues() []WorkflowObjectType {
	return workflowObjectTypes.Values()
}

func (w WorkflowObjectType) IsKnown() bool {
	return workflowObjectTypes.IsKnown(w)
}

// VMNicSelection tells how a network interface was picked for failover.
type VMNicSelection string

const (
	VMNicSelectionNotSelected            VMNicSelection = "NotSelected"
	VMNicSelectionSelectedByUser         VMNicSelection = "SelectedByUser"
	VMNicSelectionSelectedByDefault      VMNicSelection = "SelectedByDefault"
	VMNicSelectionSelectedByUserOverride VMNicSelection = "SelectedByUserOverride"
)

var vmNicSelections = arm.NewEnum("VMNicSelection",
	VMNicSelectionNotSelected,
	VMNicSelectionSelectedByUser,
	VMNicSelectionSelectedByDefault,
	VMNicSelectionSelectedByUserOverride,
)

func PossibleVMNicSelectionValues() []VMNicSelection {
	return vmNicSelections.Values()
}

func (v VMNicSelection) IsKnown() bool {
	return vmNicSelections.IsKnown(v)
}

// ProtectedItemActiveLocation is the side a protected item is running on.
type ProtectedItemActiveLocation string

const (
	ProtectedItemActiveLocationPrimary  ProtectedItemActiveLocation = "Primary"
	ProtectedItemActiveLocationRecovery ProtectedItemActiveLocation = "Recovery"
)

var protectedItemActiveLocations = arm.NewEnum("ProtectedItemActiveLocation",
	ProtectedItemActiveLocationPrimary,
	ProtectedItemActiveLocationRecovery,
)

func PossibleProtectedItemActiveLocationValues() []ProtectedItemActiveLocation {
	return protectedItemActiveLocations.Values()
}

func (p ProtectedItemActiveLocation) IsKnown() bool {
	return protectedItemActiveLocations.IsKnown(p)
}
