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

import verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"

// OperationState is the status of a long running operation.
type OperationState string

const (
	OperationStateInProgress OperationState = "InProgress"
	OperationStateSucceeded  OperationState = "Succeeded"
	OperationStateFailed     OperationState = "Failed"
	OperationStateCanceled   OperationState = "Canceled"
)

var operationStates = NewEnum("OperationState",
	OperationStateInProgress,
	OperationStateSucceeded,
	OperationStateFailed,
	OperationStateCanceled,
)

func PossibleOperationStateValues() []OperationState {
	return operationStates.Values()
}

func (o OperationState) IsKnown() bool {
	return operationStates.IsKnown(o)
}

// OperationStatus is returned by the status URL of a long running
// operation.
type OperationStatus struct {
	ID              *string             `json:"id,omitempty"`
	Name            *string             `json:"name,omitempty"`
	Status          OperationState      `json:"status"`
	PercentComplete *float64            `json:"percentComplete,omitempty"`
	StartTime       *DateTime           `json:"startTime,omitempty"`
	EndTime         *DateTime           `json:"endTime,omitempty"`
	Error           *verrors.CloudError `json:"error,omitempty"`
}

// Finished tells whether the operation reached a terminal state. States the
// client does not know are treated as running.
func (o *OperationStatus) Finished() bool {
	switch o.Status {
	case OperationStateSucceeded, OperationStateFailed, OperationStateCanceled:
		return true
	default:
		return false
	}
}

func (o *OperationStatus) Succeeded() bool {
	return o.Status == OperationStateSucceeded
}
