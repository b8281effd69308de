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

const (
	// APIVersion is the version of the Microsoft.DataMigration API these
	// models describe.
	APIVersion string = "2022-03-30-preview"

	ProviderNamespace string = "Microsoft.DataMigration"

	taskTypeField       string = "taskType"
	commandTypeField    string = "commandType"
	connectionTypeField string = "type"
)

// ODataError is an error reported by a task or a command.
type ODataError struct {
	Code    *string      `json:"code,omitempty"`
	Message *string      `json:"message,omitempty"`
	Details []ODataError `json:"details,omitempty"`
}

// ReportableException is an exception raised while a task was validating
// or migrating objects.
type ReportableException struct {
	Message           *string `json:"message,omitempty"`
	ActionableMessage *string `json:"actionableMessage,omitempty"`
	FilePath          *string `json:"filePath,omitempty"`
	LineNumber        *string `json:"lineNumber,omitempty"`
	HResult           *int32  `json:"hResult,omitempty"`
	StackTrace        *string `json:"stackTrace,omitempty"`
}
