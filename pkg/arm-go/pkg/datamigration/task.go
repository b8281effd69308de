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

import (
	"encoding/json"

	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

// ProjectTask is a unit of work run by a migration service in a project.
// Its properties are a union selected by their taskType.
type ProjectTask struct {
	arm.Resource
	Etag       *string               `json:"etag,omitempty"`
	Properties ProjectTaskProperties `json:"properties,omitempty"`
}

func (t ProjectTask) MarshalJSON() ([]byte, error) {
	type alias ProjectTask

	properties, err := taskProperties.EncodeField("ProjectTask", "properties", t.Properties, false)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		Properties json.RawMessage `json:"properties,omitempty"`
	}{alias(t), properties})
}

func (t *ProjectTask) UnmarshalJSON(data []byte) error {
	type alias ProjectTask

	aux := struct {
		*alias
		Properties json.RawMessage `json:"properties"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	properties, err := taskProperties.DecodeField("ProjectTask", "properties", aux.Properties, false)
	if err != nil {
		return err
	}

	t.Properties = properties
	return nil
}

// ValidateForCreate fails when the task cannot be sent as the body of a
// create request.
func (t *ProjectTask) ValidateForCreate() error {
	if t.Properties == nil {
		return verrors.ErrorNoPropertiesProvided
	}

	return nil
}

// ProjectTaskProperties are the properties of a task. Every variant embeds
// ProjectTaskCommon.
type ProjectTaskProperties interface {
	arm.Variant
	GetProjectTaskCommon() *ProjectTaskCommon
}

var taskProperties = arm.NewUnion[ProjectTaskProperties]("ProjectTaskProperties", taskTypeField).
	Register(func() ProjectTaskProperties { return &ConnectToSourceSQLServerTaskProperties{} }).
	Register(func() ProjectTaskProperties { return &ConnectToTargetSQLDbTaskProperties{} }).
	Register(func() ProjectTaskProperties { return &GetUserTablesSQLTaskProperties{} }).
	Register(func() ProjectTaskProperties { return &MigrateSQLServerSQLDbTaskProperties{} })

// PossibleProjectTaskTypes returns the task types a task can be decoded
// into.
func PossibleProjectTaskTypes() []string {
	return taskProperties.Tags()
}

// ProjectTaskCommon holds the fields every task has, whatever its type.
type ProjectTaskCommon struct {
	State      *TaskState        `json:"state,omitempty"`
	Errors     []ODataError      `json:"errors,omitempty"`
	Commands   CommandList       `json:"commands,omitempty"`
	ClientData map[string]string `json:"clientData,omitempty"`
}

func (c *ProjectTaskCommon) GetProjectTaskCommon() *ProjectTaskCommon {
	return c
}

// CommandProperties are the properties of a command issued to a running
// task, selected by their commandType.
type CommandProperties interface {
	arm.Variant
	GetCommandCommon() *CommandCommon
}

var commandProperties = arm.NewUnion[CommandProperties]("CommandProperties", commandTypeField).
	Register(func() CommandProperties { return &MigrateSyncCompleteCommandProperties{} }).
	Register(func() CommandProperties { return &MongoDBCancelCommand{} })

// CommandCommon holds the fields every command has.
type CommandCommon struct {
	Errors []ODataError  `json:"errors,omitempty"`
	State  *CommandState `json:"state,omitempty"`
}

func (c *CommandCommon) GetCommandCommon() *CommandCommon {
	return c
}

// CommandList is a list of commands of mixed types.
type CommandList []CommandProperties

func (l CommandList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}

	items := make([]json.RawMessage, 0, len(l))
	for _, command := range l {
		encoded, err := commandProperties.Encode(command)
		if err != nil {
			return nil, err
		}
		items = append(items, encoded)
	}

	return json.Marshal(items)
}

func (l *CommandList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	if items == nil {
		*l = nil
		return nil
	}

	commands := make(CommandList, 0, len(items))
	for _, item := range items {
		command, err := commandProperties.Decode(item)
		if err != nil {
			return err
		}
		commands = append(commands, command)
	}

	*l = commands
	return nil
}

// MigrateSyncCompleteCommandProperties completes the online migration of a
// database.
type MigrateSyncCompleteCommandProperties struct {
	CommandCommon
	Input     *MigrateSyncCompleteCommandInput  `json:"input,omitempty"`
	Output    *MigrateSyncCompleteCommandOutput `json:"output,omitempty"`
	CommandID *string                           `json:"commandId,omitempty"`
}

func (MigrateSyncCompleteCommandProperties) Discriminator() string {
	return "Migrate.Sync.Complete.Database"
}

type MigrateSyncCompleteCommandInput struct {
	DatabaseName    string        `json:"databaseName"`
	CommitTimeStamp *arm.DateTime `json:"commitTimeStamp,omitempty"`
}

func (m *MigrateSyncCompleteCommandInput) UnmarshalJSON(data []byte) error {
	type alias MigrateSyncCompleteCommandInput
	return arm.DecodeObject("MigrateSyncCompleteCommandInput", data, (*alias)(m))
}

type MigrateSyncCompleteCommandOutput struct {
	ID     *string               `json:"id,omitempty"`
	Errors []ReportableException `json:"errors,omitempty"`
}

// MongoDBCancelCommand cancels the migration of a MongoDB object.
type MongoDBCancelCommand struct {
	CommandCommon
	Input *MongoDBCommandInput `json:"input,omitempty"`
}

func (MongoDBCancelCommand) Discriminator() string {
	return "cancel"
}

type MongoDBCommandInput struct {
	ObjectName *string `json:"objectName,omitempty"`
}
