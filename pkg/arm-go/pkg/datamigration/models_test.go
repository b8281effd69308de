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

package datamigration_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datamigration"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/ptr"
)

const taskJSON = `{
	"id": "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataMigration/services/dms/projects/p1/tasks/t1",
	"name": "t1",
	"type": "Microsoft.DataMigration/services/projects/tasks",
	"etag": "W/\"1\"",
	"properties": {
		"taskType": "Migrate.SqlServer.SqlDb",
		"state": "Running",
		"clientData": {"owner": "ops"},
		"commands": [
			{"commandType": "Migrate.Sync.Complete.Database", "state": "Accepted", "input": {"databaseName": "db1"}},
			{"commandType": "cancel", "state": "Hibernating", "input": {"objectName": "coll"}}
		],
		"input": {
			"sourceConnectionInfo": {"type": "SqlConnectionInfo", "dataSource": "onprem", "authentication": "SqlAuthentication", "userName": "sa"},
			"targetConnectionInfo": {"type": "SqlConnectionInfo", "dataSource": "db.database.windows.net", "authentication": "CertificateAuthentication"},
			"selectedDatabases": [{"name": "db1", "targetDatabaseName": "db1", "tableMap": {"dbo.t": "dbo.t"}}]
		},
		"output": [
			{"id": "o1", "resultType": "MigrationLevelOutput", "state": "InProgress"},
			{"id": "o2", "resultType": "DatabaseLevelOutput", "state": "Paused", "databaseName": "db1"}
		]
	}
}`

func TestProjectTaskDecode(t *testing.T) {
	var task datamigration.ProjectTask
	require.NoError(t, json.Unmarshal([]byte(taskJSON), &task))

	assert.Equal(t, "t1", ptr.ToString(task.Name))
	assert.Equal(t, `W/"1"`, ptr.ToString(task.Etag))

	migrate, ok := task.Properties.(*datamigration.MigrateSQLServerSQLDbTaskProperties)
	require.True(t, ok)

	common := task.Properties.GetProjectTaskCommon()
	require.NotNil(t, common.State)
	assert.Equal(t, datamigration.TaskStateRunning, *common.State)
	assert.False(t, common.State.IsTerminal())
	assert.Equal(t, map[string]string{"owner": "ops"}, common.ClientData)

	require.Len(t, migrate.Commands, 2)
	complete, ok := migrate.Commands[0].(*datamigration.MigrateSyncCompleteCommandProperties)
	require.True(t, ok)
	assert.Equal(t, "db1", complete.Input.DatabaseName)
	assert.Equal(t, datamigration.CommandStateAccepted, *complete.GetCommandCommon().State)
	assert.IsType(t, &datamigration.MongoDBCancelCommand{}, migrate.Commands[1])

	source, ok := migrate.Input.SourceConnectionInfo.(*datamigration.SQLConnectionInfo)
	require.True(t, ok)
	assert.Equal(t, "onprem", source.DataSource)
	user, password := source.Credentials()
	assert.Equal(t, "sa", ptr.ToString(user))
	assert.Nil(t, password)

	require.Len(t, migrate.Output, 2)
	assert.Equal(t, datamigration.MigrationStateInProgress, *migrate.Output[0].State)

	findings := arm.Audit(task)
	assert.Equal(t, []arm.Finding{
		{Path: "$.properties.commands[1].state", Enum: "CommandState", Value: "Hibernating"},
		{Path: "$.properties.input.targetConnectionInfo.authentication", Enum: "AuthenticationType", Value: "CertificateAuthentication"},
		{Path: "$.properties.output[1].state", Enum: "MigrationState", Value: "Paused"},
	}, findings)
}

func TestProjectTaskRoundTrip(t *testing.T) {
	var task datamigration.ProjectTask
	require.NoError(t, json.Unmarshal([]byte(taskJSON), &task))

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, taskJSON, string(data))
}

func TestProjectTaskVariantsRoundTrip(t *testing.T) {
	sqlSource := &datamigration.SQLConnectionInfo{
		ConnectionCredentials: datamigration.ConnectionCredentials{UserName: ptr.String("sa"), Password: ptr.String("secret")},
		DataSource:            "onprem",
		Authentication:        ptr.To(datamigration.AuthenticationTypeSqlAuthentication),
		EncryptConnection:     ptr.Bool(true),
	}

	cases := []datamigration.ProjectTaskProperties{
		&datamigration.ConnectToSourceSQLServerTaskProperties{
			ProjectTaskCommon: datamigration.ProjectTaskCommon{State: ptr.To(datamigration.TaskStateQueued)},
			Input: &datamigration.ConnectToSourceSQLServerTaskInput{
				SourceConnectionInfo:  sqlSource,
				CheckPermissionsGroup: ptr.To(datamigration.ServerLevelPermissionsGroupMigrationFromSqlServerToAzureDB),
				CollectLogins:         ptr.Bool(true),
			},
			Output: []datamigration.ConnectToSourceSQLServerTaskOutput{
				{ID: ptr.String("o1"), Databases: map[string]string{"db1": "{}"}},
			},
		},
		&datamigration.ConnectToTargetSQLDbTaskProperties{
			Input: &datamigration.ConnectToTargetSQLDbTaskInput{
				TargetConnectionInfo: &datamigration.SQLConnectionInfo{DataSource: "target"},
				QueryObjectCounts:    ptr.Bool(false),
			},
		},
		&datamigration.GetUserTablesSQLTaskProperties{
			ProjectTaskCommon: datamigration.ProjectTaskCommon{
				Errors: []datamigration.ODataError{{Code: ptr.String("Timeout"), Message: ptr.String("took too long")}},
			},
			Input: &datamigration.GetUserTablesSQLTaskInput{
				ConnectionInfo:    sqlSource,
				SelectedDatabases: []string{"db1", "db2"},
			},
			Output: []datamigration.GetUserTablesSQLTaskOutput{
				{DatabasesToTables: map[string][]datamigration.DatabaseTable{"db1": {{Name: ptr.String("dbo.t"), HasRows: ptr.Bool(true)}}}},
			},
		},
		&datamigration.MigrateSQLServerSQLDbTaskProperties{
			ProjectTaskCommon: datamigration.ProjectTaskCommon{
				Commands: datamigration.CommandList{
					&datamigration.MigrateSyncCompleteCommandProperties{
						Input: &datamigration.MigrateSyncCompleteCommandInput{DatabaseName: "db1"},
					},
				},
			},
			Input: &datamigration.MigrateSQLServerSQLDbTaskInput{
				SourceConnectionInfo: sqlSource,
				TargetConnectionInfo: &datamigration.SQLConnectionInfo{DataSource: "target"},
				SelectedDatabases: []datamigration.MigrateSQLServerSQLDbDatabaseInput{
					{Name: ptr.String("db1"), MakeSourceDbReadOnly: ptr.Bool(false)},
				},
				ValidationOptions: &datamigration.MigrationValidationOptions{EnableSchemaValidation: ptr.Bool(true)},
			},
			IsCloneable: ptr.Bool(true),
		},
	}

	for _, c := range cases {
		t.Run(c.Discriminator(), func(t *testing.T) {
			task := datamigration.ProjectTask{
				Resource:   arm.Resource{Name: ptr.String("t1")},
				Properties: c,
			}
			require.NoError(t, task.ValidateForCreate())

			data, err := json.Marshal(task)
			require.NoError(t, err)

			var decoded datamigration.ProjectTask
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, task, decoded)
		})
	}
}

func TestProjectTaskErrors(t *testing.T) {
	var task datamigration.ProjectTask
	err := json.Unmarshal([]byte(`{"properties":{"taskType":"Migrate.Oracle.AzureDbForPostgreSql"}}`), &task)
	assert.ErrorIs(t, err, verrors.ErrorUnknownDiscriminator)

	err = json.Unmarshal([]byte(`{"properties":{"state":"Queued"}}`), &task)
	assert.ErrorIs(t, err, verrors.ErrorMissingDiscriminator)

	err = json.Unmarshal([]byte(`{"properties":{"taskType":"GetUserTables.Sql","input":{"selectedDatabases":[]}}}`), &task)
	assert.ErrorIs(t, err, verrors.ErrorMissingField)

	err = json.Unmarshal([]byte(`{"properties":{"taskType":"GetUserTables.Sql","commands":[{"commandType":"restart"}]}}`), &task)
	assert.ErrorIs(t, err, verrors.ErrorUnknownDiscriminator)

	task = datamigration.ProjectTask{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"t1"}`), &task))
	assert.Nil(t, task.Properties)
	assert.ErrorIs(t, task.ValidateForCreate(), verrors.ErrorNoPropertiesProvided)

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"t1"}`, string(data))
}

func TestServiceAndProject(t *testing.T) {
	var service datamigration.Service
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.DataMigration/services/dms",
		"location": "westeurope",
		"kind": "Cloud",
		"sku": {"name": "Premium_4vCores", "tier": "Premium"},
		"properties": {"provisioningState": "Succeeded", "virtualSubnetId": "subnet"}
	}`), &service))
	assert.True(t, service.IsRunning())
	assert.Equal(t, "westeurope", ptr.ToString(service.Location))
	assert.Equal(t, "Premium", ptr.ToString(service.SKU.Tier))
	require.NoError(t, service.ValidateForCreate())

	project := datamigration.Project{
		TrackedEnvelope: arm.TrackedEnvelope[datamigration.ProjectProperties]{
			TrackedResource: arm.TrackedResource{Location: ptr.String("westeurope")},
			Properties: &datamigration.ProjectProperties{
				SourcePlatform: datamigration.ProjectSourcePlatformSQL,
				TargetPlatform: datamigration.ProjectTargetPlatformSQLDB,
				SourceConnectionInfo: &datamigration.PostgreSQLConnectionInfo{
					ServerName: "pg",
					Port:       5432,
				},
				DatabasesInfo: []datamigration.DatabaseInfo{{SourceDatabaseName: "db1"}},
			},
		},
	}

	data, err := json.Marshal(project)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"location": "westeurope",
		"properties": {
			"sourcePlatform": "SQL",
			"targetPlatform": "SQLDB",
			"sourceConnectionInfo": {"type": "PostgreSqlConnectionInfo", "serverName": "pg", "port": 5432},
			"databasesInfo": [{"sourceDatabaseName": "db1"}]
		}
	}`, string(data))

	var decoded datamigration.Project
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, project, decoded)
}

func TestDataMigrationEnumsAreOpen(t *testing.T) {
	var state datamigration.ServiceProvisioningState
	require.NoError(t, json.Unmarshal([]byte(`"Hibernated"`), &state))
	assert.False(t, state.IsKnown())

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Equal(t, `"Hibernated"`, string(data))

	for _, v := range datamigration.PossibleTaskStateValues() {
		assert.True(t, v.IsKnown())
	}
	assert.Equal(t, []string{"ConnectToSource.SqlServer", "ConnectToTarget.SqlDb", "GetUserTables.Sql", "Migrate.SqlServer.SqlDb"}, datamigration.PossibleProjectTaskTypes())
}

func TestRequiredFieldsMissing(t *testing.T) {
	cases := []struct {
		name   string
		target any
		data   string
		object string
		field  string
	}{
		{
			name:   "project without source platform",
			target: &datamigration.Project{},
			data:   `{"location":"westeurope","properties":{"targetPlatform":"SQLDB"}}`,
			object: "ProjectProperties",
			field:  "sourcePlatform",
		},
		{
			name:   "database info without name",
			target: &datamigration.ProjectProperties{},
			data:   `{"sourcePlatform":"SQL","targetPlatform":"SQLDB","databasesInfo":[{}]}`,
			object: "DatabaseInfo",
			field:  "sourceDatabaseName",
		},
		{
			name:   "sql connection without data source",
			target: &datamigration.ProjectProperties{},
			data:   `{"sourcePlatform":"SQL","targetPlatform":"SQLDB","sourceConnectionInfo":{"type":"SqlConnectionInfo","userName":"sa"}}`,
			object: "SQLConnectionInfo",
			field:  "dataSource",
		},
		{
			name:   "postgresql connection without port",
			target: &datamigration.ProjectProperties{},
			data:   `{"sourcePlatform":"Unknown","targetPlatform":"Unknown","sourceConnectionInfo":{"type":"PostgreSqlConnectionInfo","serverName":"pg"}}`,
			object: "PostgreSQLConnectionInfo",
			field:  "port",
		},
		{
			name:   "task input without selected databases",
			target: &datamigration.ProjectTask{},
			data:   `{"properties":{"taskType":"GetUserTables.Sql","input":{"connectionInfo":{"type":"SqlConnectionInfo","dataSource":"onprem"}}}}`,
			object: "GetUserTablesSqlTaskInput",
			field:  "selectedDatabases",
		},
		{
			name:   "sync complete command without database",
			target: &datamigration.ProjectTask{},
			data:   `{"properties":{"taskType":"GetUserTables.Sql","commands":[{"commandType":"Migrate.Sync.Complete.Database","input":{}}]}}`,
			object: "MigrateSyncCompleteCommandInput",
			field:  "databaseName",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(c.data), c.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, verrors.ErrorMissingField)

			var fieldErr *verrors.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, c.object, fieldErr.Object)
			assert.Equal(t, c.field, fieldErr.Field)
		})
	}
}

func TestEncodeWithoutRequiredConnection(t *testing.T) {
	task := datamigration.ProjectTask{
		Properties: &datamigration.ConnectToSourceSQLServerTaskProperties{
			Input: &datamigration.ConnectToSourceSQLServerTaskInput{CollectLogins: ptr.Bool(true)},
		},
	}
	_, err := json.Marshal(task)
	require.Error(t, err)

	var fieldErr *verrors.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "sourceConnectionInfo", fieldErr.Field)

	_, err = json.Marshal(datamigration.MigrateSQLServerSQLDbTaskInput{
		SourceConnectionInfo: &datamigration.SQLConnectionInfo{DataSource: "onprem"},
		SelectedDatabases:    []datamigration.MigrateSQLServerSQLDbDatabaseInput{},
	})
	assert.ErrorIs(t, err, verrors.ErrorMissingField)

	data, err := json.Marshal(datamigration.ProjectProperties{
		SourcePlatform: datamigration.ProjectSourcePlatformSQL,
		TargetPlatform: datamigration.ProjectTargetPlatformSQLDB,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sourcePlatform":"SQL","targetPlatform":"SQLDB"}`, string(data))
}
