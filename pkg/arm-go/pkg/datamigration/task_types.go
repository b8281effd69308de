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
)

// ConnectToSourceSQLServerTaskProperties validates the connection to a SQL
// Server source and collects what can be migrated from it.
type ConnectToSourceSQLServerTaskProperties struct {
	ProjectTaskCommon
	Input  *ConnectToSourceSQLServerTaskInput   `json:"input,omitempty"`
	Output []ConnectToSourceSQLServerTaskOutput `json:"output,omitempty"`
	TaskID *string                              `json:"taskId,omitempty"`
}

func (ConnectToSourceSQLServerTaskProperties) Discriminator() string {
	return "ConnectToSource.SqlServer"
}

type ConnectToSourceSQLServerTaskInput struct {
	SourceConnectionInfo        ConnectionInfo               `json:"sourceConnectionInfo"`
	CheckPermissionsGroup       *ServerLevelPermissionsGroup `json:"checkPermissionsGroup,omitempty"`
	CollectDatabases            *bool                        `json:"collectDatabases,omitempty"`
	CollectLogins               *bool                        `json:"collectLogins,omitempty"`
	CollectAgentJobs            *bool                        `json:"collectAgentJobs,omitempty"`
	CollectTdeCertificateInfo   *bool                        `json:"collectTdeCertificateInfo,omitempty"`
	ValidateSsisCatalogOnly     *bool                        `json:"validateSsisCatalogOnly,omitempty"`
	EncryptedKeyForSecureFields *string                      `json:"encryptedKeyForSecureFields,omitempty"`
}

func (i ConnectToSourceSQLServerTaskInput) MarshalJSON() ([]byte, error) {
	type alias ConnectToSourceSQLServerTaskInput

	source, err := connectionInfos.EncodeField("ConnectToSourceSqlServerTaskInput", "sourceConnectionInfo", i.SourceConnectionInfo, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		SourceConnectionInfo json.RawMessage `json:"sourceConnectionInfo"`
	}{alias(i), source})
}

func (i *ConnectToSourceSQLServerTaskInput) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("ConnectToSourceSqlServerTaskInput", data, i); err != nil {
		return err
	}

	type alias ConnectToSourceSQLServerTaskInput

	aux := struct {
		*alias
		SourceConnectionInfo json.RawMessage `json:"sourceConnectionInfo"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	source, err := connectionInfos.DecodeField("ConnectToSourceSqlServerTaskInput", "sourceConnectionInfo", aux.SourceConnectionInfo, true)
	if err != nil {
		return err
	}

	i.SourceConnectionInfo = source
	return nil
}

// ConnectToSourceSQLServerTaskOutput is one entry of the output of a
// connection to a source. The result type tells which fields are set.
type ConnectToSourceSQLServerTaskOutput struct {
	ID                       *string               `json:"id,omitempty"`
	ResultType               *string               `json:"resultType,omitempty"`
	Databases                map[string]string     `json:"databases,omitempty"`
	Logins                   map[string]string     `json:"logins,omitempty"`
	AgentJobs                map[string]string     `json:"agentJobs,omitempty"`
	SourceServerVersion      *string               `json:"sourceServerVersion,omitempty"`
	SourceServerBrandVersion *string               `json:"sourceServerBrandVersion,omitempty"`
	Name                     *string               `json:"name,omitempty"`
	SizeMB                   *float64              `json:"sizeMB,omitempty"`
	ValidationErrors         []ReportableException `json:"validationErrors,omitempty"`
}

// ConnectToTargetSQLDbTaskProperties validates the connection to an Azure
// SQL Database target.
type ConnectToTargetSQLDbTaskProperties struct {
	ProjectTaskCommon
	Input     *ConnectToTargetSQLDbTaskInput   `json:"input,omitempty"`
	Output    []ConnectToTargetSQLDbTaskOutput `json:"output,omitempty"`
	CreatedOn *string                          `json:"createdOn,omitempty"`
}

func (ConnectToTargetSQLDbTaskProperties) Discriminator() string {
	return "ConnectToTarget.SqlDb"
}

type ConnectToTargetSQLDbTaskInput struct {
	TargetConnectionInfo ConnectionInfo `json:"targetConnectionInfo"`
	QueryObjectCounts    *bool          `json:"queryObjectCounts,omitempty"`
}

func (i ConnectToTargetSQLDbTaskInput) MarshalJSON() ([]byte, error) {
	type alias ConnectToTargetSQLDbTaskInput

	target, err := connectionInfos.EncodeField("ConnectToTargetSqlDbTaskInput", "targetConnectionInfo", i.TargetConnectionInfo, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		TargetConnectionInfo json.RawMessage `json:"targetConnectionInfo"`
	}{alias(i), target})
}

func (i *ConnectToTargetSQLDbTaskInput) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("ConnectToTargetSqlDbTaskInput", data, i); err != nil {
		return err
	}

	type alias ConnectToTargetSQLDbTaskInput

	aux := struct {
		*alias
		TargetConnectionInfo json.RawMessage `json:"targetConnectionInfo"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	target, err := connectionInfos.DecodeField("ConnectToTargetSqlDbTaskInput", "targetConnectionInfo", aux.TargetConnectionInfo, true)
	if err != nil {
		return err
	}

	i.TargetConnectionInfo = target
	return nil
}

type ConnectToTargetSQLDbTaskOutput struct {
	ID                       *string           `json:"id,omitempty"`
	Databases                map[string]string `json:"databases,omitempty"`
	TargetServerVersion      *string           `json:"targetServerVersion,omitempty"`
	TargetServerBrandVersion *string           `json:"targetServerBrandVersion,omitempty"`
}

// GetUserTablesSQLTaskProperties lists the user tables of the selected
// databases of a server.
type GetUserTablesSQLTaskProperties struct {
	ProjectTaskCommon
	Input  *GetUserTablesSQLTaskInput   `json:"input,omitempty"`
	Output []GetUserTablesSQLTaskOutput `json:"output,omitempty"`
	TaskID *string                      `json:"taskId,omitempty"`
}

func (GetUserTablesSQLTaskProperties) Discriminator() string {
	return "GetUserTables.Sql"
}

type GetUserTablesSQLTaskInput struct {
	ConnectionInfo              ConnectionInfo `json:"connectionInfo"`
	SelectedDatabases           []string       `json:"selectedDatabases"`
	EncryptedKeyForSecureFields *string        `json:"encryptedKeyForSecureFields,omitempty"`
}

func (i GetUserTablesSQLTaskInput) MarshalJSON() ([]byte, error) {
	type alias GetUserTablesSQLTaskInput

	connection, err := connectionInfos.EncodeField("GetUserTablesSqlTaskInput", "connectionInfo", i.ConnectionInfo, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		ConnectionInfo json.RawMessage `json:"connectionInfo"`
	}{alias(i), connection})
}

func (i *GetUserTablesSQLTaskInput) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("GetUserTablesSqlTaskInput", data, i); err != nil {
		return err
	}

	type alias GetUserTablesSQLTaskInput

	aux := struct {
		*alias
		ConnectionInfo json.RawMessage `json:"connectionInfo"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	connection, err := connectionInfos.DecodeField("GetUserTablesSqlTaskInput", "connectionInfo", aux.ConnectionInfo, true)
	if err != nil {
		return err
	}

	i.ConnectionInfo = connection
	return nil
}

type GetUserTablesSQLTaskOutput struct {
	ID                *string                    `json:"id,omitempty"`
	DatabasesToTables map[string][]DatabaseTable `json:"databasesToTables,omitempty"`
	ValidationErrors  []ReportableException      `json:"validationErrors,omitempty"`
}

type DatabaseTable struct {
	HasRows *bool   `json:"hasRows,omitempty"`
	Name    *string `json:"name,omitempty"`
}

// MigrateSQLServerSQLDbTaskProperties migrates databases from SQL Server to
// Azure SQL Database.
type MigrateSQLServerSQLDbTaskProperties struct {
	ProjectTaskCommon
	Input       *MigrateSQLServerSQLDbTaskInput   `json:"input,omitempty"`
	Output      []MigrateSQLServerSQLDbTaskOutput `json:"output,omitempty"`
	TaskID      *string                           `json:"taskId,omitempty"`
	IsCloneable *bool                             `json:"isCloneable,omitempty"`
	CreatedOn   *string                           `json:"createdOn,omitempty"`
}

func (MigrateSQLServerSQLDbTaskProperties) Discriminator() string {
	return "Migrate.SqlServer.SqlDb"
}

type MigrateSQLServerSQLDbTaskInput struct {
	SourceConnectionInfo        ConnectionInfo                       `json:"sourceConnectionInfo"`
	TargetConnectionInfo        ConnectionInfo                       `json:"targetConnectionInfo"`
	SelectedDatabases           []MigrateSQLServerSQLDbDatabaseInput `json:"selectedDatabases"`
	ValidationOptions           *MigrationValidationOptions          `json:"validationOptions,omitempty"`
	StartedOn                   *string                              `json:"startedOn,omitempty"`
	EncryptedKeyForSecureFields *string                              `json:"encryptedKeyForSecureFields,omitempty"`
}

func (i MigrateSQLServerSQLDbTaskInput) MarshalJSON() ([]byte, error) {
	type alias MigrateSQLServerSQLDbTaskInput

	source, err := connectionInfos.EncodeField("MigrateSqlServerSqlDbTaskInput", "sourceConnectionInfo", i.SourceConnectionInfo, true)
	if err != nil {
		return nil, err
	}

	target, err := connectionInfos.EncodeField("MigrateSqlServerSqlDbTaskInput", "targetConnectionInfo", i.TargetConnectionInfo, true)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		SourceConnectionInfo json.RawMessage `json:"sourceConnectionInfo"`
		TargetConnectionInfo json.RawMessage `json:"targetConnectionInfo"`
	}{alias(i), source, target})
}

func (i *MigrateSQLServerSQLDbTaskInput) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("MigrateSqlServerSqlDbTaskInput", data, i); err != nil {
		return err
	}

	type alias MigrateSQLServerSQLDbTaskInput

	aux := struct {
		*alias
		SourceConnectionInfo json.RawMessage `json:"sourceConnectionInfo"`
		TargetConnectionInfo json.RawMessage `json:"targetConnectionInfo"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	source, err := connectionInfos.DecodeField("MigrateSqlServerSqlDbTaskInput", "sourceConnectionInfo", aux.SourceConnectionInfo, true)
	if err != nil {
		return err
	}

	target, err := connectionInfos.DecodeField("MigrateSqlServerSqlDbTaskInput", "targetConnectionInfo", aux.TargetConnectionInfo, true)
	if err != nil {
		return err
	}

	i.SourceConnectionInfo, i.TargetConnectionInfo = source, target
	return nil
}

type MigrateSQLServerSQLDbDatabaseInput struct {
	Name                 *string           `json:"name,omitempty"`
	TargetDatabaseName   *string           `json:"targetDatabaseName,omitempty"`
	MakeSourceDbReadOnly *bool             `json:"makeSourceDbReadOnly,omitempty"`
	TableMap             map[string]string `json:"tableMap,omitempty"`
}

type MigrationValidationOptions struct {
	EnableSchemaValidation        *bool `json:"enableSchemaValidation,omitempty"`
	EnableDataIntegrityValidation *bool `json:"enableDataIntegrityValidation,omitempty"`
	EnableQueryAnalysisValidation *bool `json:"enableQueryAnalysisValidation,omitempty"`
}

// MigrateSQLServerSQLDbTaskOutput is one entry of the output of a
// migration: the migration as a whole, one database, one table or an error,
// depending on the result type.
type MigrateSQLServerSQLDbTaskOutput struct {
	ID                    *string               `json:"id,omitempty"`
	ResultType            *string               `json:"resultType,omitempty"`
	State                 *MigrationState       `json:"state,omitempty"`
	DatabaseName          *string               `json:"databaseName,omitempty"`
	ObjectName            *string               `json:"objectName,omitempty"`
	StartedOn             *arm.DateTime         `json:"startedOn,omitempty"`
	EndedOn               *arm.DateTime         `json:"endedOn,omitempty"`
	ItemsCount            *int64                `json:"itemsCount,omitempty"`
	ItemsCompletedCount   *int64                `json:"itemsCompletedCount,omitempty"`
	ErrorCount            *int64                `json:"errorCount,omitempty"`
	Message               *string               `json:"message,omitempty"`
	ExceptionsAndWarnings []ReportableException `json:"exceptionsAndWarnings,omitempty"`
}
