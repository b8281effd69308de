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

// ServiceProvisioningState is the provisioning state of a migration service.
type ServiceProvisioningState string

const (
	ServiceProvisioningStateAccepted      ServiceProvisioningState = "Accepted"
	ServiceProvisioningStateDeleting      ServiceProvisioningState = "Deleting"
	ServiceProvisioningStateDeploying     ServiceProvisioningState = "Deploying"
	ServiceProvisioningStateStopped       ServiceProvisioningState = "Stopped"
	ServiceProvisioningStateStopping      ServiceProvisioningState = "Stopping"
	ServiceProvisioningStateStarting      ServiceProvisioningState = "Starting"
	ServiceProvisioningStateFailedToStart ServiceProvisioningState = "FailedToStart"
	ServiceProvisioningStateFailedToStop  ServiceProvisioningState = "FailedToStop"
	ServiceProvisioningStateSucceeded     ServiceProvisioningState = "Succeeded"
	ServiceProvisioningStateFailed        ServiceProvisioningState = "Failed"
)

var serviceProvisioningStates = arm.NewEnum("ServiceProvisioningState",
	ServiceProvisioningStateAccepted,
	ServiceProvisioningStateDeleting,
	ServiceProvisioningStateDeploying,
	ServiceProvisioningStateStopped,
	ServiceProvisioningStateStopping,
	ServiceProvisioningStateStarting,
	ServiceProvisioningStateFailedToStart,
	ServiceProvisioningStateFailedToStop,
	ServiceProvisioningStateSucceeded,
	ServiceProvisioningStateFailed,
)

func PossibleServiceProvisioningStateValues() []ServiceProvisioningState {
	return serviceProvisioningStates.Values()
}

func (s ServiceProvisioningState) IsKnown() bool {
	return serviceProvisioningStates.IsKnown(s)
}

// ProjectProvisioningState is the provisioning state of a migration project.
type ProjectProvisioningState string

const (
	ProjectProvisioningStateDeleting  ProjectProvisioningState = "Deleting"
	ProjectProvisioningStateSucceeded ProjectProvisioningState = "Succeeded"
)

var projectProvisioningStates = arm.NewEnum("ProjectProvisioningState",
	ProjectProvisioningStateDeleting,
	ProjectProvisioningStateSucceeded,
)

func PossibleProjectProvisioningStateValues() []ProjectProvisioningState {
	return projectProvisioningStates.Values()
}

func (p ProjectProvisioningState) IsKnown() bool {
	return projectProvisioningStates.IsKnown(p)
}

// TaskState is the state of a migration task.
type TaskState string

const (
	TaskStateUnknown               TaskState = "Unknown"
	TaskStateQueued                TaskState = "Queued"
	TaskStateRunning               TaskState = "Running"
	TaskStateCanceled              TaskState = "Canceled"
	TaskStateSucceeded             TaskState = "Succeeded"
	TaskStateFailed                TaskState = "Failed"
	TaskStateFailedInputValidation TaskState = "FailedInputValidation"
	TaskStateFaulted               TaskState = "Faulted"
)

var taskStates = arm.NewEnum("TaskState",
	TaskStateUnknown,
	TaskStateQueued,
	TaskStateRunning,
	TaskStateCanceled,
	TaskStateSucceeded,
	TaskStateFailed,
	TaskStateFailedInputValidation,
	TaskStateFaulted,
)

func PossibleTaskStateValues() []TaskState {
	return taskStates.Values()
}

func (t TaskState) IsKnown() bool {
	return taskStates.IsKnown(t)
}

type ProjectSourcePlatform string

const (
	ProjectSourcePlatformSQL        ProjectSourcePlatform = "SQL"
	ProjectSourcePlatformMySQL      ProjectSourcePlatform = "MySQL"
	ProjectSourcePlatformPostgreSql ProjectSourcePlatform = "PostgreSql"
	ProjectSourcePlatformMongoDb    ProjectSourcePlatform = "MongoDb"
	ProjectSourcePlatformUnknown    ProjectSourcePlatform = "Unknown"
)

var projectSourcePlatforms = arm.NewEnum("ProjectSourcePlatform",
	ProjectSourcePlatformSQL,
	ProjectSourcePlatformMySQL,
	ProjectSourcePlatformPostgreSql,
	ProjectSourcePlatformMongoDb,
	ProjectSourcePlatformUnknown,
)

func PossibleProjectSourcePlatformValues() []ProjectSourcePlatform {
	return projectSourcePlatforms.Values()
}

func (p ProjectSourcePlatform) IsKnown() bool {
	return projectSourcePlatforms.IsKnown(p)
}

type ProjectTargetPlatform string

const (
	ProjectTargetPlatformSQLDB                ProjectTargetPlatform = "SQLDB"
	ProjectTargetPlatformSQLMI                ProjectTargetPlatform = "SQLMI"
	ProjectTargetPlatformAzureDbForMySql      ProjectTargetPlatform = "AzureDbForMySql"
	ProjectTargetPlatformAzureDbForPostgreSql ProjectTargetPlatform = "AzureDbForPostgreSql"
	ProjectTargetPlatformMongoDb              ProjectTargetPlatform = "MongoDb"
	ProjectTargetPlatformUnknown              ProjectTargetPlatform = "Unknown"
)

var projectTargetPlatforms = arm.NewEnum("ProjectTargetPlatform",
	ProjectTargetPlatformSQLDB,
	ProjectTargetPlatformSQLMI,
	ProjectTargetPlatformAzureDbForMySql,
	ProjectTargetPlatformAzureDbForPostgreSql,
	ProjectTargetPlatformMongoDb,
	ProjectTargetPlatformUnknown,
)

func PossibleProjectTargetPlatformValues() []ProjectTargetPlatform {
	return projectTargetPlatforms.Values()
}

func (p ProjectTargetPlatform) IsKnown() bool {
	return projectTargetPlatforms.IsKnown(p)
}

// ServerLevelPermissionsGroup is the permission set checked on the source server when connecting to it.
type ServerLevelPermissionsGroup string

const (
	ServerLevelPermissionsGroupDefault                             ServerLevelPermissionsGroup = "Default"
	ServerLevelPermissionsGroupMigrationFromSqlServerToAzureDB     ServerLevelPermissionsGroup = "MigrationFromSqlServerToAzureDB"
	ServerLevelPermissionsGroupMigrationFromSqlServerToAzureMI     ServerLevelPermissionsGroup = "MigrationFromSqlServerToAzureMI"
	ServerLevelPermissionsGroupMigrationFromMySQLToAzureDBForMySQL ServerLevelPermissionsGroup = "MigrationFromMySQLToAzureDBForMySQL"
	ServerLevelPermissionsGroupMigrationFromSqlServerToAzureVM     ServerLevelPermissionsGroup = "MigrationFromSqlServerToAzureVM"
)

var serverLevelPermissionsGroups = arm.NewEnum("ServerLevelPermissionsGroup",
	ServerLevelPermissionsGroupDefault,
	ServerLevelPermissionsGroupMigrationFromSqlServerToAzureDB,
	ServerLevelPermissionsGroupMigrationFromSqlServerToAzureMI,
	ServerLevelPermissionsGroupMigrationFromMySQLToAzureDBForMySQL,
	ServerLevelPermissionsGroupMigrationFromSqlServerToAzureVM,
)

func PossibleServerLevelPermissionsGroupValues() []ServerLevelPermissionsGroup {
	return serverLevelPermissionsGroups.Values()
}

func (s ServerLevelPermissionsGroup) IsKnown() bool {
	return serverLevelPermissionsGroups.IsKnown(s)
}

type AuthenticationType string

const (
	AuthenticationTypeNone                      AuthenticationType = "None"
	AuthenticationTypeWindowsAuthentication     AuthenticationType = "WindowsAuthentication"
	AuthenticationTypeSqlAuthentication         AuthenticationType = "SqlAuthentication"
	AuthenticationTypeActiveDirectoryIntegrated AuthenticationType = "ActiveDirectoryIntegrated"
	AuthenticationTypeActiveDirectoryPassword   AuthenticationType = "ActiveDirectoryPassword"
)

var authenticationTypes = arm.NewEnum("AuthenticationType",
	AuthenticationTypeNone,
	AuthenticationTypeWindowsAuthentication,
	AuthenticationTypeSqlAuthentication,
	AuthenticationTypeActiveDirectoryIntegrated,
	AuthenticationTypeActiveDirectoryPassword,
)

func PossibleAuthenticationTypeValues() []AuthenticationType {
	return authenticationTypes.Values()
}

func (a AuthenticationType) IsKnown() bool {
	return authenticationTypes.IsKnown(a)
}

// MigrationState is the state of a single migrated object.
type MigrationState string

const (
	MigrationStateNone       MigrationState = "None"
	MigrationStateInProgress MigrationState = "InProgress"
	MigrationStateFailed     MigrationState = "Failed"
	MigrationStateWarning    MigrationState = "Warning"
	MigrationStateCompleted  MigrationState = "Completed"
	MigrationStateSkipped    MigrationState = "Skipped"
	MigrationStateStopped    MigrationState = "Stopped"
)

var migrationStates = arm.NewEnum("MigrationState",
	MigrationStateNone,
	MigrationStateInProgress,
	MigrationStateFailed,
	MigrationStateWarning,
	MigrationStateCompleted,
	MigrationStateSkipped,
	MigrationStateStopped,
)

func PossibleMigrationStateValues() []MigrationState {
	return migrationStates.Values()
}

func (m MigrationState) IsKnown() bool {
	return migrationStates.IsKnown(m)
}

// CommandState is the state of a command issued to a running task.
type CommandState string

const (
	CommandStateUnknown   CommandState = "Unknown"
	CommandStateAccepted  CommandState = "Accepted"
	CommandStateRunning   CommandState = "Running"
	CommandStateSucceeded CommandState = "Succeeded"
	CommandStateFailed    CommandState = "Failed"
)

var commandStates = arm.NewEnum("CommandState",
	CommandStateUnknown,
	CommandStateAccepted,
	CommandStateRunning,
	CommandStateSucceeded,
	CommandStateFailed,
)

func PossibleCommandStateValues() []CommandState {
	return commandStates.Values()
}

func (c CommandState) IsKnown() bool {
	return commandStates.IsKnown(c)
}
// IsTerminal tells whether a task in this state will not run again.
func (t TaskState) IsTerminal() bool {
	switch t {
	case TaskStateCanceled, TaskStateSucceeded, TaskStateFailed,
		TaskStateFailedInputValidation, TaskStateFaulted:
		return true
	default:
		return false
	}
}
