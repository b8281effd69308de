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

// ConnectionInfo tells how to reach a source or target server. The
// concrete shape is selected by the type field.
type ConnectionInfo interface {
	arm.Variant
	Credentials() (userName, password *string)
}

var connectionInfos = arm.NewUnion[ConnectionInfo]("ConnectionInfo", connectionTypeField).
	Register(func() ConnectionInfo { return &SQLConnectionInfo{} }).
	Register(func() ConnectionInfo { return &MySQLConnectionInfo{} }).
	Register(func() ConnectionInfo { return &PostgreSQLConnectionInfo{} })

func PossibleConnectionInfoTypes() []string {
	return connectionInfos.Tags()
}

// ConnectionCredentials are the credentials shared by every connection.
type ConnectionCredentials struct {
	UserName *string `json:"userName,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (c ConnectionCredentials) Credentials() (*string, *string) {
	return c.UserName, c.Password
}

// SQLConnectionInfo is a connection to a SQL Server instance.
type SQLConnectionInfo struct {
	ConnectionCredentials
	DataSource             string              `json:"dataSource"`
	ServerName             *string             `json:"serverName,omitempty"`
	Port                   *int32              `json:"port,omitempty"`
	ServerVersion          *string             `json:"serverVersion,omitempty"`
	ServerBrandVersion     *string             `json:"serverBrandVersion,omitempty"`
	ResourceID             *string             `json:"resourceId,omitempty"`
	Authentication         *AuthenticationType `json:"authentication,omitempty"`
	EncryptConnection      *bool               `json:"encryptConnection,omitempty"`
	AdditionalSettings     *string             `json:"additionalSettings,omitempty"`
	TrustServerCertificate *bool               `json:"trustServerCertificate,omitempty"`
	Platform               *string             `json:"platform,omitempty"`
}

func (s *SQLConnectionInfo) UnmarshalJSON(data []byte) error {
	type alias SQLConnectionInfo
	return arm.DecodeObject("SQLConnectionInfo", data, (*alias)(s))
}

func (SQLConnectionInfo) Discriminator() string {
	return "SqlConnectionInfo"
}

// MySQLConnectionInfo is a connection to a MySQL server.
type MySQLConnectionInfo struct {
	ConnectionCredentials
	ServerName        string              `json:"serverName"`
	DataSource        *string             `json:"dataSource,omitempty"`
	Port              int32               `json:"port"`
	EncryptConnection *bool               `json:"encryptConnection,omitempty"`
	Authentication    *AuthenticationType `json:"authentication,omitempty"`
}

func (m *MySQLConnectionInfo) UnmarshalJSON(data []byte) error {
	type alias MySQLConnectionInfo
	return arm.DecodeObject("MySQLConnectionInfo", data, (*alias)(m))
}

func (MySQLConnectionInfo) Discriminator() string {
	return "MySqlConnectionInfo"
}

// PostgreSQLConnectionInfo is a connection to a PostgreSQL server.
type PostgreSQLConnectionInfo struct {
	ConnectionCredentials
	ServerName             string              `json:"serverName"`
	DataSource             *string             `json:"dataSource,omitempty"`
	ServerVersion          *string             `json:"serverVersion,omitempty"`
	DatabaseName           *string             `json:"databaseName,omitempty"`
	Port                   int32               `json:"port"`
	EncryptConnection      *bool               `json:"encryptConnection,omitempty"`
	TrustServerCertificate *bool               `json:"trustServerCertificate,omitempty"`
	Authentication         *AuthenticationType `json:"authentication,omitempty"`
}

func (p *PostgreSQLConnectionInfo) UnmarshalJSON(data []byte) error {
	type alias PostgreSQLConnectionInfo
	return arm.DecodeObject("PostgreSQLConnectionInfo", data, (*alias)(p))
}

func (PostgreSQLConnectionInfo) Discriminator() string {
	return "PostgreSqlConnectionInfo"
}
