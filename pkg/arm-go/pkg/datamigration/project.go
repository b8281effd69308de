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

// Project groups the migration tasks between one source and one target
// platform.
type Project struct {
	arm.TrackedEnvelope[ProjectProperties]
	Etag *string `json:"etag,omitempty"`
}

type ProjectProperties struct {
	SourcePlatform       ProjectSourcePlatform     `json:"sourcePlatform"`
	TargetPlatform       ProjectTargetPlatform     `json:"targetPlatform"`
	CreationTime         *arm.DateTime             `json:"creationTime,omitempty"`
	SourceConnectionInfo ConnectionInfo            `json:"sourceConnectionInfo,omitempty"`
	TargetConnectionInfo ConnectionInfo            `json:"targetConnectionInfo,omitempty"`
	DatabasesInfo        []DatabaseInfo            `json:"databasesInfo,omitempty"`
	ProvisioningState    *ProjectProvisioningState `json:"provisioningState,omitempty"`
}

type DatabaseInfo struct {
	SourceDatabaseName string `json:"sourceDatabaseName"`
}

func (d *DatabaseInfo) UnmarshalJSON(data []byte) error {
	type alias DatabaseInfo
	return arm.DecodeObject("DatabaseInfo", data, (*alias)(d))
}

func (p ProjectProperties) MarshalJSON() ([]byte, error) {
	type alias ProjectProperties

	source, err := connectionInfos.EncodeField("ProjectProperties", "sourceConnectionInfo", p.SourceConnectionInfo, false)
	if err != nil {
		return nil, err
	}

	target, err := connectionInfos.EncodeField("ProjectProperties", "targetConnectionInfo", p.TargetConnectionInfo, false)
	if err != nil {
		return nil, err
	}

	return json.Marshal(struct {
		alias
		SourceConnectionInfo json.RawMessage `json:"sourceConnectionInfo,omitempty"`
		TargetConnectionInfo json.RawMessage `json:"targetConnectionInfo,omitempty"`
	}{alias(p), source, target})
}

func (p *ProjectProperties) UnmarshalJSON(data []byte) error {
	if err := arm.CheckRequired("ProjectProperties", data, p); err != nil {
		return err
	}

	type alias ProjectProperties

	aux := struct {
		*alias
		SourceConnectionInfo json.RawMessage `json:"sourceConnectionInfo"`
		TargetConnectionInfo json.RawMessage `json:"targetConnectionInfo"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	source, err := connectionInfos.DecodeField("ProjectProperties", "sourceConnectionInfo", aux.SourceConnectionInfo, false)
	if err != nil {
		return err
	}

	target, err := connectionInfos.DecodeField("ProjectProperties", "targetConnectionInfo", aux.TargetConnectionInfo, false)
	if err != nil {
		return err
	}

	p.SourceConnectionInfo, p.TargetConnectionInfo = source, target
	return nil
}
