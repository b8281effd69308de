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

package command

import (
	"github.com/spf13/cobra"
)

func GetRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "armwire inspect|get|list|kinds [OPTIONS]",
		Short: "Decode and inspect Azure Resource Manager payloads.",
		Long: `Decode Azure Resource Manager payloads of the DataMigration and
DataReplication providers, either from files or straight from the service,
and report the enum values the models do not know about.`,
		Example:      "armwire inspect --kind protecteditem item.json",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.complete(cmd)
		},
	}

	opts.addFlags(cmd)

	// Commands
	cmd.AddCommand(getInspectCommand(opts))
	cmd.AddCommand(getGetCommand(opts))
	cmd.AddCommand(getListCommand(opts))
	cmd.AddCommand(getKindsCommand())

	return cmd
}
