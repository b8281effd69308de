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
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	armgo "github.com/CloudNativeSDWAN/armwire/pkg/arm-go"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
)

const requestTimeout time.Duration = time.Minute

func getGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get RESOURCE_ID",
		Short: "Get a resource.",
		Long: `Get the resource with the given ID, decode it and report the enum
values its model does not know about.

The subscription of the resource ID is used if none is provided.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _, err := armgo.ResolveKind(args[0])
			if err != nil {
				return err
			}

			if opts.SubscriptionID == "" {
				opts.SubscriptionID = id.SubscriptionID
			}

			client, err := opts.getClient()
			if err != nil {
				return err
			}

			ctx, canc := context.WithTimeout(commandContext(cmd), requestTimeout)
			defer canc()

			value, err := client.Raw().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("could not get resource: %w", err)
			}

			warnFindings(opts.log, args[0], arm.Audit(value))
			return writeJSON(cmd.OutOrStdout(), value, true)
		},
		Example: "get /subscriptions/<id>/resourceGroups/rg/providers/Microsoft.DataReplication/replicationVaults/vault",
	}
}

func getListCommand(opts *Options) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "list COLLECTION_ID",
		Short: "List the resources of a collection.",
		Long: `List the resources of the collection with the given ID, one JSON
document per line, following the next links until the last page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// A collection ID is the ID of one of its items without the
			// name.
			id, _, err := armgo.ResolveKind(args[0] + "/placeholder")
			if err != nil {
				return err
			}

			if opts.SubscriptionID == "" {
				opts.SubscriptionID = id.SubscriptionID
			}

			client, err := opts.getClient()
			if err != nil {
				return err
			}

			pager := client.Raw().List(args[0], &armgo.ListOptions{Top: top})
			for pager.More() {
				ctx, canc := context.WithTimeout(commandContext(cmd), requestTimeout)
				page, err := pager.NextPage(ctx)
				canc()
				if err != nil {
					return fmt.Errorf("could not list resources: %w", err)
				}

				for _, item := range page.Value {
					warnFindings(opts.log, args[0], arm.Audit(item))
					if err := writeJSON(cmd.OutOrStdout(), item, false); err != nil {
						return err
					}
				}
			}

			return nil
		},
		Example: "list /subscriptions/<id>/resourceGroups/rg/providers/Microsoft.DataReplication/replicationVaults/vault/protectedItems",
	}

	cmd.Flags().IntVar(&top, "top", 0,
		"the maximum number of resources per page. 0 lets the service decide.")

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
