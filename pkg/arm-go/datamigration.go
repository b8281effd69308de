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

package armgo

import (
	"context"
	"strconv"

	r "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/internal/requester"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	dm "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/datamigration"
)

type DeleteOptions struct {
	// DeleteRunningTasks cancels the tasks still running before deleting.
	// Without it, deleting a service or a task that is running fails.
	DeleteRunningTasks bool
}

func (o *DeleteOptions) requestOptions() []r.WithRequestOption {
	if o == nil || !o.DeleteRunningTasks {
		return nil
	}

	return []r.WithRequestOption{r.WithQueryParameter("deleteRunningTasks", strconv.FormatBool(true))}
}

type servicesOps struct {
	*collection[dm.Service]
}

// Services serves the migration services of a resource group.
func (c *Client) Services(resourceGroup string) *servicesOps {
	p, err := c.resourceGroupPath(resourceGroup, dm.ProviderNamespace, "services")
	return &servicesOps{newCollection[dm.Service](c.requester, p, dm.APIVersion, err)}
}

// ListAllServices returns a pager over the migration services of the whole
// subscription.
func (c *Client) ListAllServices(opts *ListOptions) *arm.Pager[dm.Service] {
	p, err := c.providerPath("", dm.ProviderNamespace, "services")
	return newReadCollection[dm.Service](c.requester, p, dm.APIVersion, err).List(opts)
}

func (s *servicesOps) Delete(ctx context.Context, name string, opts *DeleteOptions) (*Operation, error) {
	return s.delete(ctx, name, opts.requestOptions()...)
}

// Start starts a stopped service.
func (s *servicesOps) Start(ctx context.Context, name string) (*Operation, error) {
	return s.lifecycle(ctx, name, "start")
}

// Stop stops a service. Running tasks are canceled.
func (s *servicesOps) Stop(ctx context.Context, name string) (*Operation, error) {
	return s.lifecycle(ctx, name, "stop")
}

func (s *servicesOps) lifecycle(ctx context.Context, name, action string) (*Operation, error) {
	resp, err := s.action(ctx, name, action, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return newOperation(resp), nil
}

type projectsOps struct {
	*collection[dm.Project]
}

func (c *Client) Projects(resourceGroup, service string) *projectsOps {
	p, err := c.resourceGroupPath(resourceGroup, dm.ProviderNamespace, "services", service, "projects")
	return &projectsOps{newCollection[dm.Project](c.requester, p, dm.APIVersion, err)}
}

type tasksOps struct {
	*collection[dm.ProjectTask]
}

// Tasks serves the tasks of a project.
func (c *Client) Tasks(resourceGroup, service, project string) *tasksOps {
	p, err := c.resourceGroupPath(resourceGroup, dm.ProviderNamespace, "services", service, "projects", project, "tasks")
	return &tasksOps{newCollection[dm.ProjectTask](c.requester, p, dm.APIVersion, err)}
}

func (t *tasksOps) Delete(ctx context.Context, name string, opts *DeleteOptions) (*Operation, error) {
	return t.delete(ctx, name, opts.requestOptions()...)
}

// Cancel cancels a running task and returns it as the service left it.
func (t *tasksOps) Cancel(ctx context.Context, name string) (*dm.ProjectTask, error) {
	resp, err := t.action(ctx, name, "cancel", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeBody[dm.ProjectTask](resp)
}
