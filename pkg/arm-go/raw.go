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
	"encoding/json"
	"fmt"

	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	r "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/internal/requester"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

type rawOps struct {
	*r.Requester
}

// Raw reads resources by their ID, whatever collection they belong to.
func (c *Client) Raw() *rawOps {
	return &rawOps{Requester: c.requester.CloneWithNewBasePath("/")}
}

// ResolveKind returns the kind of the resource with the given ID.
func ResolveKind(resourceID string) (*azcorearm.ResourceID, Kind, error) {
	id, err := azcorearm.ParseResourceID(resourceID)
	if err != nil {
		return nil, Kind{}, fmt.Errorf("resource ID doesn't look valid: %w", err)
	}

	kind, found := KindByType(id.ResourceType.String())
	if !found {
		return id, Kind{}, fmt.Errorf("%w: %s", verrors.ErrorUnknownResourceType, id.ResourceType)
	}

	return id, kind, nil
}

// ResolveCollectionKind returns the kind of the resources listed by the
// collection with the given ID, e.g. the replicationVaults of a resource
// group.
func ResolveCollectionKind(collectionID string) (Kind, error) {
	// A collection ID is the ID of one of its items without the name.
	_, kind, err := ResolveKind(collectionID + "/placeholder")
	return kind, err
}

// Get reads the resource with the given ID and decodes it into the model
// of its kind.
func (o *rawOps) Get(ctx context.Context, resourceID string) (any, error) {
	id, kind, err := ResolveKind(resourceID)
	if err != nil {
		return nil, err
	}

	resp, err := o.Do(ctx, r.WithPath(id.String()), r.WithAPIVersion(kind.APIVersion))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := decodeBody[json.RawMessage](resp)
	if err != nil {
		return nil, err
	}

	value, err := kind.Decode(*data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrorUnmarshallingBody, err)
	}

	return value, nil
}

// List returns a pager over the collection with the given ID. Items are
// decoded into the model of the collection's kind.
func (o *rawOps) List(collectionID string, opts *ListOptions) *arm.Pager[any] {
	kind, err := ResolveCollectionKind(collectionID)
	pages := newReadCollection[json.RawMessage](o.Requester, collectionID, kind.APIVersion, err).List(opts)

	return arm.NewPager(func(ctx context.Context, _ string) (*arm.Page[any], error) {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		items := make([]any, 0, len(page.Value))
		for _, raw := range page.Value {
			item, err := kind.Decode(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", verrors.ErrorUnmarshallingBody, err)
			}
			items = append(items, item)
		}

		return &arm.Page[any]{Value: items, NextLink: page.NextLink}, nil
	})
}
