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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	r "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/internal/requester"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

const (
	headerAsyncOperation string = "Azure-AsyncOperation"
	headerLocation       string = "Location"
	headerRetryAfter     string = "Retry-After"
)

// ListOptions filter the items of a list.
type ListOptions struct {
	// Top is the maximum number of items per page. Zero lets the service
	// decide.
	Top int
}

type creatable interface {
	ValidateForCreate() error
}

// readCollection serves the resources of type T living under the same
// path, e.g. the vaults of a resource group.
type readCollection[T any] struct {
	req *r.Requester
	// err is returned by every call when the path could not be built.
	err error
}

func newReadCollection[T any](req *r.Requester, basePath, apiVersion string, err error) *readCollection[T] {
	return &readCollection[T]{
		req: req.CloneWithNewBasePath(basePath).CloneWithAPIVersion(apiVersion),
		err: err,
	}
}

func (c *readCollection[T]) Get(ctx context.Context, name string) (*T, error) {
	if c.err != nil {
		return nil, c.err
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	resp, err := c.req.Get(ctx, r.WithPath(name))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeBody[T](resp)
}

// List returns a pager over the resources of the collection. Pages after
// the first one are read from the nextLink of the previous page as is.
func (c *readCollection[T]) List(opts *ListOptions) *arm.Pager[T] {
	return arm.NewPager(func(ctx context.Context, nextLink string) (*arm.Page[T], error) {
		if c.err != nil {
			return nil, c.err
		}

		reqOpts := []r.WithRequestOption{}
		switch {
		case nextLink != "":
			reqOpts = append(reqOpts, r.WithURL(nextLink))
		case opts != nil && opts.Top > 0:
			reqOpts = append(reqOpts, r.WithQueryParameter("$top", strconv.Itoa(opts.Top)))
		}

		resp, err := c.req.Get(ctx, reqOpts...)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		return decodeBody[arm.Page[T]](resp)
	})
}

// collection is a readCollection whose resources can be created, updated
// and deleted.
type collection[T any] struct {
	*readCollection[T]
}

func newCollection[T any](req *r.Requester, basePath, apiVersion string, err error) *collection[T] {
	return &collection[T]{
		readCollection: newReadCollection[T](req, basePath, apiVersion, err),
	}
}

// CreateOrUpdate puts the resource. When the service accepts the request
// without completing it, the returned operation tells where to follow it
// and the returned resource may be nil.
func (c *collection[T]) CreateOrUpdate(ctx context.Context, name string, resource *T) (*T, *Operation, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	if err := validateName(name); err != nil {
		return nil, nil, err
	}

	if resource == nil {
		return nil, nil, verrors.ErrorNoPropertiesProvided
	}

	if v, ok := any(resource).(creatable); ok {
		if err := v.ValidateForCreate(); err != nil {
			return nil, nil, err
		}
	}

	body, err := json.Marshal(resource)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", verrors.ErrorMarshallingData, err)
	}

	resp, err := c.req.Put(ctx, r.WithPath(name), r.WithBodyBytes(body))
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	return decodeAccepted[T](resp)
}

// Delete deletes the resource. The returned operation is nil when the
// resource was deleted right away.
func (c *collection[T]) Delete(ctx context.Context, name string) (*Operation, error) {
	return c.delete(ctx, name)
}

func (c *collection[T]) delete(ctx context.Context, name string, opts ...r.WithRequestOption) (*Operation, error) {
	if c.err != nil {
		return nil, c.err
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	opts = append(opts, r.WithPath(name))
	resp, err := c.req.Delete(ctx, opts...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return newOperation(resp), nil
}

// action posts body to an action of a resource, e.g. plannedFailover.
func (c *readCollection[T]) action(ctx context.Context, name, action string, body any) (*http.Response, error) {
	if c.err != nil {
		return nil, c.err
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	opts := []r.WithRequestOption{r.WithPath(name + "/" + action)}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", verrors.ErrorMarshallingData, err)
		}
		opts = append(opts, r.WithBodyBytes(data))
	}

	return c.req.Post(ctx, opts...)
}

func decodeBody[T any](resp *http.Response) (*T, error) {
	var value T
	if err := json.NewDecoder(resp.Body).Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %w", verrors.ErrorUnmarshallingBody, err)
	}

	return &value, nil
}

// decodeAccepted decodes the response of a request that may have started a
// long running operation.
func decodeAccepted[T any](resp *http.Response) (*T, *Operation, error) {
	op := newOperation(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", verrors.ErrorParsingBody, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, op, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", verrors.ErrorUnmarshallingBody, err)
	}

	return &value, op, nil
}

// newOperation returns the operation started by the request that got resp,
// or nil if the request completed.
func newOperation(resp *http.Response) *Operation {
	op := &Operation{
		AsyncOperationURL: resp.Header.Get(headerAsyncOperation),
		LocationURL:       resp.Header.Get(headerLocation),
	}

	if op.AsyncOperationURL == "" && op.LocationURL == "" {
		return nil
	}

	op.RetryAfter = retryAfterOf(resp)
	return op
}

// validateName fails unless name can be used as one segment of a path.
func validateName(name string) error {
	switch {
	case name == "":
		return verrors.ErrorNoNameProvided
	case name == ".", name == "..", strings.ContainsAny(name, "/\\"):
		return fmt.Errorf("%w: %q", verrors.ErrorInvalidName, name)
	default:
		return nil
	}
}

// retryAfterOf returns the delay in seconds asked by the Retry-After header
// of resp, or zero.
func retryAfterOf(resp *http.Response) time.Duration {
	seconds, err := strconv.Atoi(resp.Header.Get(headerRetryAfter))
	if err != nil || seconds <= 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}
