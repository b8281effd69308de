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
	"net/http"
	"time"

	"github.com/rs/zerolog"

	r "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/internal/requester"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

// Operation is a long running operation, started by a request the service
// accepted without completing it.
type Operation struct {
	// AsyncOperationURL is where the status of the operation is reported.
	AsyncOperationURL string
	// LocationURL is where the result of the operation can be read once
	// it is finished.
	LocationURL string
	RetryAfter  time.Duration
}

type WaitOptions struct {
	// Duration is how often the operation is polled. When not positive,
	// the interval asked by the service is used, or the one of the client.
	Duration time.Duration
}

type operationsOps struct {
	*r.Requester
	pollInterval time.Duration
	log          zerolog.Logger
}

func (c *Client) Operations() *operationsOps {
	return &operationsOps{
		Requester:    c.requester,
		pollInterval: c.pollInterval,
		log:          c.log,
	}
}

// Get returns the current status of the operation.
func (o *operationsOps) Get(ctx context.Context, op *Operation) (*arm.OperationStatus, error) {
	status, _, err := o.poll(ctx, op)
	return status, err
}

// poll returns the current status of the operation, together with the delay
// the service asked before the next poll.
func (o *operationsOps) poll(ctx context.Context, op *Operation) (*arm.OperationStatus, time.Duration, error) {
	if op == nil || (op.AsyncOperationURL == "" && op.LocationURL == "") {
		return nil, 0, verrors.ErrorNoOperationURL
	}

	if op.AsyncOperationURL == "" {
		return o.pollLocation(ctx, op.LocationURL)
	}

	resp, err := o.Do(ctx, r.WithURL(op.AsyncOperationURL))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var status arm.OperationStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", verrors.ErrorUnmarshallingBody, err)
	}

	return &status, retryAfterOf(resp), nil
}

// pollLocation tells the status of an operation that only has a Location
// URL: the service answers 202 until it is finished.
func (o *operationsOps) pollLocation(ctx context.Context, location string) (*arm.OperationStatus, time.Duration, error) {
	resp, err := o.Do(ctx, r.WithURL(location))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		return &arm.OperationStatus{Status: arm.OperationStateInProgress}, retryAfterOf(resp), nil
	}

	return &arm.OperationStatus{Status: arm.OperationStateSucceeded}, 0, nil
}

// Wait polls the operation until it is finished. An operation that did not
// succeed is returned along with an error. A nil operation is one that
// completed with the request that started it.
//
// Unless opts sets a positive Duration, each poll waits for the delay asked
// by the Retry-After header of the previous response, or the poll interval
// of the client when there is none.
func (o *operationsOps) Wait(ctx context.Context, op *Operation, opts WaitOptions) (*arm.OperationStatus, error) {
	if op == nil {
		return &arm.OperationStatus{Status: arm.OperationStateSucceeded}, nil
	}

	timer := time.NewTimer(o.nextPoll(opts, op.RetryAfter))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("error while checking operation status: %w", ctx.Err())
		case <-timer.C:
			status, retryAfter, err := o.poll(ctx, op)
			if err != nil {
				return nil, fmt.Errorf("error while checking operation status: %w", err)
			}

			o.log.Debug().Str("status", string(status.Status)).Dur("retry-after", retryAfter).Msg("polled operation")
			if !status.Finished() {
				timer.Reset(o.nextPoll(opts, retryAfter))
				continue
			}

			if status.Succeeded() {
				return status, nil
			}

			if status.Error != nil {
				return status, fmt.Errorf("%w: %s: %w", verrors.ErrorOperationFailed, status.Status, status.Error)
			}

			return status, fmt.Errorf("%w: %s", verrors.ErrorOperationFailed, status.Status)
		}
	}
}

func (o *operationsOps) nextPoll(opts WaitOptions, retryAfter time.Duration) time.Duration {
	switch {
	case opts.Duration > 0:
		return opts.Duration
	case retryAfter > 0:
		return retryAfter
	case o.pollInterval > 0:
		return o.pollInterval
	default:
		return defaultPollInterval
	}
}

// GetResult reads the result of a finished operation into out.
func (o *operationsOps) GetResult(ctx context.Context, op *Operation, out any) error {
	if op == nil || op.LocationURL == "" {
		return verrors.ErrorNoOperationURL
	}

	resp, err := o.Do(ctx, r.WithURL(op.LocationURL))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", verrors.ErrorUnmarshallingBody, err)
	}

	return nil
}
