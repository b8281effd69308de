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

package requester

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderClientRequestID string = "x-ms-client-request-id"
	HeaderRequestID       string = "x-ms-request-id"

	// Tokens are renewed this long before they expire.
	tokenRefreshThreshold time.Duration = 5 * time.Minute
)

// Next sends a request through the rest of the pipeline.
type Next func(req *http.Request) (*http.Response, error)

// Policy is a step of the pipeline every request goes through. A policy can
// change the request, call next and then inspect or change the response.
type Policy func(req *http.Request, next Next) (*http.Response, error)

func runPipeline(req *http.Request, policies []Policy, transport Next) (*http.Response, error) {
	if len(policies) == 0 {
		return transport(req)
	}

	return policies[0](req, func(req *http.Request) (*http.Response, error) {
		return runPipeline(req, policies[1:], transport)
	})
}

func requestIDPolicy() Policy {
	return func(req *http.Request, next Next) (*http.Response, error) {
		if req.Header.Get(HeaderClientRequestID) == "" {
			req.Header.Set(HeaderClientRequestID, uuid.NewString())
		}

		return next(req)
	}
}

func userAgentPolicy(userAgent string) Policy {
	return func(req *http.Request, next Next) (*http.Response, error) {
		if userAgent != "" {
			req.Header.Set("User-Agent", userAgent)
		}

		return next(req)
	}
}

type bearerToken struct {
	credential azcore.TokenCredential
	scopes     []string

	sync.Mutex
	token azcore.AccessToken
}

func (b *bearerToken) get(ctx context.Context) (string, error) {
	b.Lock()
	defer b.Unlock()

	if b.token.Token != "" && time.Until(b.token.ExpiresOn) > tokenRefreshThreshold {
		return b.token.Token, nil
	}

	token, err := b.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: b.scopes})
	if err != nil {
		return "", fmt.Errorf("error while trying to get access token: %w", err)
	}

	b.token = token
	return token.Token, nil
}

func bearerTokenPolicy(credential azcore.TokenCredential, scopes []string) Policy {
	bearer := &bearerToken{credential: credential, scopes: scopes}

	return func(req *http.Request, next Next) (*http.Response, error) {
		token, err := bearer.get(req.Context())
		if err != nil {
			return nil, err
		}

		req.Header.Set("Authorization", "Bearer "+token)
		return next(req)
	}
}

func loggingPolicy(log zerolog.Logger) Policy {
	return func(req *http.Request, next Next) (*http.Response, error) {
		start := time.Now()
		l := log.With().
			Str("method", req.Method).
			Str("url", req.URL.Redacted()).
			Str("client-request-id", req.Header.Get(HeaderClientRequestID)).
			Logger()

		resp, err := next(req)
		if err != nil {
			l.Err(err).Dur("latency", time.Since(start)).Msg("request failed")
			return resp, err
		}

		l.Debug().
			Int("status", resp.StatusCode).
			Str("request-id", resp.Header.Get(HeaderRequestID)).
			Dur("latency", time.Since(start)).
			Msg("request completed")
		return resp, nil
	}
}
