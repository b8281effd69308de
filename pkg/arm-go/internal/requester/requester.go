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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/rs/zerolog"

	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

const apiVersionParameter string = "api-version"

type Requester struct {
	baseURL    url.URL
	httpClient *http.Client
	policies   []Policy
	apiVersion string

	maxAttempts int
	retryDelay  time.Duration
	log         zerolog.Logger
}

// Settings configure the pipeline of a requester.
type Settings struct {
	// Credential is used to authorize requests. When nil, requests are
	// sent without an Authorization header.
	Credential azcore.TokenCredential
	Scopes     []string
	UserAgent  string
	APIVersion string
	// MaxAttempts is how many times a request is sent before giving up on
	// a throttled or unavailable service.
	MaxAttempts int
	// RetryDelay is how long to wait before retrying when the service did
	// not send a Retry-After header.
	RetryDelay time.Duration
	// Policies are run after authorization and before the request is
	// logged and sent.
	Policies []Policy
	Logger   zerolog.Logger
}

func NewRequester(baseURL *url.URL, httpClient *http.Client, settings Settings) *Requester {
	if settings.MaxAttempts <= 0 {
		settings.MaxAttempts = defaultMaxAttempts
	}

	if settings.RetryDelay <= 0 {
		settings.RetryDelay = defaultCoolDown
	}

	policies := []Policy{
		requestIDPolicy(),
		userAgentPolicy(settings.UserAgent),
	}
	if settings.Credential != nil {
		policies = append(policies, bearerTokenPolicy(settings.Credential, settings.Scopes))
	}
	policies = append(policies, settings.Policies...)
	policies = append(policies, loggingPolicy(settings.Logger))

	return &Requester{
		baseURL:     *baseURL,
		httpClient:  httpClient,
		policies:    policies,
		apiVersion:  settings.APIVersion,
		maxAttempts: settings.MaxAttempts,
		retryDelay:  settings.RetryDelay,
		log:         settings.Logger,
	}
}

// Do sends the request through the pipeline. Throttled or unavailable
// responses are retried. Responses with an error status are returned along
// with a *errors.CloudError. The body of the returned response can always
// be read, even when an error is returned.
func (r *Requester) Do(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	reqOptions := &RequestOptions{
		method:      http.MethodGet,
		headers:     http.Header{},
		apiVersion:  r.apiVersion,
		maxAttempts: r.maxAttempts,
	}

	for _, opt := range opts {
		opt(reqOptions)
	}

	u, err := r.requestURL(reqOptions)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody
	if reqOptions.body != nil {
		body = bytes.NewReader(reqOptions.body)
		if reqOptions.headers.Get("Content-Type") == "" {
			reqOptions.headers.Set("Content-Type", "application/json")
		}
	}

	if reqOptions.headers.Get("Accept") == "" {
		reqOptions.headers.Set("Accept", "application/json")
	}

	// ----------------------------------
	// Create and make the request
	// ----------------------------------

	req, err := http.NewRequestWithContext(ctx, reqOptions.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("error while creating request: %w", err)
	}
	req.Header = reqOptions.headers

	resp, err := runPipeline(req, r.policies, r.httpClient.Do)
	if err != nil {
		return nil, fmt.Errorf("error while performing request: %w", err)
	}

	// ----------------------------------
	// Parse the response
	// ----------------------------------

	bodyResp, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return resp, fmt.Errorf("%w: %w", verrors.ErrorParsingBody, err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(bodyResp))

	retry := isRetriable(resp.StatusCode)
	if !retry && isHTML(resp) {
		retry, _ = isServiceUnavailable(bytes.NewReader(bodyResp))
	}

	if retry && reqOptions.currAttempt+1 < reqOptions.maxAttempts {
		wait := r.retryDelay
		if resp.Header.Get("Retry-After") != "" {
			wait = retryAfter(resp)
		}

		r.log.Debug().
			Str("url", req.URL.Redacted()).
			Int("status", resp.StatusCode).
			Int("attempt", reqOptions.currAttempt+1).
			Dur("wait", wait).
			Msg("service is busy or unavailable, retrying later")

		if err := coolDown(ctx, wait); err != nil {
			return resp, err
		}

		opts = append(opts, withIncreaseAttempt(), withClientRequestID(req.Header.Get(HeaderClientRequestID)))
		return r.Do(ctx, opts...)
	}

	if resp.StatusCode < http.StatusBadRequest {
		if retry {
			// An HTML page telling the service is unavailable, sent with a
			// success status code.
			return resp, verrors.ErrorTooManyFailedAttempts
		}

		return resp, nil
	}

	cloudErr := decodeCloudError(resp, bodyResp)
	if retry && reqOptions.maxAttempts > 1 {
		return resp, fmt.Errorf("%w: %w", verrors.ErrorTooManyFailedAttempts, cloudErr)
	}

	return resp, cloudErr
}

func (r *Requester) requestURL(reqOptions *RequestOptions) (string, error) {
	var u url.URL
	if reqOptions.url != "" {
		parsed, err := url.Parse(reqOptions.url)
		if err != nil {
			return "", fmt.Errorf("URL doesn't look valid: %w", err)
		}
		u = *parsed
	} else {
		u = r.baseURL
		u.Path = path.Join("/", r.baseURL.Path, reqOptions.path)
	}

	query := u.Query()
	for key, values := range reqOptions.queryParams {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	if reqOptions.apiVersion != "" && query.Get(apiVersionParameter) == "" {
		query.Set(apiVersionParameter, reqOptions.apiVersion)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

func withClientRequestID(id string) WithRequestOption {
	return func(r *RequestOptions) {
		if id != "" {
			r.headers.Set(HeaderClientRequestID, id)
		}
	}
}

func decodeCloudError(resp *http.Response, body []byte) *verrors.CloudError {
	cloudErr := &verrors.CloudError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get(HeaderRequestID),
	}

	if isHTML(resp) {
		title, _ := pageTitle(bytes.NewReader(body))
		cloudErr.Code = strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "")
		cloudErr.Message = title
		return cloudErr
	}

	var envelope struct {
		Error *verrors.CloudError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		envelope.Error.StatusCode, envelope.Error.RequestID = cloudErr.StatusCode, cloudErr.RequestID
		return envelope.Error
	}

	// Some services send the error object without wrapping it.
	_ = json.Unmarshal(body, cloudErr)
	if cloudErr.Code == "" {
		cloudErr.Code = strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "")
	}
	if cloudErr.Message == "" {
		cloudErr.Message = strings.TrimSpace(string(body))
	}

	return cloudErr
}

// Get is just a shortcut for Do(ctx, WithGET())
func (r *Requester) Get(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	opts = append(opts, WithGET())
	return r.Do(ctx, opts...)
}

// Post is just a shortcut for Do(ctx, WithPOST())
func (r *Requester) Post(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	opts = append(opts, WithPOST())
	return r.Do(ctx, opts...)
}

// Put is just a shortcut for Do(ctx, WithPUT())
func (r *Requester) Put(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	opts = append(opts, WithPUT())
	return r.Do(ctx, opts...)
}

// Delete is just a shortcut for Do(ctx, WithDELETE())
func (r *Requester) Delete(ctx context.Context, opts ...WithRequestOption) (*http.Response, error) {
	opts = append(opts, WithDELETE())
	return r.Do(ctx, opts...)
}

func (r *Requester) CloneWithNewBasePath(newPath string) *Requester {
	newRequester := *r
	newRequester.baseURL.Path = newPath

	return &newRequester
}

// CloneWithAPIVersion returns a requester that sends requests with the
// given api-version.
func (r *Requester) CloneWithAPIVersion(version string) *Requester {
	newRequester := *r
	newRequester.apiVersion = version

	return &newRequester
}

func (r *Requester) BaseURL() url.URL {
	return r.baseURL
}
