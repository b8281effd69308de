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
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/rs/zerolog"

	r "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/internal/requester"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

const (
	DefaultEndpoint  string = "https://management.azure.com"
	defaultUserAgent string = "armwire"

	defaultPollInterval = 2 * time.Second
)

type (
	// Policy is a step of the pipeline every request goes through.
	Policy = r.Policy
	// Next sends a request through the rest of the pipeline.
	Next = r.Next
)

type Client struct {
	subscriptionID string
	requester      *r.Requester
	pollInterval   time.Duration
	log            zerolog.Logger
}

type ClientOptions struct {
	Endpoint     string
	HTTPClient   *http.Client
	SkipInsecure bool
	Logger       zerolog.Logger
	MaxAttempts  int
	RetryDelay   time.Duration
	PollInterval time.Duration
	Policies     []Policy
	UserAgent    string
}

type ClientOption func(*ClientOptions)

// WithEndpoint sets the Resource Manager endpoint, e.g. the one of a
// sovereign cloud.
func WithEndpoint(endpoint string) ClientOption {
	return func(opts *ClientOptions) {
		opts.Endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

func WithSkipInsecure() ClientOption {
	return func(opts *ClientOptions) {
		opts.SkipInsecure = true
	}
}

func WithLogger(log zerolog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = log
	}
}

// WithMaxAttempts sets how many times a request is sent to a throttled or
// unavailable service before giving up.
func WithMaxAttempts(attempts int) ClientOption {
	return func(opts *ClientOptions) {
		opts.MaxAttempts = attempts
	}
}

func WithRetryDelay(delay time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.RetryDelay = delay
	}
}

// WithPollInterval sets how often long running operations are polled when
// the service does not say. Intervals that are not positive are ignored.
func WithPollInterval(interval time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.PollInterval = interval
	}
}

// WithPolicies adds policies to the pipeline. They run after the request
// is authorized, in the order they are given.
func WithPolicies(policies ...Policy) ClientOption {
	return func(opts *ClientOptions) {
		opts.Policies = append(opts.Policies, policies...)
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(opts *ClientOptions) {
		opts.UserAgent = userAgent
	}
}

func NewClient(subscriptionID string, credential azcore.TokenCredential, opts ...ClientOption) (*Client, error) {
	// ------------------------------------
	// Inits and setups
	// ------------------------------------

	options := &ClientOptions{
		Endpoint:     DefaultEndpoint,
		Logger:       zerolog.Nop(),
		PollInterval: defaultPollInterval,
		UserAgent:    defaultUserAgent,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.PollInterval <= 0 {
		options.PollInterval = defaultPollInterval
	}

	endpoint, err := url.Parse(options.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint doesn't look valid: %w", err)
	}

	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("endpoint doesn't look valid: %s", options.Endpoint)
	}

	// ------------------------------------
	// Some validations
	// ------------------------------------

	if subscriptionID == "" {
		return nil, verrors.ErrorNoSubscriptionID
	}

	if err := validateName(subscriptionID); err != nil {
		return nil, err
	}

	if credential == nil {
		return nil, verrors.ErrorNoCredential
	}

	// ------------------------------------
	// Create the client
	// ------------------------------------

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	if options.SkipInsecure {
		insecure := *client
		insecure.Transport = getInsecureSkipVerifyConfig()
		client = &insecure
	}

	scope := strings.TrimSuffix(endpoint.String(), "/") + "/.default"
	req := r.NewRequester(endpoint, client, r.Settings{
		Credential:  credential,
		Scopes:      []string{scope},
		UserAgent:   options.UserAgent,
		MaxAttempts: options.MaxAttempts,
		RetryDelay:  options.RetryDelay,
		Policies:    options.Policies,
		Logger:      options.Logger,
	})

	return &Client{
		subscriptionID: subscriptionID,
		requester:      req,
		pollInterval:   options.PollInterval,
		log:            options.Logger,
	}, nil
}

func (c *Client) SubscriptionID() string {
	return c.subscriptionID
}

func (c *Client) subscriptionPath() string {
	return "/subscriptions/" + c.subscriptionID
}

// providerPath builds the path of a collection of a resource provider.
// segments alternate between collection and resource names, and each of
// them must be a single, non empty path segment. An empty resourceGroup
// means the collection lives at the subscription level.
func (c *Client) providerPath(resourceGroup, namespace string, segments ...string) (string, error) {
	p := c.subscriptionPath()
	if resourceGroup != "" {
		if err := validateName(resourceGroup); err != nil {
			return "", err
		}
		p += "/resourceGroups/" + resourceGroup
	}
	p += "/providers/" + namespace

	for _, segment := range segments {
		if err := validateName(segment); err != nil {
			return "", err
		}
		p += "/" + segment
	}

	return p, nil
}

func (c *Client) resourceGroupPath(resourceGroup, namespace string, segments ...string) (string, error) {
	if resourceGroup == "" {
		return "", verrors.ErrorNoResourceGroup
	}

	return c.providerPath(resourceGroup, namespace, segments...)
}

func getInsecureSkipVerifyConfig() (customTransport *http.Transport) {
	customTransport = http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return
}
