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
	"net/url"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	armgo "github.com/CloudNativeSDWAN/armwire/pkg/arm-go"
)

const tokenEnv string = "ARMWIRE_TOKEN"

type Options struct {
	Endpoint       string `yaml:"endpoint,omitempty"`
	SubscriptionID string `yaml:"subscription,omitempty"`
	Insecure       bool   `yaml:"insecure"`
	MaxAttempts    int    `yaml:"maxAttempts,omitempty"`
	Verbosity      int    `yaml:"verbosity"`
	PrettyLogs     bool   `yaml:"prettyLogs"`

	// The token is never read from the settings file.
	token            string
	fileSettingsPath string
	log              zerolog.Logger
}

func (o *Options) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.fileSettingsPath, "settings-file", "",
		"path to the file containing settings")
	flags.StringVar(&o.Endpoint, "endpoint", armgo.DefaultEndpoint,
		"the Resource Manager endpoint to send requests to.")
	flags.StringVar(&o.SubscriptionID, "subscription", "",
		"the subscription requests are sent for.")
	flags.StringVar(&o.token, "token", "",
		"the bearer token to authenticate with. Defaults to the value of "+tokenEnv+".")
	flags.BoolVar(&o.Insecure, "insecure", false,
		"whether to connect ignoring self signed certificates.")
	flags.IntVar(&o.MaxAttempts, "max-attempts", 5,
		"how many times a request is sent to a busy service before giving up.")
	flags.IntVar(&o.Verbosity, "verbosity", defaultVerbosity,
		"verbosity level, from 0 to 2.")
	flags.BoolVar(&o.PrettyLogs, "pretty-logs", false,
		"whether to log data in a slower but human readable format.")
}

// complete merges the settings file with the flags that were explicitly
// set, which take precedence, and initializes the logger.
func (o *Options) complete(cmd *cobra.Command) error {
	if o.fileSettingsPath != "" {
		fileOpts, err := getSettingsFromFile(o.fileSettingsPath)
		if err != nil {
			return err
		}

		if !cmd.Flag("endpoint").Changed && fileOpts.Endpoint != "" {
			o.Endpoint = fileOpts.Endpoint
		}

		if !cmd.Flag("subscription").Changed {
			o.SubscriptionID = fileOpts.SubscriptionID
		}

		if !cmd.Flag("insecure").Changed {
			o.Insecure = fileOpts.Insecure
		}

		if !cmd.Flag("max-attempts").Changed && fileOpts.MaxAttempts > 0 {
			o.MaxAttempts = fileOpts.MaxAttempts
		}

		if !cmd.Flag("verbosity").Changed {
			o.Verbosity = fileOpts.Verbosity
		}

		if !cmd.Flag("pretty-logs").Changed {
			o.PrettyLogs = fileOpts.PrettyLogs
		}
	}

	if o.token == "" {
		o.token = os.Getenv(tokenEnv)
	}

	if _, err := url.Parse(o.Endpoint); err != nil {
		return fmt.Errorf("invalid endpoint provided: %w", err)
	}

	o.log = initLogger(o)
	return nil
}

func (o *Options) getClient() (*armgo.Client, error) {
	if o.token == "" {
		return nil, fmt.Errorf("no token provided: use --token or %s", tokenEnv)
	}

	clientOpts := []armgo.ClientOption{
		armgo.WithEndpoint(o.Endpoint),
		armgo.WithLogger(o.log),
		armgo.WithMaxAttempts(o.MaxAttempts),
	}
	if o.Insecure {
		clientOpts = append(clientOpts, armgo.WithSkipInsecure())
	}

	client, err := armgo.NewClient(o.SubscriptionID, staticToken(o.token), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("cannot get client: %w", err)
	}

	return client, nil
}

// staticToken is a token obtained elsewhere, e.g. with
// "az account get-access-token".
type staticToken string

func (s staticToken) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{
		Token:     string(s),
		ExpiresOn: time.Now().Add(time.Hour),
	}, nil
}
