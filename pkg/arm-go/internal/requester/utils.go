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
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultCoolDown    time.Duration = 5 * time.Second
	maxCoolDown        time.Duration = time.Minute
	defaultMaxAttempts int           = 5
)

func isRetriable(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func isHTML(resp *http.Response) bool {
	return strings.HasPrefix(strings.ToLower(resp.Header.Get("Content-Type")), "text/html")
}

// pageTitle returns the title of an HTML page, which gateways in front of
// ARM fill with the reason of the failure.
func pageTitle(reader io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return "", fmt.Errorf("cannot open HTML document: %w", err)
	}

	return strings.TrimSpace(doc.FindMatcher(goquery.Single("title")).Text()), nil
}

func isServiceUnavailable(reader io.Reader) (bool, error) {
	title, err := pageTitle(reader)
	if err != nil {
		return false, err
	}

	title = strings.ToLower(title)
	for _, text := range []string{"service unavailable", "bad gateway", "gateway timeout", "temporarily unavailable"} {
		if strings.Contains(title, text) {
			return true, nil
		}
	}

	return false, nil
}

// retryAfter reads how long the server asked to wait before retrying. It
// returns the default cool down when the server did not say.
func retryAfter(resp *http.Response) time.Duration {
	value := resp.Header.Get("Retry-After")
	if value == "" {
		return defaultCoolDown
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return capCoolDown(time.Duration(seconds) * time.Second)
	}

	if when, err := http.ParseTime(value); err == nil {
		return capCoolDown(time.Until(when))
	}

	return defaultCoolDown
}

func capCoolDown(d time.Duration) time.Duration {
	switch {
	case d < 0:
		return 0
	case d > maxCoolDown:
		return maxCoolDown
	default:
		return d
	}
}

func coolDown(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
