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

package arm

import (
	"context"
	"fmt"

	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

// Page is one page of a list response.
type Page[T any] struct {
	Value    []T     `json:"value"`
	NextLink *string `json:"nextLink,omitempty"`
}

// Continuation returns the link to the next page. An absent or empty
// nextLink means this is the last page.
func (p *Page[T]) Continuation() (string, bool) {
	if p == nil || p.NextLink == nil || *p.NextLink == "" {
		return "", false
	}

	return *p.NextLink, true
}

// PageFetcher retrieves a page. nextLink is empty for the first page.
type PageFetcher[T any] func(ctx context.Context, nextLink string) (*Page[T], error)

// Pager walks a paginated list one page at a time. It is not safe for
// concurrent use.
type Pager[T any] struct {
	fetch    PageFetcher[T]
	nextLink string
	started  bool
	done     bool
}

func NewPager[T any](fetch PageFetcher[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// More tells whether NextPage can be called again.
func (p *Pager[T]) More() bool {
	return !p.done
}

func (p *Pager[T]) NextPage(ctx context.Context) (*Page[T], error) {
	if p.done {
		return nil, verrors.ErrorNoMorePages
	}

	page, err := p.fetch(ctx, p.nextLink)
	if err != nil {
		return nil, err
	}

	if page == nil {
		page = &Page[T]{}
	}

	next, hasNext := page.Continuation()
	switch {
	case !hasNext:
		p.done = true
	case p.started && next == p.nextLink:
		p.done = true
		return page, fmt.Errorf("%w: %s", verrors.ErrorPagerLoop, next)
	default:
		p.nextLink = next
	}

	p.started = true
	return page, nil
}

// All fetches every remaining page and returns their items.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	items := []T{}
	for p.More() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return items, err
		}

		items = append(items, page.Value...)
	}

	return items, nil
}
