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

package arm_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/ptr"
)

type widgetProperties struct {
	Color *color `json:"color,omitempty"`
	Size  int    `json:"size"`
}

type widget = arm.TrackedEnvelope[widgetProperties]

func TestEnvelopeFlattensBaseFields(t *testing.T) {
	data := `{
		"id": "/subscriptions/s/resourceGroups/rg/providers/Test.Widgets/widgets/w1",
		"name": "w1",
		"type": "Test.Widgets/widgets",
		"location": "westeurope",
		"tags": {"env": "dev"},
		"systemData": {
			"createdBy": "someone@example.com",
			"createdByType": "User",
			"createdAt": "2023-01-02T03:04:05Z",
			"lastModifiedByType": "Robot"
		},
		"properties": {"color": "Red", "size": 3}
	}`

	var w widget
	require.NoError(t, json.Unmarshal([]byte(data), &w))

	assert.Equal(t, "w1", ptr.ToString(w.Name))
	assert.Equal(t, "westeurope", ptr.ToString(w.Location))
	assert.Equal(t, map[string]string{"env": "dev"}, w.Tags)
	require.NotNil(t, w.SystemData)
	assert.Equal(t, arm.CreatedByTypeUser, *w.SystemData.CreatedByType)
	assert.False(t, w.SystemData.LastModifiedByType.IsKnown())
	assert.Equal(t, time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC), w.SystemData.CreatedAt.UTC())
	require.NotNil(t, w.Properties)
	assert.Equal(t, 3, w.Properties.Size)

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(out))
}

func TestEnvelopePropertiesOptional(t *testing.T) {
	var w widget
	require.NoError(t, json.Unmarshal([]byte(`{"name":"summary"}`), &w))
	assert.Nil(t, w.Properties)

	assert.ErrorIs(t, w.ValidateForCreate(), verrors.ErrorNoPropertiesProvided)

	w.Properties = &widgetProperties{Size: 1}
	assert.ErrorIs(t, w.ValidateForCreate(), verrors.ErrorMissingField)

	w.Location = ptr.String("northeurope")
	assert.NoError(t, w.ValidateForCreate())

	proxy := arm.Envelope[widgetProperties]{}
	assert.ErrorIs(t, proxy.ValidateForCreate(), verrors.ErrorNoPropertiesProvided)
	proxy.Properties = &widgetProperties{}
	assert.NoError(t, proxy.ValidateForCreate())
}

func TestDateTime(t *testing.T) {
	cases := map[string]time.Time{
		`"2023-05-06T07:08:09Z"`:         time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC),
		`"2023-05-06T07:08:09.1234567Z"`: time.Date(2023, 5, 6, 7, 8, 9, 123456700, time.UTC),
		`"2023-05-06T07:08:09.5"`:        time.Date(2023, 5, 6, 7, 8, 9, 500000000, time.UTC),
		`"2023-05-06T09:08:09+02:00"`:    time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC),
		`"2023-05-06T07:08:09"`:          time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC),
	}

	for in, expected := range cases {
		var d arm.DateTime
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		assert.True(t, expected.Equal(d.Time), in)
	}

	var d arm.DateTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12`), &d))

	out, err := json.Marshal(arm.NewDateTime(time.Date(2023, 5, 6, 7, 8, 9, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2023-05-06T07:08:09Z"`, string(out))
}

func TestPageContinuation(t *testing.T) {
	var page arm.Page[int]
	require.NoError(t, json.Unmarshal([]byte(`{"value":[1,2],"nextLink":""}`), &page))
	_, more := page.Continuation()
	assert.False(t, more)

	require.NoError(t, json.Unmarshal([]byte(`{"value":[1,2]}`), &page))
	_, more = page.Continuation()
	assert.False(t, more)

	require.NoError(t, json.Unmarshal([]byte(`{"value":[],"nextLink":"https://next"}`), &page))
	link, more := page.Continuation()
	assert.True(t, more)
	assert.Equal(t, "https://next", link)

	var nilPage *arm.Page[int]
	_, more = nilPage.Continuation()
	assert.False(t, more)
}

func TestPager(t *testing.T) {
	pages := map[string]*arm.Page[int]{
		"":      {Value: []int{1, 2}, NextLink: ptr.String("page2")},
		"page2": {Value: []int{3}, NextLink: ptr.String("page3")},
		"page3": {Value: []int{4, 5}, NextLink: ptr.String("")},
	}

	requested := []string{}
	pager := arm.NewPager(func(_ context.Context, next string) (*arm.Page[int], error) {
		requested = append(requested, next)
		return pages[next], nil
	})

	items, err := pager.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
	assert.Equal(t, []string{"", "page2", "page3"}, requested)
	assert.False(t, pager.More())

	_, err = pager.NextPage(context.Background())
	assert.ErrorIs(t, err, verrors.ErrorNoMorePages)
}

func TestPagerLoop(t *testing.T) {
	pager := arm.NewPager(func(_ context.Context, next string) (*arm.Page[int], error) {
		return &arm.Page[int]{Value: []int{1}, NextLink: ptr.String("same")}, nil
	})

	items, err := pager.All(context.Background())
	assert.ErrorIs(t, err, verrors.ErrorPagerLoop)
	assert.Equal(t, []int{1}, items)
	assert.False(t, pager.More())
}

func TestPagerError(t *testing.T) {
	calls := 0
	pager := arm.NewPager(func(_ context.Context, next string) (*arm.Page[int], error) {
		calls++
		return nil, fmt.Errorf("boom")
	})

	_, err := pager.NextPage(context.Background())
	assert.EqualError(t, err, "boom")
	assert.True(t, pager.More())
	assert.Equal(t, 1, calls)
}

func TestOperationStatus(t *testing.T) {
	cases := []struct {
		body         string
		expFinished  bool
		expSucceeded bool
		expKnown     bool
	}{
		{body: `{"status":"InProgress","percentComplete":40}`, expKnown: true},
		{body: `{"status":"Succeeded"}`, expFinished: true, expSucceeded: true, expKnown: true},
		{body: `{"status":"Failed","error":{"code":"Conflict","message":"busy"}}`, expFinished: true, expKnown: true},
		{body: `{"status":"Canceled"}`, expFinished: true, expKnown: true},
		{body: `{"status":"Provisioning"}`},
	}

	for _, c := range cases {
		var status arm.OperationStatus
		require.NoError(t, json.Unmarshal([]byte(c.body), &status))
		assert.Equal(t, c.expFinished, status.Finished(), c.body)
		assert.Equal(t, c.expSucceeded, status.Succeeded(), c.body)
		assert.Equal(t, c.expKnown, status.Status.IsKnown(), c.body)
	}
}
