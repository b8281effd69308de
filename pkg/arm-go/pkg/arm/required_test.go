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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/arm"
	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

type disk struct {
	Common
	ID       string            `json:"id"`
	SizeGB   int64             `json:"sizeGB"`
	Boot     bool              `json:"boot"`
	Tags     map[string]string `json:"tags,omitempty"`
	Label    *string           `json:"label,omitempty"`
	Format   *string           `json:"format"`
	Ignored  string            `json:"-"`
	internal string
}

type Common struct {
	Owner string `json:"owner"`
}

func TestRequiredFields(t *testing.T) {
	assert.Equal(t, []string{"owner", "id", "sizeGB", "boot"}, arm.RequiredFields(reflect.TypeOf(disk{})))
	assert.Equal(t, []string{"owner", "id", "sizeGB", "boot"}, arm.RequiredFields(reflect.TypeOf(&disk{})))
	assert.Empty(t, arm.RequiredFields(reflect.TypeOf("")))
}

func TestDecodeObject(t *testing.T) {
	cases := []struct {
		name     string
		data     string
		expField string
	}{
		{name: "complete", data: `{"owner":"o","id":"d1","sizeGB":0,"boot":false}`},
		{name: "null object", data: `null`},
		{name: "missing scalar", data: `{"owner":"o","id":"d1","boot":true}`, expField: "sizeGB"},
		{name: "null scalar", data: `{"owner":"o","id":null,"sizeGB":1,"boot":true}`, expField: "id"},
		{name: "missing embedded field", data: `{"id":"d1","sizeGB":1,"boot":true}`, expField: "owner"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var d disk
			err := arm.DecodeObject("Disk", []byte(c.data), &d)
			if c.expField == "" {
				require.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, verrors.ErrorMissingField)
			assert.Equal(t, &verrors.FieldError{Object: "Disk", Field: c.expField}, err)
		})
	}

	var d disk
	assert.Error(t, arm.DecodeObject("Disk", []byte(`[1]`), &d))
}

func TestUnionEncodeField(t *testing.T) {
	_, err := shapes.EncodeField("Drawing", "shape", nil, true)
	assert.Equal(t, &verrors.FieldError{Object: "Drawing", Field: "shape"}, err)

	raw, err := shapes.EncodeField("Drawing", "shape", nil, false)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = shapes.EncodeField("Drawing", "shape", &square{Side: 2}, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"Square","side":2}`, string(raw))

	s, err := shapes.DecodeField("Drawing", "shape", raw, true)
	require.NoError(t, err)
	assert.Equal(t, &square{Side: 2}, s)
}
