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
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

var requiredCache sync.Map

// RequiredFields returns the wire names of the fields of struct type t that
// must be present in its JSON object: the ones that are neither pointers nor
// tagged omitempty. Fields of embedded structs are included, in declaration
// order.
func RequiredFields(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	if cached, found := requiredCache.Load(t); found {
		return cached.([]string)
	}

	fields := []string{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, hasTag := f.Tag.Lookup("json")
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if f.Anonymous && !hasTag {
			fields = append(fields, RequiredFields(f.Type)...)
			continue
		}

		if !f.IsExported() || f.Type.Kind() == reflect.Pointer || strings.Contains(opts, "omitempty") {
			continue
		}

		if name == "" {
			name = f.Name
		}

		fields = append(fields, name)
	}

	requiredCache.Store(t, fields)
	return fields
}

// CheckRequired returns a FieldError for the first required field of v's
// type that the JSON object in data lacks or sets to null. A JSON null
// object passes.
func CheckRequired(object string, data []byte, v any) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	present := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &present); err != nil {
		return err
	}

	for _, name := range RequiredFields(reflect.TypeOf(v)) {
		raw, found := present[name]
		if !found || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return &verrors.FieldError{Object: object, Field: name}
		}
	}

	return nil
}

// DecodeObject decodes data into v, a pointer to a struct without a custom
// decoder, after checking its required fields with CheckRequired.
func DecodeObject(object string, data []byte, v any) error {
	if err := CheckRequired(object, data, v); err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}
