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
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// KnownChecker is implemented by open enumerations.
type KnownChecker interface {
	IsKnown() bool
}

// Finding is an enumeration value the client does not know about.
type Finding struct {
	// Path is the JSON path of the value, e.g. $.properties.health.
	Path  string
	Enum  string
	Value string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: unknown %s %q", f.Path, f.Enum, f.Value)
}

var (
	knownCheckerType = reflect.TypeOf((*KnownChecker)(nil)).Elem()
	timeType         = reflect.TypeOf(time.Time{})
	dateTimeType     = reflect.TypeOf(DateTime{})
)

// Audit walks v and returns every open enumeration value in it that is not
// part of the known set. Findings are ordered by path.
func Audit(v any) []Finding {
	findings := []Finding{}
	audit(reflect.ValueOf(v), "$", &findings)

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Path < findings[j].Path
	})
	return findings
}

func audit(rv reflect.Value, path string, findings *[]Finding) {
	if !rv.IsValid() {
		return
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		audit(rv.Elem(), path, findings)
	case reflect.String:
		if !rv.Type().Implements(knownCheckerType) {
			return
		}

		if !rv.Interface().(KnownChecker).IsKnown() {
			*findings = append(*findings, Finding{
				Path:  path,
				Enum:  rv.Type().Name(),
				Value: rv.String(),
			})
		}
	case reflect.Struct:
		if rv.Type() == timeType || rv.Type() == dateTimeType {
			return
		}

		for i := 0; i < rv.NumField(); i++ {
			field := rv.Type().Field(i)
			if !field.IsExported() {
				continue
			}

			name, skip := jsonName(field)
			if skip {
				continue
			}

			if field.Anonymous && name == "" {
				audit(rv.Field(i), path, findings)
				continue
			}

			if name == "" {
				name = field.Name
			}
			audit(rv.Field(i), path+"."+name, findings)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			audit(rv.Index(i), fmt.Sprintf("%s[%d]", path, i), findings)
		}
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})

		for _, key := range keys {
			audit(rv.MapIndex(key), fmt.Sprintf("%s[%q]", path, fmt.Sprint(key.Interface())), findings)
		}
	}
}

func jsonName(field reflect.StructField) (string, bool) {
	tag, exists := field.Tag.Lookup("json")
	if !exists {
		return "", false
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}

	return name, false
}
