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
	"fmt"
	"time"
)

const zonelessLayout = "2006-01-02T15:04:05.999999999"

// DateTime is a timestamp encoded as an RFC 3339 string.
//
// Some services omit the time zone: such values are read as UTC.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date-time is not a string: %w", err)
	}

	t, err := ParseDateTime(value)
	if err != nil {
		return err
	}

	d.Time = t
	return nil
}

// ParseDateTime parses value as RFC 3339, falling back to a layout without
// time zone.
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	t, zerr := time.ParseInLocation(zonelessLayout, value, time.UTC)
	if zerr != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", value, err)
	}

	return t, nil
}
