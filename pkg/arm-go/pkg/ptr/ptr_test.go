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

package ptr_test

import (
	"testing"

	"github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/ptr"
)

func TestString(t *testing.T) {
	v := "test"
	p := ptr.String(v)
	if p == nil || *p != v {
		t.Errorf("Expected %s, got %v", v, p)
	}

	if ptr.ToString(p) != v {
		t.Errorf("Expected %s, got %s", v, ptr.ToString(p))
	}

	if ptr.ToString(nil) != "" {
		t.Errorf("Expected empty string for nil, got %s", ptr.ToString(nil))
	}
}

func TestBool(t *testing.T) {
	p := ptr.Bool(true)
	if p == nil || !*p {
		t.Errorf("Expected true, got %v", p)
	}

	if ptr.ToBool(nil) {
		t.Errorf("Expected false for nil")
	}
}

func TestGeneric(t *testing.T) {
	type state string

	p := ptr.To(state("Succeeded"))
	if ptr.Deref(p) != "Succeeded" {
		t.Errorf("Expected Succeeded, got %s", ptr.Deref(p))
	}

	var missing *int32
	if ptr.Deref(missing) != 0 {
		t.Errorf("Expected 0 for nil, got %d", ptr.Deref(missing))
	}

	if *ptr.Int32(5) != 5 || *ptr.Int64(7) != 7 {
		t.Errorf("Unexpected integer pointer values")
	}
}
