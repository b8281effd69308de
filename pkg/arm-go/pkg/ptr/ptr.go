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

// Package ptr provides helper functions for converting between pointer and
// non-pointer values. Optional fields of the models are pointers, so that an
// absent field can be told apart from a zero one.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value of T if p is nil.
func Deref[T any](p *T) T {
	if p != nil {
		return *p
	}

	var zero T
	return zero
}

// String returns a pointer to the string value passed in.
func String(v string) *string {
	return &v
}

// ToString returns the value of the string pointer passed in or
// "" if the pointer is nil.
func ToString(p *string) string {
	return Deref(p)
}

// Bool returns a pointer to the bool value passed in.
func Bool(v bool) *bool {
	return &v
}

// ToBool returns the value of the bool pointer passed in or
// false if the pointer is nil.
func ToBool(p *bool) bool {
	return Deref(p)
}

// Int32 returns a pointer to the int32 value passed in.
func Int32(v int32) *int32 {
	return &v
}

// Int64 returns a pointer to the int64 value passed in.
func Int64(v int64) *int64 {
	return &v
}
