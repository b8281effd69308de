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

import "strings"

// Enum holds the values a wire enumeration is known to carry.
//
// Enumerations returned by the service are open: values outside of the known
// set are still decoded, and they are encoded back exactly as they were
// received. Types backed by an Enum are plain string types, so a value not
// included here is the "unknown" variant and carries its original token.
type Enum[T ~string] struct {
	name   string
	values []T
	known  map[T]struct{}
	folded map[string]T
}

// NewEnum returns the registry of known values for the enumeration called
// name.
func NewEnum[T ~string](name string, values ...T) *Enum[T] {
	e := &Enum[T]{
		name:   name,
		values: make([]T, 0, len(values)),
		known:  make(map[T]struct{}, len(values)),
		folded: make(map[string]T, len(values)),
	}

	for _, v := range values {
		if _, exists := e.known[v]; exists {
			continue
		}

		e.values = append(e.values, v)
		e.known[v] = struct{}{}
		e.folded[strings.ToLower(string(v))] = v
	}

	return e
}

func (e *Enum[T]) Name() string {
	return e.name
}

// Values returns the known values, in the order they were registered.
func (e *Enum[T]) Values() []T {
	return append([]T{}, e.values...)
}

// Decode never fails: a token outside of the known set becomes an unknown
// value holding the token verbatim.
func (e *Enum[T]) Decode(wire string) T {
	return T(wire)
}

func (e *Enum[T]) Encode(v T) string {
	return string(v)
}

func (e *Enum[T]) IsKnown(v T) bool {
	_, exists := e.known[v]
	return exists
}

// Lookup matches wire against the known values ignoring case, and returns
// the canonical spelling of the value it matched.
func (e *Enum[T]) Lookup(wire string) (T, bool) {
	if e.IsKnown(T(wire)) {
		return T(wire), true
	}

	v, exists := e.folded[strings.ToLower(wire)]
	return v, exists
}
