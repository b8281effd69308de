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
	"reflect"
	"sort"

	verrors "github.com/CloudNativeSDWAN/armwire/pkg/arm-go/pkg/errors"
)

// Variant is implemented by every payload shape of a tagged union.
// Discriminator returns the wire tag the shape is registered with.
type Variant interface {
	Discriminator() string
}

// Union dispatches JSON objects to one of a closed set of shapes, chosen by
// the value of a discriminator field.
//
// Unlike Enum, a Union has no fallback: an object whose discriminator is not
// registered cannot be decoded.
type Union[T Variant] struct {
	name   string
	field  string
	shapes map[string]func() T
}

// NewUnion returns an empty union called name, whose discriminator is
// stored in field.
func NewUnion[T Variant](name, field string) *Union[T] {
	return &Union[T]{
		name:   name,
		field:  field,
		shapes: map[string]func() T{},
	}
}

// Register adds a shape to the union. The factory must return a pointer to
// a new, zero value of the shape: its discriminator is used as the wire tag.
func (u *Union[T]) Register(factory func() T) *Union[T] {
	tag := factory().Discriminator()
	if _, exists := u.shapes[tag]; exists {
		panic(fmt.Sprintf("%s: tag %q registered twice", u.name, tag))
	}

	u.shapes[tag] = factory
	return u
}

func (u *Union[T]) Name() string {
	return u.name
}

func (u *Union[T]) Field() string {
	return u.field
}

// Tags returns the registered tags, sorted.
func (u *Union[T]) Tags() []string {
	tags := make([]string, 0, len(u.shapes))
	for tag := range u.shapes {
		tags = append(tags, tag)
	}

	sort.Strings(tags)
	return tags
}

// New returns a new zero value of the shape registered with tag.
func (u *Union[T]) New(tag string) (T, error) {
	factory, exists := u.shapes[tag]
	if !exists {
		var zero T
		return zero, &verrors.DiscriminatorError{Union: u.name, Field: u.field, Value: tag}
	}

	return factory(), nil
}

// Decode reads the discriminator of the object in data and decodes the whole
// object into the shape registered for it. A JSON null decodes to the zero
// value of T.
func (u *Union[T]) Decode(data []byte) (T, error) {
	var zero T

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return zero, nil
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return zero, fmt.Errorf("%s: %w", u.name, err)
	}

	rawTag, exists := fields[u.field]
	if !exists || bytes.Equal(rawTag, []byte("null")) {
		return zero, &verrors.DiscriminatorError{Union: u.name, Field: u.field, Missing: true}
	}

	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return zero, fmt.Errorf("%s: discriminator %q is not a string: %w", u.name, u.field, err)
	}

	v, err := u.New(tag)
	if err != nil {
		return zero, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return zero, fmt.Errorf("%s: cannot decode %q: %w", u.name, tag, err)
	}

	return v, nil
}

// Encode writes the discriminator of v followed by the fields of its shape.
// A nil v is encoded as JSON null.
func (u *Union[T]) Encode(v T) ([]byte, error) {
	if isNil(v) {
		return []byte("null"), nil
	}

	tag := v.Discriminator()
	if _, exists := u.shapes[tag]; !exists {
		return nil, fmt.Errorf("%w: %s has no %q", verrors.ErrorUnregisteredVariant, u.name, tag)
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot encode %q: %w", u.name, tag, err)
	}

	if len(payload) < 2 || payload[0] != '{' {
		return nil, fmt.Errorf("%s: %q does not encode to an object", u.name, tag)
	}

	key, _ := json.Marshal(u.field)
	value, _ := json.Marshal(tag)

	buf := bytes.NewBuffer(make([]byte, 0, len(payload)+len(key)+len(value)+2))
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(value)
	if body := bytes.TrimSpace(payload[1:]); len(body) > 1 {
		buf.WriteByte(',')
	}
	buf.Write(payload[1:])

	return buf.Bytes(), nil
}

// DecodeField decodes the union stored in the field called name of object.
// raw is the field as found on the wire; it is nil when the field is absent.
func (u *Union[T]) DecodeField(object, name string, raw json.RawMessage, required bool) (T, error) {
	var zero T

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if required {
			return zero, &verrors.FieldError{Object: object, Field: name}
		}

		return zero, nil
	}

	v, err := u.Decode(trimmed)
	if err != nil {
		return zero, fmt.Errorf("%s.%s: %w", object, name, err)
	}

	return v, nil
}

// EncodeField encodes the union stored in the field called name of object.
// A nil v fails when the field is required and is left out otherwise.
func (u *Union[T]) EncodeField(object, name string, v T, required bool) (json.RawMessage, error) {
	if isNil(v) {
		if required {
			return nil, &verrors.FieldError{Object: object, Field: name}
		}

		return nil, nil
	}

	raw, err := u.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", object, name, err)
	}

	return raw, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
