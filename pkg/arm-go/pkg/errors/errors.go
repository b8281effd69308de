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

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrorParsingBody           error = fmt.Errorf("could not read the response body")
	ErrorUnmarshallingBody     error = fmt.Errorf("could not unmarshal the response body")
	ErrorMarshallingData       error = fmt.Errorf("could not marshal data")
	ErrorNotFound              error = fmt.Errorf("resource not found")
	ErrorNoIDProvided          error = fmt.Errorf("no ID provided")
	ErrorNoNameProvided        error = fmt.Errorf("no name provided")
	ErrorInvalidName           error = fmt.Errorf("name is not a single path segment")
	ErrorNoResourceGroup       error = fmt.Errorf("no resource group provided")
	ErrorNoSubscriptionID      error = fmt.Errorf("no subscription ID provided")
	ErrorNoCredential          error = fmt.Errorf("no credential provided")
	ErrorNoPropertiesProvided  error = fmt.Errorf("no properties provided")
	ErrorTooManyFailedAttempts error = fmt.Errorf("too many failed attempts")
	ErrorPagerLoop             error = fmt.Errorf("next link points to the page just fetched")
	ErrorNoMorePages           error = fmt.Errorf("no more pages")
	ErrorOperationFailed       error = fmt.Errorf("long running operation did not succeed")
	ErrorNoOperationURL        error = fmt.Errorf("no operation URL provided")
	ErrorUnknownResourceType   error = fmt.Errorf("unknown resource type")

	ErrorUnknownDiscriminator error = fmt.Errorf("unrecognized discriminator")
	ErrorMissingDiscriminator error = fmt.Errorf("missing discriminator")
	ErrorMissingField         error = fmt.Errorf("missing required field")
	ErrorUnregisteredVariant  error = fmt.Errorf("variant is not registered")
)

// DiscriminatorError is returned when a tagged union cannot pick a variant
// for an object.
type DiscriminatorError struct {
	Union string
	Field string
	// Value is the discriminator found on the wire. It is empty when the
	// field is missing altogether.
	Value   string
	Missing bool
}

func (d *DiscriminatorError) Error() string {
	if d.Missing {
		return fmt.Sprintf("%s: %s has no %q field", ErrorMissingDiscriminator, d.Union, d.Field)
	}

	return fmt.Sprintf("%s: %s %q=%q", ErrorUnknownDiscriminator, d.Union, d.Field, d.Value)
}

func (d *DiscriminatorError) Is(target error) bool {
	if d.Missing {
		return target == ErrorMissingDiscriminator
	}

	return target == ErrorUnknownDiscriminator
}

// FieldError reports a required field absent from a decoded object.
type FieldError struct {
	Object string
	Field  string
}

func (f *FieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrorMissingField, f.Object, f.Field)
}

func (f *FieldError) Is(target error) bool {
	return target == ErrorMissingField
}

// CloudError is the error body returned by Azure Resource Manager, together
// with the status code of the response that carried it.
type CloudError struct {
	StatusCode int           `json:"-"`
	RequestID  string        `json:"-"`
	Code       string        `json:"code"`
	Message    string        `json:"message"`
	Target     string        `json:"target,omitempty"`
	Details    []*CloudError `json:"details,omitempty"`
}

func (c *CloudError) Error() string {
	msg := fmt.Sprintf("status: %d, code: %s, message: %s", c.StatusCode, c.Code, c.Message)
	if c.Target != "" {
		msg += ", target: " + c.Target
	}

	if len(c.Details) > 0 {
		details := []string{}
		for _, d := range c.Details {
			details = append(details, d.Code+": "+d.Message)
		}
		msg += ", details: [" + strings.Join(details, "; ") + "]"
	}

	return msg
}

func (c *CloudError) Is(target error) bool {
	return target == ErrorNotFound && c.StatusCode == http.StatusNotFound
}

// AsCloudError returns the CloudError wrapped in err, if any.
func AsCloudError(err error) (*CloudError, bool) {
	var cerr *CloudError
	if errors.As(err, &cerr) {
		return cerr, true
	}

	return nil, false
}
