/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package codec

import (
	"errors"
	"fmt"
)

// ErrorDescriptor describes a class of codec failure.
type ErrorDescriptor struct {
	Code             string `json:"code"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Codec error descriptors.
var (
	// ErrorTemporalParse is used when a date-time field does not hold an ISO-8601 value with offset.
	ErrorTemporalParse = ErrorDescriptor{
		Code:             "CDC-1001",
		Error:            "Invalid date-time value",
		ErrorDescription: "The value must be an ISO-8601 date-time with an offset",
	}
	// ErrorIDFormat is used when an identifier field does not hold a canonical UUID.
	ErrorIDFormat = ErrorDescriptor{
		Code:             "CDC-1002",
		Error:            "Invalid identifier",
		ErrorDescription: "The value must be a UUID in canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form",
	}
	// ErrorMissingRequiredField is used when an outgoing object lacks a required field.
	ErrorMissingRequiredField = ErrorDescriptor{
		Code:             "CDC-1003",
		Error:            "Missing required field",
		ErrorDescription: "A field marked as required has no value",
	}
	// ErrorDuplicateTag is used when a discriminator value is registered twice in one family.
	ErrorDuplicateTag = ErrorDescriptor{
		Code:             "CDC-1004",
		Error:            "Duplicate discriminator value",
		ErrorDescription: "The discriminator value is already registered for the family",
	}
	// ErrorInvalidField is used when a typed field holds a JSON value of the wrong shape.
	ErrorInvalidField = ErrorDescriptor{
		Code:             "CDC-1005",
		Error:            "Invalid field value",
		ErrorDescription: "The JSON value does not match the declared field type",
	}
)

var (
	// ErrUnknownFamily is returned when a family name has not been registered.
	ErrUnknownFamily = errors.New("unknown variant family")
	// ErrDuplicateFamily is returned when a family name is registered twice.
	ErrDuplicateFamily = errors.New("variant family already registered")
	// ErrUnknownTag is returned when an alias points at a discriminator value that is not registered.
	ErrUnknownTag = errors.New("unknown discriminator value")
	// ErrUnregisteredType is returned when encoding a variant whose Go type belongs to no family.
	ErrUnregisteredType = errors.New("type is not registered with any variant family")
	// ErrRegistrySealed is returned when registering after the registry has been sealed.
	ErrRegistrySealed = errors.New("registry is sealed")
	// ErrNotAnObject is returned when a tagged or structured value is not a JSON object.
	ErrNotAnObject = errors.New("value is not a JSON object")
	// ErrInvalidTarget is returned for nil values or targets that are not pointers to structs.
	ErrInvalidTarget = errors.New("target must be a non-nil pointer to a struct")
)

// TemporalParseError reports a malformed date-time value.
type TemporalParseError struct {
	Field string
	Value string
	Err   error
}

func (e *TemporalParseError) Error() string {
	return fmt.Sprintf("%s: field '%s' value %q: %v", ErrorTemporalParse.Error, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *TemporalParseError) Unwrap() error { return e.Err }

// Code returns the error code.
func (e *TemporalParseError) Code() string { return ErrorTemporalParse.Code }

// IDFormatError reports a malformed identifier value.
type IDFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *IDFormatError) Error() string {
	return fmt.Sprintf("%s: field '%s' value %q: %v", ErrorIDFormat.Error, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *IDFormatError) Unwrap() error { return e.Err }

// Code returns the error code.
func (e *IDFormatError) Code() string { return ErrorIDFormat.Code }

// MissingRequiredFieldError reports a required field left empty on an outgoing object.
type MissingRequiredFieldError struct {
	Field string
	Type  string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: field '%s' of %s", ErrorMissingRequiredField.Error, e.Field, e.Type)
}

// Code returns the error code.
func (e *MissingRequiredFieldError) Code() string { return ErrorMissingRequiredField.Code }

// DuplicateTagError reports a discriminator value registered twice for the same family.
type DuplicateTagError struct {
	Family string
	Tag    string
}

func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("%s: '%s' in family '%s'", ErrorDuplicateTag.Error, e.Tag, e.Family)
}

// Code returns the error code.
func (e *DuplicateTagError) Code() string { return ErrorDuplicateTag.Code }

// FieldError reports a JSON value that could not be decoded into its declared field type.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", ErrorInvalidField.Error, e.Err)
	}
	return fmt.Sprintf("%s: field '%s': %v", ErrorInvalidField.Error, e.Field, e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *FieldError) Unwrap() error { return e.Err }

// Code returns the error code.
func (e *FieldError) Code() string { return ErrorInvalidField.Code }
