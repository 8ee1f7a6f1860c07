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

package model

import (
	"encoding/json"

	"github.com/asgardeo/flowmodel/pkg/codec"
)

// ProcessElementVariant is a member of the ProcessElementValue family.
type ProcessElementVariant interface {
	codec.Variant
	ProcessElementBase() *ProcessElementValue
}

// ProcessElementValue is a named value stored on a process. It is also the shape a
// value with an unrecognised type decodes to.
type ProcessElementValue struct {
	Type  string                     `json:"-"`
	Name  string                     `json:"name" codec:"required"`
	Extra map[string]json.RawMessage `json:"-" codec:"extra"`
}

// VariantTag returns the type the value was decoded with.
func (v *ProcessElementValue) VariantTag() string { return v.Type }

// SetVariantTag records the type of an unrecognised value.
func (v *ProcessElementValue) SetVariantTag(tag string) { v.Type = tag }

// ProcessElementBase returns the shared fields.
func (v *ProcessElementValue) ProcessElementBase() *ProcessElementValue { return v }

// ProcessElementValueString is a string process value.
type ProcessElementValueString struct {
	ProcessElementValue
	Value *string `json:"value,omitempty"`
}

// VariantTag returns ElementTypeString.
func (*ProcessElementValueString) VariantTag() string { return ElementTypeString }

// ProcessElementValueNumber is a numeric process value.
type ProcessElementValueNumber struct {
	ProcessElementValue
	Value *float64 `json:"value,omitempty"`
}

// VariantTag returns ElementTypeNumber.
func (*ProcessElementValueNumber) VariantTag() string { return ElementTypeNumber }

// NewProcessString returns a string process value.
func NewProcessString(name, value string) *ProcessElementValueString {
	return &ProcessElementValueString{ProcessElementValue: ProcessElementValue{Name: name}, Value: &value}
}

// NewProcessNumber returns a numeric process value.
func NewProcessNumber(name string, value float64) *ProcessElementValueNumber {
	return &ProcessElementValueNumber{ProcessElementValue: ProcessElementValue{Name: name}, Value: &value}
}
